// Package remote is the HTTP client for the RoadWatch service. Responses are
// interpreted uniformly: 2xx bodies decode into the expected entity, anything
// else becomes an error carrying the status and the response body text.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"roadwatch/api"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	reqBody, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: unexpected status %d: %s", path, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, cu api.CreateUser, localisation string) (*api.User, error) {
	args := api.RegisterArgs{
		Version:      api.ApiVersion,
		Username:     cu.Username,
		Email:        cu.Email,
		Password:     cu.Password,
		Localisation: localisation,
	}
	user := &api.User{}
	if err := c.post(ctx, api.EndPointRegister, args, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) VerifyCode(ctx context.Context, userId, code string) (*api.User, error) {
	args := api.VerifyArgs{Version: api.ApiVersion, Id: userId, Code: code}
	user := &api.User{}
	if err := c.post(ctx, api.EndPointVerify, args, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*api.User, error) {
	args := api.LoginArgs{Version: api.ApiVersion, Email: email, Password: password}
	user := &api.User{}
	if err := c.post(ctx, api.EndPointLogin, args, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*api.ForgotUser, error) {
	args := api.ForgotArgs{Version: api.ApiVersion, Email: email}
	fu := &api.ForgotUser{}
	if err := c.post(ctx, api.EndPointForgot, args, fu); err != nil {
		return nil, err
	}
	return fu, nil
}

func (c *Client) ValidateForgotCode(ctx context.Context, userId, code string) error {
	args := api.ForgotValidateArgs{Version: api.ApiVersion, Id: userId, Code: code}
	return c.post(ctx, api.EndPointForgotValidate, args, nil)
}

func (c *Client) ChangePassword(ctx context.Context, userId, password string) (*api.User, error) {
	args := api.ChangePasswordArgs{Version: api.ApiVersion, Id: userId, Password: password}
	user := &api.User{}
	if err := c.post(ctx, api.EndPointChangePassword, args, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) SignInWithProvider(ctx context.Context, token string) (*api.User, error) {
	args := api.ProviderSignInArgs{Version: api.ApiVersion, Token: token}
	user := &api.User{}
	if err := c.post(ctx, api.EndPointProviderSignIn, args, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, args api.UpdateUserArgs) (*api.User, error) {
	args.Version = api.ApiVersion
	user := &api.User{}
	if err := c.post(ctx, api.EndPointUpdateUser, args, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, userId string) error {
	args := api.BaseArgs{Version: api.ApiVersion, Id: userId}
	return c.post(ctx, api.EndPointDeleteUser, args, nil)
}

func (c *Client) SubmitReport(ctx context.Context, args api.ReportArgs) (*api.SavedReport, error) {
	args.Version = api.ApiVersion
	saved := &api.SavedReport{}
	if err := c.post(ctx, api.EndPointReport, args, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (c *Client) ListReports(ctx context.Context) ([]api.SavedReport, error) {
	args := api.BaseArgs{Version: api.ApiVersion}
	resp := &api.ReportsResponse{}
	if err := c.post(ctx, api.EndPointReports, args, resp); err != nil {
		return nil, err
	}
	return resp.Reports, nil
}

func (c *Client) GetStats(ctx context.Context, userId string) (*api.StatsResponse, error) {
	args := api.BaseArgs{Version: api.ApiVersion, Id: userId}
	stats := &api.StatsResponse{}
	if err := c.post(ctx, api.EndPointGetStats, args, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
