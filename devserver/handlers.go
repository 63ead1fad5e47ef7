package devserver

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"roadwatch/api"
	"roadwatch/store"
)

// DevCode is the verification code the stub accepts for every account.
const DevCode = "123456"

type account struct {
	user      api.User
	password  string
	code      string
	resetCode string
}

// Service is the in-memory stand-in for the RoadWatch backend, good enough
// for local development and end-to-end tests.
type Service struct {
	mu      sync.Mutex
	users   map[string]*account // keyed by user id
	byEmail map[string]string   // email -> user id
	reports []api.SavedReport
	seq     int64
}

func NewService() *Service {
	return &Service{
		users:   map[string]*account{},
		byEmail: map[string]string{},
	}
}

func badVersion(c *gin.Context, endpoint, got string) bool {
	if got == api.ApiVersion {
		return false
	}
	log.Errorf("Bad version in %s, expected: %s, got: %v", endpoint, api.ApiVersion, got)
	c.String(http.StatusNotAcceptable, "Bad API version, expecting 2.0.") // 406
	return true
}

func (s *Service) Register(c *gin.Context) {
	var args api.RegisterArgs
	if err := c.BindJSON(&args); err != nil {
		log.Errorf("Failed to get the argument in %s call: %w", api.EndPointRegister, err)
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointRegister, args.Version) {
		return
	}
	if args.Username == "" || args.Email == "" || args.Password == "" {
		c.String(http.StatusBadRequest, "username, email and password are required.") // 400
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[args.Email]; exists {
		c.String(http.StatusConflict, "email already registered.") // 409
		return
	}
	acct := &account{
		user: api.User{
			Id:           uuid.NewString(),
			Username:     args.Username,
			Email:        args.Email,
			Localisation: args.Localisation,
		},
		password: args.Password,
		code:     DevCode,
	}
	s.users[acct.user.Id] = acct
	s.byEmail[args.Email] = acct.user.Id
	log.Infof("Registered user %s, verification pending", acct.user.Id)
	c.JSON(http.StatusOK, acct.user) // 200
}

func (s *Service) Verify(c *gin.Context) {
	var args api.VerifyArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointVerify, args.Version) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[args.Id]
	if !ok {
		c.String(http.StatusNotFound, "unknown user.") // 404
		return
	}
	if args.Code != acct.code {
		c.String(http.StatusUnauthorized, "verification code rejected.") // 401
		return
	}
	acct.user.IsVerified = true
	c.JSON(http.StatusOK, acct.user) // 200
}

func (s *Service) Login(c *gin.Context) {
	var args api.LoginArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointLogin, args.Version) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[args.Email]
	if !ok || s.users[id].password != args.Password {
		c.String(http.StatusUnauthorized, "bad credentials.") // 401
		return
	}
	c.JSON(http.StatusOK, s.users[id].user) // 200
}

func (s *Service) Forgot(c *gin.Context) {
	var args api.ForgotArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointForgot, args.Version) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[args.Email]
	if !ok {
		c.String(http.StatusNotFound, "unknown email.") // 404
		return
	}
	acct := s.users[id]
	acct.resetCode = DevCode
	c.JSON(http.StatusOK, api.ForgotUser{
		UserId:       acct.user.Id,
		Email:        acct.user.Email,
		IsVerified:   acct.user.IsVerified,
		Localisation: acct.user.Localisation,
	}) // 200
}

func (s *Service) ForgotValidate(c *gin.Context) {
	var args api.ForgotValidateArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointForgotValidate, args.Version) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[args.Id]
	if !ok || acct.resetCode == "" || args.Code != acct.resetCode {
		c.String(http.StatusUnauthorized, "reset code rejected.") // 401
		return
	}
	c.Status(http.StatusOK) // 200
}

func (s *Service) ChangePassword(c *gin.Context) {
	var args api.ChangePasswordArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointChangePassword, args.Version) {
		return
	}
	if args.Password == "" {
		c.String(http.StatusBadRequest, "password is required.") // 400
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[args.Id]
	if !ok {
		c.String(http.StatusNotFound, "unknown user.") // 404
		return
	}
	acct.password = args.Password
	acct.resetCode = ""
	acct.user.IsVerified = true
	c.JSON(http.StatusOK, acct.user) // 200
}

func (s *Service) ProviderSignIn(c *gin.Context) {
	var args api.ProviderSignInArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointProviderSignIn, args.Version) {
		return
	}
	if args.Token == "" {
		c.String(http.StatusUnauthorized, "provider token rejected.") // 401
		return
	}

	// The stub trusts any non-empty token and derives a stable dev identity
	// from it.
	email := fmt.Sprintf("%s@provider.dev", args.Token)
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.byEmail[email]; ok {
		c.JSON(http.StatusOK, s.users[id].user)
		return
	}
	acct := &account{
		user: api.User{
			Id:         uuid.NewString(),
			Username:   args.Token,
			Email:      email,
			IsVerified: true,
		},
	}
	s.users[acct.user.Id] = acct
	s.byEmail[email] = acct.user.Id
	c.JSON(http.StatusOK, acct.user) // 200
}

func (s *Service) UpdateUser(c *gin.Context) {
	var args api.UpdateUserArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointUpdateUser, args.Version) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[args.Id]
	if !ok {
		c.String(http.StatusNotFound, "unknown user.") // 404
		return
	}
	if args.Username != "" {
		acct.user.Username = args.Username
	}
	if args.Localisation != "" {
		acct.user.Localisation = args.Localisation
	}
	if args.PushToken != "" {
		acct.user.PushToken = args.PushToken
	}
	c.JSON(http.StatusOK, acct.user) // 200
}

func (s *Service) DeleteUser(c *gin.Context) {
	var args api.BaseArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointDeleteUser, args.Version) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[args.Id]
	if !ok {
		c.String(http.StatusNotFound, "unknown user.") // 404
		return
	}
	delete(s.byEmail, acct.user.Email)
	delete(s.users, args.Id)
	c.Status(http.StatusOK) // 200
}

func (s *Service) Report(c *gin.Context) {
	var args api.ReportArgs
	if err := c.BindJSON(&args); err != nil {
		log.Errorf("Failed to get the argument in %s call: %w", api.EndPointReport, err)
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointReport, args.Version) {
		return
	}

	if _, err := args.Report.Decode(); err != nil {
		log.Errorf("Rejecting report: %v", err)
		c.String(http.StatusNotAcceptable, "Invalid report: %v", err) // 406
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[args.Id]; !ok {
		c.String(http.StatusUnauthorized, "unknown reporter.") // 401
		return
	}
	s.seq++
	saved := api.SavedReport{
		Seq:       s.seq,
		UserId:    args.Id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Report:    args.Report,
	}
	s.reports = append(s.reports, saved)
	log.Infof("Saved report %d from user %s", saved.Seq, args.Id)
	c.JSON(http.StatusOK, saved) // 200
}

func (s *Service) Reports(c *gin.Context) {
	var args api.BaseArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointReports, args.Version) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, api.ReportsResponse{
		Reports: append([]api.SavedReport(nil), s.reports...),
	}) // 200
}

func (s *Service) GetStats(c *gin.Context) {
	var args api.BaseArgs
	if err := c.BindJSON(&args); err != nil {
		c.String(http.StatusBadRequest, "Could not read JSON input.") // 400
		return
	}
	if badVersion(c, api.EndPointGetStats, args.Version) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	total := decimal.Zero
	daily := decimal.Zero
	today := time.Now().UTC().Format("2006-01-02")
	for _, r := range s.reports {
		if r.UserId != args.Id {
			continue
		}
		count++
		impact := store.ReportImpact(r.Report)
		total = total.Add(impact)
		if len(r.Timestamp) >= len(today) && r.Timestamp[:len(today)] == today {
			daily = daily.Add(impact)
		}
	}
	c.JSON(http.StatusOK, api.StatsResponse{
		Version:     api.ApiVersion,
		Id:          args.Id,
		Reports:     count,
		ImpactDaily: daily.String(),
		ImpactTotal: total.String(),
	}) // 200
}

func (s *Service) Help(c *gin.Context) {
	c.String(http.StatusOK, `
	RoadWatch API:
	roadwatch development stub, version 2.0.
	`)
}
