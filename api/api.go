// Package api holds the wire request/response shapes exchanged with the
// RoadWatch service. The client and the development stub share these.
package api

import "roadwatch/report"

// ApiVersion is carried in every request and checked by the service.
const ApiVersion = "2.0"

const (
	EndPointRegister       = "/register"
	EndPointVerify         = "/verify"
	EndPointLogin          = "/login"
	EndPointForgot         = "/forgot_password"
	EndPointForgotValidate = "/forgot_password/validate"
	EndPointChangePassword = "/change_password"
	EndPointProviderSignIn = "/provider_sign_in"
	EndPointUpdateUser     = "/update_user"
	EndPointDeleteUser     = "/delete_user"
	EndPointReport         = "/report"
	EndPointReports        = "/reports"
	EndPointGetStats       = "/get_stats"
)

type BaseArgs struct {
	Version string `json:"version"` // Must be "2.0"
	Id      string `json:"id"`      // Server-assigned user id.
}

// CreateUser is the local, pre-registration form of an account. It exists only
// between registration intent and the server accepting the registration.
type CreateUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the server-owned account record. Id is absent until the first
// successful registration; IsVerified flips only after a code round trip.
type User struct {
	Id           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	IsVerified   bool   `json:"is_verified"`
	Localisation string `json:"localisation,omitempty"`
	PushToken    string `json:"push_token,omitempty"`
}

// ForgotUser is the transient password-reset identity, discarded once the
// password is changed.
type ForgotUser struct {
	UserId       string `json:"user_id"`
	Email        string `json:"email"`
	IsVerified   bool   `json:"is_verified"`
	Localisation string `json:"localisation,omitempty"`
}

type RegisterArgs struct {
	Version      string `json:"version"` // Must be "2.0"
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Localisation string `json:"localisation,omitempty"`
}

type VerifyArgs struct {
	Version string `json:"version"` // Must be "2.0"
	Id      string `json:"id"`
	Code    string `json:"code"`
}

type LoginArgs struct {
	Version  string `json:"version"` // Must be "2.0"
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotArgs struct {
	Version string `json:"version"` // Must be "2.0"
	Email   string `json:"email"`
}

type ForgotValidateArgs struct {
	Version string `json:"version"` // Must be "2.0"
	Id      string `json:"id"`
	Code    string `json:"code"`
}

type ChangePasswordArgs struct {
	Version  string `json:"version"` // Must be "2.0"
	Id       string `json:"id"`
	Password string `json:"password"`
}

type ProviderSignInArgs struct {
	Version string `json:"version"` // Must be "2.0"
	Token   string `json:"token"` // Identity-provider token, opaque to us.
}

type UpdateUserArgs struct {
	Version      string `json:"version"` // Must be "2.0"
	Id           string `json:"id"`
	Username     string `json:"username,omitempty"`
	Localisation string `json:"localisation,omitempty"`
	PushToken    string `json:"push_token,omitempty"`
}

type ReportArgs struct {
	Version string          `json:"version"` // Must be "2.0"
	Id      string          `json:"id"`      // Reporting user id.
	Report  report.Envelope `json:"report"`
}

// SavedReport is a report as confirmed and sequenced by the service.
type SavedReport struct {
	Seq       int64           `json:"seq"`
	UserId    string          `json:"user_id"`
	Timestamp string          `json:"timestamp"`
	Report    report.Envelope `json:"report"`
}

type ReportsResponse struct {
	Reports []SavedReport `json:"reports"`
}

type StatsResponse struct {
	Version     string `json:"version"` // Must be "2.0"
	Id          string `json:"id"`
	Reports     int    `json:"reports"`
	ImpactDaily string `json:"impact_daily"` // Decimal string.
	ImpactTotal string `json:"impact_total"` // Decimal string.
}

type ViewPort struct {
	LatMin float64 `json:"latmin"`
	LonMin float64 `json:"lonmin"`
	LatMax float64 `json:"latmax"`
	LonMax float64 `json:"lonmax"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MapResult is one pin or aggregated cluster for the map view.
type MapResult struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Count     int64       `json:"count"`
	ReportSeq int64       `json:"report_seq"` // Ignored if Count > 1.
	Kind      report.Kind `json:"kind"`       // Ignored if Count > 1.
}

type ErrorResponse struct {
	Error string `json:"error"`
}
