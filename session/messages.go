package session

// User-facing notice texts. The mobile shell maps these through its
// translation layer; the core carries the canonical strings.
const (
	MsgCodeSentTitle   = "Code sent"
	MsgCodeSentBody    = "Enter the verification code we sent to your email."
	MsgRegisterFailed  = "Registration failed"
	MsgRegisterRetry   = "We could not create your account. Please try again."
	MsgVerifiedTitle   = "Account verified"
	MsgVerifiedBody    = "You are all set."
	MsgCodeRejected    = "Invalid code"
	MsgCodeRetry       = "The verification code was not accepted. Please try again."
	MsgLoginFailed     = "Login failed"
	MsgLoginRetry      = "Check your email and password and try again."
	MsgNotVerified     = "Account not verified"
	MsgResetSentTitle  = "Reset code sent"
	MsgResetSentBody   = "Enter the reset code we sent to your email."
	MsgResetFailed     = "Password reset failed"
	MsgResetRetry      = "We could not start the password reset. Please try again."
	MsgPasswordChanged = "Password changed"
	MsgPasswordFailed  = "Password change failed"
	MsgProviderFailed  = "Sign-in not completed"
	MsgProviderRetry   = "External sign-in did not finish. You can try again anytime."
	MsgProfileUpdated  = "Profile updated"
	MsgProfileFailed   = "Profile update failed"
	MsgAccountDeleted  = "Account deleted"
	MsgDeleteFailed    = "Account deletion failed"
	MsgTryAgain        = "Please try again."
)
