package dto

// ── auth module DTOs ──

// RegisterRequest creates a new member account.
type RegisterRequest struct {
	Email       string `json:"email"        binding:"required,email"`
	FullName    string `json:"full_name"    binding:"required"`
	Password    string `json:"password"     binding:"required,min=8,max=64"`
	PhoneNo     string `json:"phone_no"     binding:"required"`
	RegisterNum string `json:"register_num" binding:"required"`
	College     string `json:"college"      binding:"required"`
	Dept        string `json:"dept"         binding:"required"`
	Gender      string `json:"gender"`
	Stay        string `json:"stay"`
	JoinYear    int    `json:"join_year"    binding:"required"`
	GradYear    int    `json:"grad_year"    binding:"required"`
}

// VerifyRequest confirms a registration OTP.
type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp"   binding:"required"`
}

// LoginRequest carries the /token form fields.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is the /token success payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// EnterOTPRequest checks a reset OTP without consuming it.
type EnterOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp"   binding:"required"`
}

// ResetPasswordRequest completes a password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email"        binding:"required,email"`
	OTP         string `json:"otp"          binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// ChangePasswordRequest changes the caller's own password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// StatusResponse is the soft success/failure body used by the OTP flows.
// Password endpoints answer 200 either way so they cannot be used to probe
// which emails are registered.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
