package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/service"
	"github.com/kgex/bigbbe/pkg/response"
)

// AuthHandler exposes registration, verification and the token endpoints.
type AuthHandler struct {
	svc    service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// Register handles POST /users/.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDomain):
			response.BadRequest(c, 10001, err.Error())
		case errors.Is(err, service.ErrEmailExists),
			errors.Is(err, service.ErrPhoneExists),
			errors.Is(err, service.ErrRegisterNumExists):
			response.BadRequest(c, 10001, err.Error())
		default:
			h.logger.Error("register failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.Created(c, user)
}

// Verify handles POST /verify.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	user, err := h.svc.Verify(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 10001, err.Error())
		case errors.Is(err, service.ErrAlreadyVerified),
			errors.Is(err, service.ErrOTPMismatch),
			errors.Is(err, service.ErrOTPExpired):
			response.BadRequest(c, 10001, err.Error())
		default:
			h.logger.Error("verify failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// Login handles POST /token. The body is form-encoded: username holds the
// email, matching what existing clients send.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	tok, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 10002, err.Error())
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, tok)
}

// Logout handles POST /logout: the current token goes on the blacklist.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		response.Unauthorized(c, 10002, "not authenticated")
		return
	}

	if err := h.svc.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "logged out"})
}

// ForgotPassword handles POST /forgotpass. Always 200 with a status body.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	response.OK(c, h.svc.ForgotPassword(c.Request.Context(), req.Email))
}

// EnterOTP handles POST /enterotp. Always 200 with a status body.
func (h *AuthHandler) EnterOTP(c *gin.Context) {
	var req dto.EnterOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	response.OK(c, h.svc.EnterOTP(c.Request.Context(), &req))
}

// ResetPassword handles POST /resetpassword. Always 200 with a status body.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	response.OK(c, h.svc.ResetPassword(c.Request.Context(), &req))
}

// ChangePassword handles POST /changepassword for the authenticated caller.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), currentUserID(c), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, 10002, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 10001, err.Error())
		default:
			h.logger.Error("change password failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"message": "password changed"})
}
