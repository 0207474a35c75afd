package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kgex/bigbbe/config"
	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/model"
	"github.com/kgex/bigbbe/internal/repository"
	"github.com/kgex/bigbbe/pkg/jwt"
	"github.com/kgex/bigbbe/pkg/mailer"
	"github.com/kgex/bigbbe/pkg/redis"
)

// ── auth module business errors ──

var (
	ErrInvalidDomain      = errors.New("email must belong to an approved institutional domain")
	ErrEmailExists        = errors.New("email already registered")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrRegisterNumExists  = errors.New("register number already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyVerified    = errors.New("account already verified")
	ErrOTPMismatch        = errors.New("otp not valid")
	ErrOTPExpired         = errors.New("otp expired")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// AuthService drives registration, verification, login and the OTP flows.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error)
	Verify(ctx context.Context, req *dto.VerifyRequest) (*model.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	ForgotPassword(ctx context.Context, email string) *dto.StatusResponse
	EnterOTP(ctx context.Context, req *dto.EnterOTPRequest) *dto.StatusResponse
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) *dto.StatusResponse
	ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	mail   mailer.Sender
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	mail mailer.Sender,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		mail:   mail,
		rdb:    rdb,
		logger: logger,
	}
}

// generateOTP returns a random numeric code of the given length.
// Leading zeros are significant, so the code is kept as a string.
func generateOTP(length int) (string, error) {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate otp: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// emailDomain extracts the part after the last '@'.
func emailDomain(email string) string {
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return ""
	}
	return strings.ToLower(email[i+1:])
}

// otpValid checks a submitted code against the stored challenge,
// including the generation-time TTL.
func (s *authService) otpValid(user *model.User, submitted string) error {
	if user.OTP == nil || *user.OTP == "" || *user.OTP != submitted {
		return ErrOTPMismatch
	}
	if s.cfg.Auth.OTPTTL > 0 && user.OTPLastGen != nil {
		if time.Since(*user.OTPLastGen) > s.cfg.Auth.OTPTTL {
			return ErrOTPExpired
		}
	}
	return nil
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	domain := emailDomain(req.Email)
	allowed := false
	for _, d := range s.cfg.Auth.AllowedDomains {
		if domain == strings.ToLower(d) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidDomain
	}

	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.User.GetByPhone(ctx, req.PhoneNo); err == nil {
		return nil, ErrPhoneExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.User.GetByRegisterNum(ctx, req.RegisterNum); err == nil {
		return nil, ErrRegisterNumExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	otp, err := generateOTP(s.cfg.Auth.OTPLength)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	user := &model.User{
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: string(hash),
		IsActive:       false,
		OTP:            &otp,
		OTPLastGen:     &now,
		Role:           model.RoleStudent,
		Gender:         req.Gender,
		Stay:           req.Stay,
		RegisterNum:    req.RegisterNum,
		PhoneNo:        req.PhoneNo,
		College:        req.College,
		Dept:           req.Dept,
		JoinYear:       req.JoinYear,
		GradYear:       req.GradYear,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	// Delivery failure does not undo the registration; the member can ask
	// for a resend via the forgot-password flow.
	msg := "Your OTP is: <h2>" + otp + "</h2>"
	if err := s.mail.Send(user.Email, "Verify your email", msg); err != nil {
		s.logger.Warn("verification mail delivery failed",
			zap.String("email", user.Email), zap.Error(err))
	}

	return user, nil
}

// ────────────────────── Verify ──────────────────────

func (s *authService) Verify(ctx context.Context, req *dto.VerifyRequest) (*model.User, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.IsActive {
		return nil, ErrAlreadyVerified
	}
	if err := s.otpValid(user, req.OTP); err != nil {
		return nil, err
	}

	user.OTP = nil
	user.OTPLastGen = nil
	user.IsActive = true
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("activate user failed", zap.Uint("id", user.ID), zap.Error(err))
		return nil, err
	}

	return user, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("lookup user failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateAccessToken(user.ID, user.Email, user.FullName, user.Role)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil // no blacklist backend; token simply ages out
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

// ────────────────────── ForgotPassword ──────────────────────

// ForgotPassword always answers with a status body. An unknown email gets
// the success body too, so the endpoint cannot be used to enumerate members.
func (s *authService) ForgotPassword(ctx context.Context, email string) *dto.StatusResponse {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("lookup user failed", zap.Error(err))
		}
		return &dto.StatusResponse{Status: "success", Message: "OTP sent to your email"}
	}

	otp, err := generateOTP(s.cfg.Auth.OTPLength)
	if err != nil {
		return &dto.StatusResponse{Status: "failure", Message: "could not generate OTP"}
	}
	now := time.Now()
	user.OTP = &otp
	user.OTPLastGen = &now
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("store otp failed", zap.Uint("id", user.ID), zap.Error(err))
		return &dto.StatusResponse{Status: "failure", Message: "could not store OTP"}
	}

	msg := "<h2>Your otp is <h1>" + otp + "</h1></h2>"
	if err := s.mail.Send(user.Email, "Password Reset OTP", msg); err != nil {
		return &dto.StatusResponse{Status: "failure", Message: err.Error()}
	}

	return &dto.StatusResponse{Status: "success", Message: "OTP sent to your email"}
}

// ────────────────────── EnterOTP ──────────────────────

// EnterOTP checks a reset code without consuming it; ResetPassword does the
// consuming. Mismatch is a soft failure, never an error status.
func (s *authService) EnterOTP(ctx context.Context, req *dto.EnterOTPRequest) *dto.StatusResponse {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		return &dto.StatusResponse{Status: "failure", Message: "OTP not verified"}
	}
	if err := s.otpValid(user, req.OTP); err != nil {
		return &dto.StatusResponse{Status: "failure", Message: "OTP not verified"}
	}
	return &dto.StatusResponse{Status: "success", Message: "OTP verified"}
}

// ────────────────────── ResetPassword ──────────────────────

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) *dto.StatusResponse {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		return &dto.StatusResponse{Status: "failure", Message: "password reset failed"}
	}
	if err := s.otpValid(user, req.OTP); err != nil {
		return &dto.StatusResponse{Status: "failure", Message: "password reset failed"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return &dto.StatusResponse{Status: "failure", Message: "password reset failed"}
	}

	user.OTP = nil
	user.OTPLastGen = nil
	user.HashedPassword = string(hash)
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("store password failed", zap.Uint("id", user.ID), zap.Error(err))
		return &dto.StatusResponse{Status: "failure", Message: "password reset failed"}
	}

	return &dto.StatusResponse{Status: "success", Message: "Password reset successfully"}
}

// ────────────────────── ChangePassword ──────────────────────

func (s *authService) ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.HashedPassword = string(hash)
	return s.repo.User.Update(ctx, user)
}
