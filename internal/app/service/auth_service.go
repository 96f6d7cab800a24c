package service

import (
	"context"
	"time"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	apperrors "github.com/ikkim/bohoja-backend/internal/errors"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/ikkim/bohoja-backend/pkg/logger"
	"github.com/ikkim/bohoja-backend/pkg/redis"
	"github.com/ikkim/bohoja-backend/pkg/util"
)

const msgLoginRequired = "전화번호와 비밀번호를 입력해주세요."

type AuthService interface {
	Login(phoneNumber, password string) (*util.SessionToken, error)
	Logout(ctx context.Context, claims *util.Claims) error
	Me() (*Profile, error)
}

// Profile 내 정보 화면 (보호자 + 환자 카드)
type Profile struct {
	Guardian *model.GuardianInfo `json:"guardian"`
	Patient  model.PatientSummary `json:"patient"`
}

type authService struct {
	store        *store.UserStore
	blacklist    redis.TokenBlacklist
	metrics      *metrics.Metrics
	jwtSecret    string
	accessExpiry time.Duration
}

func NewAuthService(
	userStore *store.UserStore,
	blacklist redis.TokenBlacklist,
	m *metrics.Metrics,
	jwtSecret string,
	accessExpiry time.Duration,
) AuthService {
	return &authService{
		store:        userStore,
		blacklist:    blacklist,
		metrics:      m,
		jwtSecret:    jwtSecret,
		accessExpiry: accessExpiry,
	}
}

// Login checks the stored guardian and issues a session token.
// Unknown phone and wrong password are reported the same way.
func (s *authService) Login(phoneNumber, password string) (*util.SessionToken, error) {
	if phoneNumber == "" || password == "" {
		return nil, newValidationError(apperrors.ValidationRequired, "", msgLoginRequired)
	}

	if !s.store.Login(phoneNumber, password) {
		s.metrics.LoginAttempts.WithLabelValues("failed").Inc()
		logger.Warn("Login failed: invalid credentials")
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateSessionToken(util.NormalizePhone(phoneNumber), s.jwtSecret, s.accessExpiry)
	if err != nil {
		s.store.Logout()
		logger.Error("Failed to generate session token", err)
		return nil, err
	}

	s.metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Info("User logged in")
	return token, nil
}

// Logout clears the session flag and blacklists the token for its remaining lifetime
func (s *authService) Logout(ctx context.Context, claims *util.Claims) error {
	s.store.Logout()

	if claims == nil || claims.ID == "" {
		return nil
	}
	var remaining time.Duration
	if claims.ExpiresAt != nil {
		remaining = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, remaining); err != nil {
		logger.Error("Failed to blacklist token on logout", err)
		return err
	}

	logger.Info("User logged out")
	return nil
}

func (s *authService) Me() (*Profile, error) {
	snap := s.store.Snapshot()
	if !snap.IsLoggedIn || snap.Guardian == nil {
		return nil, ErrNotLoggedIn
	}
	return &Profile{
		Guardian: snap.Guardian,
		Patient:  snap.Patient.Summary(),
	}, nil
}
