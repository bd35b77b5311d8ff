package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

// SessionService fabricates sessions on login and walks them through the
// welcome and dashboard stages. No credential store is consulted unless an
// admin password hash is configured.
type SessionService struct {
	store             ports.SessionStore
	notifier          ports.Notifier
	jwtSecret         string
	tokenTTL          time.Duration
	adminPasswordHash string
	log               zerolog.Logger
	now               func() time.Time
}

// SessionOption customises a SessionService.
type SessionOption func(*SessionService)

// WithAdminPasswordHash requires admin logins to match the bcrypt hash.
func WithAdminPasswordHash(hash string) SessionOption {
	return func(s *SessionService) { s.adminPasswordHash = hash }
}

// WithNotifier queues a toast on successful login.
func WithNotifier(n ports.Notifier) SessionOption {
	return func(s *SessionService) { s.notifier = n }
}

func NewSessionService(store ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger, opts ...SessionOption) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	s := &SessionService{
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login creates a session in the welcome stage and signs a token for it.
func (s *SessionService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	userType := domain.UserType(strings.ToLower(strings.TrimSpace(in.UserType)))
	if !userType.Valid() {
		return nil, domain.ErrInvalidUserType
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if userType == domain.UserAdmin && s.adminPasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(in.Password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
	}

	sess := &domain.Session{
		ID:        uuid.NewString(),
		Type:      userType,
		Email:     email,
		Stage:     domain.StageWelcome,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("login: save session: %w", err)
	}

	token, err := s.generateToken(sess)
	if err != nil {
		_ = s.store.Delete(ctx, sess.ID)
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	if s.notifier != nil {
		role := "Tenant"
		if userType == domain.UserAdmin {
			role = "Administrator"
		}
		s.notifier.Notify(domain.Notification{
			Recipient: email,
			Title:     "Login Successful!",
			Message:   fmt.Sprintf("Welcome back! You have successfully logged in as %s.", role),
		})
	}

	s.log.Info().Str("session_id", sess.ID).Str("user_type", string(userType)).Msg("session created")
	return &ports.LoginResult{Token: token, Session: sess}, nil
}

func (s *SessionService) Current(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.store.Get(ctx, sessionID)
}

// Continue moves a session from the welcome stage to its dashboard.
// Calling it again on a dashboard session is a no-op.
func (s *SessionService) Continue(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Stage == domain.StageDashboard {
		return sess, nil
	}

	sess.Stage = domain.StageDashboard
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("continue: save session: %w", err)
	}
	return sess, nil
}

// Logout destroys the session. Unknown sessions are reported as not found.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if _, err := s.store.Get(ctx, sessionID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}

func (s *SessionService) generateToken(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   sess.ID,
		"role":  string(sess.Type),
		"email": sess.Email,
		"iat":   sess.CreatedAt.Unix(),
		"exp":   sess.CreatedAt.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
