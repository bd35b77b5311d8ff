package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
	"github.com/propelrent/rentwise/internal/infrastructure/db/memory"
)

const testSecret = "test-secret"

func newSessionService(opts ...SessionOption) (*SessionService, *memory.SessionStore) {
	store := memory.NewSessionStore()
	return NewSessionService(store, testSecret, time.Hour, zerolog.Nop(), opts...), store
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestSessionService_Login_StartsAtWelcome(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, store := newSessionService(WithNotifier(notifier))

	res, err := svc.Login(context.Background(), ports.LoginInput{UserType: "admin", Email: "alice.smith@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Session.Stage != domain.StageWelcome || res.Session.View() != "welcome" {
		t.Fatalf("expected welcome stage, got %s", res.Session.Stage)
	}
	if res.Session.Type != domain.UserAdmin {
		t.Fatalf("expected admin, got %s", res.Session.Type)
	}

	stored, err := store.Get(context.Background(), res.Session.ID)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if stored.Email != "alice.smith@example.com" {
		t.Fatalf("unexpected stored email %q", stored.Email)
	}

	sent := notifier.all()
	if len(sent) != 1 || sent[0].Title != "Login Successful!" || sent[0].Recipient != "alice.smith@example.com" {
		t.Fatalf("expected one login notification, got %+v", sent)
	}
}

func TestSessionService_Login_TokenClaims(t *testing.T) {
	svc, _ := newSessionService()

	res, err := svc.Login(context.Background(), ports.LoginInput{UserType: "Tenant", Email: "raju@gmail.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sid"] != res.Session.ID {
		t.Errorf("sid = %v, want %s", claims["sid"], res.Session.ID)
	}
	if claims["role"] != "tenant" {
		t.Errorf("role = %v, want tenant", claims["role"])
	}
	if claims["email"] != "raju@gmail.com" {
		t.Errorf("email = %v", claims["email"])
	}
}

func TestSessionService_Login_InvalidUserType(t *testing.T) {
	svc, store := newSessionService()

	_, err := svc.Login(context.Background(), ports.LoginInput{UserType: "landlord", Email: "x@y.z"})
	if !errors.Is(err, domain.ErrInvalidUserType) {
		t.Fatalf("expected ErrInvalidUserType, got %v", err)
	}
	if n, _ := store.Count(context.Background()); n != 0 {
		t.Fatalf("no session should be stored, got %d", n)
	}
}

func TestSessionService_Login_EmptyEmail(t *testing.T) {
	svc, _ := newSessionService()

	_, err := svc.Login(context.Background(), ports.LoginInput{UserType: "tenant", Email: "   "})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_Login_AdminPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc, _ := newSessionService(WithAdminPasswordHash(string(hash)))
	ctx := context.Background()

	if _, err := svc.Login(ctx, ports.LoginInput{UserType: "admin", Email: "a@b.c", Password: "wrong"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, ports.LoginInput{UserType: "admin", Email: "a@b.c", Password: "s3cret"}); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	// tenants never need a password
	if _, err := svc.Login(ctx, ports.LoginInput{UserType: "tenant", Email: "t@b.c"}); err != nil {
		t.Fatalf("tenant login rejected: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Continue / Logout
// ---------------------------------------------------------------------------

func TestSessionService_ContinueAndLogout(t *testing.T) {
	svc, _ := newSessionService()
	ctx := context.Background()

	res, _ := svc.Login(ctx, ports.LoginInput{UserType: "tenant", Email: "raju@gmail.com"})

	sess, err := svc.Continue(ctx, res.Session.ID)
	if err != nil {
		t.Fatalf("continue: %v", err)
	}
	if sess.Stage != domain.StageDashboard || sess.View() != "tenant_dashboard" {
		t.Fatalf("expected tenant dashboard, got %s / %s", sess.Stage, sess.View())
	}

	again, err := svc.Continue(ctx, res.Session.ID)
	if err != nil || again.Stage != domain.StageDashboard {
		t.Fatalf("second continue should be a no-op, got %v %v", again, err)
	}

	if err := svc.Logout(ctx, res.Session.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Current(ctx, res.Session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
	if err := svc.Logout(ctx, res.Session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second logout, got %v", err)
	}
}

func TestSessionService_Continue_UnknownSession(t *testing.T) {
	svc, _ := newSessionService()

	_, err := svc.Continue(context.Background(), "nope")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_LoginAfterLogoutIsFresh(t *testing.T) {
	svc, _ := newSessionService()
	ctx := context.Background()

	first, _ := svc.Login(ctx, ports.LoginInput{UserType: "admin", Email: "a@b.c"})
	_, _ = svc.Continue(ctx, first.Session.ID)
	_ = svc.Logout(ctx, first.Session.ID)

	second, err := svc.Login(ctx, ports.LoginInput{UserType: "admin", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Session.ID == first.Session.ID {
		t.Fatalf("session id reused")
	}
	if second.Session.Stage != domain.StageWelcome {
		t.Fatalf("new session must start at welcome, got %s", second.Session.Stage)
	}
}
