package domain

import (
	"strings"
	"time"
	"unicode"
)

// UserType is the account type chosen on the login form.
type UserType string

const (
	UserAdmin  UserType = "admin"
	UserTenant UserType = "tenant"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	return t == UserAdmin || t == UserTenant
}

// SessionStage tracks where a logged-in user is in the shell.
type SessionStage string

const (
	StageWelcome   SessionStage = "welcome"
	StageDashboard SessionStage = "dashboard"
)

// Session is the record of the currently authenticated user.
// LoggedOut is modelled by the absence of a session.
type Session struct {
	ID        string       `json:"id"`
	Type      UserType     `json:"type"`
	Email     string       `json:"email"`
	Stage     SessionStage `json:"stage"`
	CreatedAt time.Time    `json:"created_at"`
}

// View names the screen the shell routes this session to.
func (s *Session) View() string {
	if s.Stage == StageWelcome {
		return "welcome"
	}
	if s.Type == UserAdmin {
		return "admin_dashboard"
	}
	return "tenant_dashboard"
}

// DashboardTitle is the name of the dashboard this session continues to.
func (s *Session) DashboardTitle() string {
	if s.Type == UserAdmin {
		return "Admin Dashboard"
	}
	return "Tenant Portal"
}

// DisplayName derives a greeting name from an email's local part:
// "." and "_" become spaces and every word starts upper-case.
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ").Replace(local)

	out := []rune(local)
	for i, r := range out {
		if isWordRune(r) && (i == 0 || !isWordRune(out[i-1])) {
			out[i] = unicode.ToUpper(r)
		}
	}
	return string(out)
}

func isWordRune(r rune) bool {
	return r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
