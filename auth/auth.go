// Package auth provides the in-memory account directory used by the demo
// deployment. It is intentionally small: a fixed set of users, role and
// permission checks, and a session provider the publisher can consult for
// the acting user.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrNotAuthenticated   = errors.New("auth: not authenticated")
)

// User is a directory account.
type User struct {
	ID          string
	Email       string
	FirstName   string
	LastName    string
	Role        string
	Plan        string
	Permissions []string
	CreatedAt   time.Time
	LastLogin   time.Time
}

// HasPermission reports whether the user holds the named permission. The
// "all" permission grants everything.
func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == "all" || p == permission {
			return true
		}
	}
	return false
}

// accessRules maps resources to the roles allowed to reach them.
var accessRules = map[string][]string{
	"admin_panel":         {"admin"},
	"user_management":     {"admin", "manager"},
	"analytics":           {"admin", "manager", "editor"},
	"page_creation":       {"admin", "manager", "editor"},
	"template_management": {"admin", "manager"},
	"billing":             {"admin"},
	"settings":            {"admin", "manager"},
}

// CanAccess reports whether the user's role may reach the named resource.
func (u *User) CanAccess(resource string) bool {
	allowed, ok := accessRules[resource]
	if !ok {
		return false
	}
	for _, role := range allowed {
		if u.Role == role {
			return true
		}
	}
	return false
}

// Service authenticates against the demo directory and tracks the current
// session. Safe for concurrent use.
type Service struct {
	mu      sync.RWMutex
	users   map[string]User
	current *User
	clock   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for login timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithUsers replaces the demo directory.
func WithUsers(users []User) Option {
	return func(s *Service) {
		s.users = make(map[string]User, len(users))
		for _, user := range users {
			s.users[strings.ToLower(user.Email)] = user
		}
	}
}

// NewService builds a Service seeded with the demo accounts.
func NewService(opts ...Option) *Service {
	s := &Service{
		users: demoDirectory(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login checks the credentials and establishes the session. All demo
// accounts share the same fixed password.
func (s *Service) Login(email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok || password != demoPassword {
		return nil, ErrInvalidCredentials
	}
	user.LastLogin = s.clock()
	s.users[strings.ToLower(user.Email)] = user
	s.current = &user

	clone := user
	return &clone, nil
}

// Logout clears the session.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the logged-in user, if any.
func (s *Service) Current() (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	clone := *s.current
	return &clone, true
}

// CurrentUserID implements interfaces.AuthProvider.
func (s *Service) CurrentUserID(_ context.Context) (string, error) {
	user, ok := s.Current()
	if !ok {
		return "", ErrNotAuthenticated
	}
	return user.ID, nil
}

const demoPassword = "password123"

func demoDirectory() map[string]User {
	users := []User{
		{
			ID:          "user-1",
			Email:       "admin@example.com",
			FirstName:   "Admin",
			LastName:    "User",
			Role:        "admin",
			Plan:        "enterprise",
			Permissions: []string{"all"},
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "user-2",
			Email:       "manager@example.com",
			FirstName:   "Manager",
			LastName:    "User",
			Role:        "manager",
			Plan:        "professional",
			Permissions: []string{"manage_pages", "manage_users", "view_analytics", "manage_templates"},
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "user-3",
			Email:       "editor@example.com",
			FirstName:   "Editor",
			LastName:    "User",
			Role:        "editor",
			Plan:        "basic",
			Permissions: []string{"create_pages", "edit_pages", "view_analytics"},
			CreatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "user-4",
			Email:       "viewer@example.com",
			FirstName:   "Viewer",
			LastName:    "User",
			Role:        "viewer",
			Plan:        "basic",
			Permissions: []string{"view_pages"},
			CreatedAt:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	directory := make(map[string]User, len(users))
	for _, user := range users {
		directory[strings.ToLower(user.Email)] = user
	}
	return directory
}
