// Package auth provides sign-in, sign-up and profile use cases.
// The token issued by the backend lives only in the session; nothing else
// holds on to it.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms"
	"cmsdesk/internal/infra/notifier"
	"cmsdesk/internal/observability/logging"
	"cmsdesk/internal/session"
)

// API is the subset of the backend client the auth use cases need.
type API interface {
	Login(ctx context.Context, identifier, password string) (*cms.AuthResult, error)
	Register(ctx context.Context, username, email, password string) (*cms.AuthResult, error)
	Me(ctx context.Context) (*entity.User, error)
}

// Service handles authentication. It is framework-agnostic and used by the console.
type Service struct {
	api      API
	session  *session.Session
	notifier notifier.Notifier
}

// NewService creates a new authentication service. n may be nil.
func NewService(api API, sess *session.Session, n notifier.Notifier) *Service {
	if n == nil {
		n = notifier.NewNoOpNotifier()
	}
	return &Service{api: api, session: sess, notifier: n}
}

// Login validates the form, signs in and stores the issued token in the session.
func (s *Service) Login(ctx context.Context, form entity.LoginForm) (*entity.User, error) {
	if err := form.Validate(); err != nil {
		return nil, s.fail(ctx, "Login failed", err)
	}

	result, err := s.api.Login(ctx, form.Identifier, form.Password)
	if err != nil {
		return nil, s.fail(ctx, "Login failed", fmt.Errorf("login: %w", err))
	}
	if err := s.session.Login(result.JWT, result.User); err != nil {
		return nil, s.fail(ctx, "Login failed", err)
	}

	s.notifier.Notify(ctx, notifier.Success("Logged in", "Welcome back, "+result.User.Username))
	return result.User, nil
}

// Register creates an account. The new account is not signed in; the user
// logs in explicitly afterwards.
func (s *Service) Register(ctx context.Context, form entity.RegisterForm) (*entity.User, error) {
	if err := form.Validate(); err != nil {
		return nil, s.fail(ctx, "Registration failed", err)
	}

	result, err := s.api.Register(ctx, form.Username, form.Email, form.Password)
	if err != nil {
		return nil, s.fail(ctx, "Registration failed", fmt.Errorf("register: %w", err))
	}

	s.notifier.Notify(ctx, notifier.Success("Registered", "Account created, please log in"))
	return result.User, nil
}

// Profile returns the signed-in user. It fails with session.ErrNoToken
// when no token is stored.
func (s *Service) Profile(ctx context.Context) (*entity.User, error) {
	if _, ok := s.session.Token(); !ok {
		return nil, session.ErrNoToken
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		return nil, s.fail(ctx, "Failed to load profile", fmt.Errorf("load profile: %w", err))
	}
	s.session.SetUser(user)
	return user, nil
}

// Logout clears the session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.session.Logout(); err != nil {
		return s.fail(ctx, "Logout failed", err)
	}
	s.notifier.Notify(ctx, notifier.Info("Logged out", ""))
	return nil
}

func (s *Service) fail(ctx context.Context, title string, err error) error {
	logging.WithRequestID(ctx, logging.FromContext(ctx)).Warn("auth operation failed",
		slog.String("operation", title),
		slog.Any("error", err))
	s.notifier.Notify(ctx, notifier.Error(title, err))
	return err
}
