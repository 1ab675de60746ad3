package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/session"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := newFlagSet("login", a.stderr)
	var form entity.LoginForm
	fs.StringVar(&form.Identifier, "identifier", "", "Username or email")
	fs.StringVar(&form.Password, "password", "", "Password")
	if _, err := parseWithID(fs, args); err != nil {
		return err
	}

	user, err := a.authService().Login(ctx, form)
	if err != nil {
		return err
	}
	return a.renderUser(user, nil)
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := newFlagSet("register", a.stderr)
	var form entity.RegisterForm
	fs.StringVar(&form.Username, "username", "", "Username")
	fs.StringVar(&form.Email, "email", "", "Email address")
	fs.StringVar(&form.Password, "password", "", "Password")
	if _, err := parseWithID(fs, args); err != nil {
		return err
	}

	user, err := a.authService().Register(ctx, form)
	if err != nil {
		return err
	}
	return a.renderUser(user, nil)
}

func (a *app) cmdLogout(ctx context.Context) error {
	return a.authService().Logout(ctx)
}

func (a *app) cmdMe(ctx context.Context) error {
	user, err := a.authService().Profile(ctx)
	if errors.Is(err, session.ErrNoToken) {
		return fmt.Errorf("%w: run cmsdesk login first", err)
	}
	if err != nil {
		return err
	}

	claims, err := a.session.Claims()
	if err != nil {
		// Opaque token: no claims to show.
		return a.renderUser(user, nil)
	}
	if claims.Expired(time.Now()) {
		a.logger.Warn("stored token has expired", slog.Time("expires_at", claims.ExpiresAt))
	}
	return a.renderUser(user, &claims)
}
