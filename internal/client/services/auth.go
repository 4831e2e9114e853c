// Package services contains the application services of the Jabuspark client.
// Every service is a thin layer over one client.Client call per operation;
// responses pass through client.Unwrap before they are decoded.
//
// This file defines the authentication service: login, logout, student
// registration and the department lookup used by the registration form.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
	"github.com/dmitrijs2005/jabuspark/internal/client/models"
	"github.com/dmitrijs2005/jabuspark/internal/logging"
)

// ErrInvalidAuthResponse is returned when the server accepted a login but
// the response carried no token or no user.
var ErrInvalidAuthResponse = errors.New("invalid auth response")

// SessionWriter is the part of the session store the auth service mutates.
type SessionWriter interface {
	SetSession(ctx context.Context, token string, user models.User) error
	ClearSession(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a session and persist it.
//   - Logout: drop the persisted session. Never fails.
//   - RegisterStudent: create an account; auto-login when the server
//     returns both a token and a user.
//   - FetchDepartments: list departments for the registration form.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context)
	RegisterStudent(ctx context.Context, req models.RegisterRequest) (*models.RegisterResult, error)
	FetchDepartments(ctx context.Context) ([]models.Department, error)
}

type authService struct {
	client  client.Client
	session SessionWriter
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(c client.Client, session SessionWriter, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, session: session, log: log}
}

// Login posts the credentials and stores the returned token and user. The
// store is left untouched on any failure.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var raw json.RawMessage
	req := models.LoginRequest{Email: email, Password: password}
	if err := a.client.Post(ctx, "/auth/login.php", req, &raw); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	var resp models.AuthResponse
	if err := client.DecodeData(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAuthResponse, err)
	}
	if resp.Token == "" || resp.User == nil {
		return nil, ErrInvalidAuthResponse
	}

	if err := a.session.SetSession(ctx, resp.Token, *resp.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	user := resp.User.Normalized()
	a.log.Info(ctx, "logged in", "email", user.Email, "role", user.Role)
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) {
	if err := a.session.ClearSession(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear session", "error", err)
		return
	}
	a.log.Info(ctx, "logged out")
}

// RegisterStudent posts the registration payload. The server response is
// returned as-is in Raw; Message and User are filled when present.
func (a *authService) RegisterStudent(ctx context.Context, req models.RegisterRequest) (*models.RegisterResult, error) {
	var raw json.RawMessage
	if err := a.client.Post(ctx, "/auth/register.php", req, &raw); err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	res := &models.RegisterResult{Raw: raw}

	var body struct {
		Token   string       `json:"token"`
		User    *models.User `json:"user"`
		Message string       `json:"message"`
	}
	if err := json.Unmarshal(client.Unwrap(raw), &body); err != nil {
		return res, nil
	}
	res.Message = body.Message

	if body.User != nil {
		u := body.User.Normalized()
		res.User = &u
	}

	if body.Token != "" && body.User != nil {
		if err := a.session.SetSession(ctx, body.Token, *body.User); err != nil {
			return nil, fmt.Errorf("session saving error: %w", err)
		}
		res.AutoLoggedIn = true
	}
	return res, nil
}

func (a *authService) FetchDepartments(ctx context.Context) ([]models.Department, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, "/departments/list.php", nil, &raw); err != nil {
		return nil, fmt.Errorf("fetch departments error: %w", err)
	}
	return client.ExtractList[models.Department](raw, "departments"), nil
}
