// Package services contains the CLI's application services: the session
// (login state kept in the local metadata table) and course operations.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/coursehub/internal/client/client"
	"github.com/dmitrijs2005/coursehub/internal/client/models"
	"github.com/dmitrijs2005/coursehub/internal/client/repositories/metadata"
)

// ErrNotLoggedIn is returned by operations that need a session when none is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService manages the session token.
//
// The token and the email it was issued for are stored locally so a restarted
// CLI stays signed in until the token expires or the user logs out.
type AuthService interface {
	Register(ctx context.Context, r models.Registration) error
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	// Restore loads a stored session into the API client and returns its
	// email, or "" when there is none.
	Restore(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) Register(ctx context.Context, r models.Registration) error {
	return a.client.Register(ctx, r)
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	err = metadata.NewSQLiteRepository(a.db).SaveSession(ctx, metadata.Session{Token: token, Email: email})
	if err != nil {
		return err
	}

	a.client.SetAccessToken(token)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetAccessToken("")
	return clearSession(ctx, a.db)
}

func (a *authService) Restore(ctx context.Context) (string, error) {
	session, err := metadata.NewSQLiteRepository(a.db).Session(ctx)
	if err != nil || session == nil {
		return "", err
	}

	a.client.SetAccessToken(session.Token)
	return session.Email, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// clearSession drops everything stored for the signed-in user.
func clearSession(ctx context.Context, db *sql.DB) error {
	return metadata.NewSQLiteRepository(db).Clear(ctx)
}
