// Package metadata is a small key/value table in the CLI session database.
// The CLI keeps the bearer token and the signed-in email here.
package metadata

import (
	"context"
)

// Keys of the rows that make up a stored session.
const (
	TokenKey = "token"
	EmailKey = "email"
)

// Session is what a successful login leaves behind.
type Session struct {
	Token string
	Email string
}

type Repository interface {
	// SaveSession replaces the stored token and email.
	SaveSession(ctx context.Context, s Session) error
	// Session returns (nil, nil) when no token is stored.
	Session(ctx context.Context) (*Session, error)
	// Token returns "" when no token is stored.
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
