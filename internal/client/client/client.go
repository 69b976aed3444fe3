package client

import (
	"context"

	"github.com/dmitrijs2005/coursehub/internal/client/models"
)

// Client is the API surface the CLI services need. Authenticated calls use
// the token set with SetAccessToken.
type Client interface {
	SetAccessToken(token string)
	Ping(ctx context.Context) error
	Register(ctx context.Context, r models.Registration) error
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context) (*models.User, error)
	Courses(ctx context.Context) ([]models.EnrolledCourse, error)
	Enroll(ctx context.Context, courseID, title string) ([]models.EnrolledCourse, error)
	Unenroll(ctx context.Context, courseID string) error
	Tutors(ctx context.Context) ([]models.Tutor, error)
	Ratings(ctx context.Context) ([]models.Rating, error)
}
