package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/coursehub/internal/client/client"
	"github.com/dmitrijs2005/coursehub/internal/client/models"
	"github.com/dmitrijs2005/coursehub/internal/client/repositories/metadata"
)

// CourseService wraps the signed-in API calls. A rejected token clears the
// stored session so the next prompt shows the user as signed out.
type CourseService interface {
	Profile(ctx context.Context) (*models.User, error)
	Courses(ctx context.Context) ([]models.EnrolledCourse, error)
	Enroll(ctx context.Context, courseID, title string) ([]models.EnrolledCourse, error)
	Unenroll(ctx context.Context, courseID string) error
	Tutors(ctx context.Context) ([]models.Tutor, error)
	Ratings(ctx context.Context) ([]models.Rating, error)
}

type courseService struct {
	client client.Client
	db     *sql.DB
}

func NewCourseService(client client.Client, db *sql.DB) CourseService {
	return &courseService{client: client, db: db}
}

func (s *courseService) Profile(ctx context.Context) (*models.User, error) {
	return withSession(ctx, s, s.client.Profile)
}

func (s *courseService) Courses(ctx context.Context) ([]models.EnrolledCourse, error) {
	return withSession(ctx, s, s.client.Courses)
}

func (s *courseService) Enroll(ctx context.Context, courseID, title string) ([]models.EnrolledCourse, error) {
	return withSession(ctx, s, func(ctx context.Context) ([]models.EnrolledCourse, error) {
		return s.client.Enroll(ctx, courseID, title)
	})
}

func (s *courseService) Unenroll(ctx context.Context, courseID string) error {
	_, err := withSession(ctx, s, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Unenroll(ctx, courseID)
	})
	return err
}

func (s *courseService) Tutors(ctx context.Context) ([]models.Tutor, error) {
	return s.client.Tutors(ctx)
}

func (s *courseService) Ratings(ctx context.Context) ([]models.Rating, error) {
	return s.client.Ratings(ctx)
}

func withSession[T any](ctx context.Context, s *courseService, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	token, err := metadata.NewSQLiteRepository(s.db).Token(ctx)
	if err != nil {
		return zero, err
	}
	if token == "" {
		return zero, ErrNotLoggedIn
	}

	res, err := fn(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		s.client.SetAccessToken("")
		if cerr := clearSession(ctx, s.db); cerr != nil {
			return zero, errors.Join(err, cerr)
		}
	}
	return res, err
}
