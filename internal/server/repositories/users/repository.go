// Package users stores user accounts and their enrollment sequences.
//
// AddCourse is the conditional append behind enrollment: the existence check
// and the append happen in one atomic store operation, so two concurrent
// calls for the same (user, course) pair cannot both succeed.
package users

import (
	"context"

	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

type Repository interface {
	// Create stores a new user with an empty enrollment sequence and fills
	// ID and CreatedAt. Returns common.ErrDuplicateEmail on email conflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByEmail returns common.ErrUserNotFound when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID returns the user with its enrollments or common.ErrUserNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// AddCourse appends course unless its CourseID is already present and
	// returns the updated sequence. Errors: common.ErrUserNotFound,
	// common.ErrAlreadyEnrolled.
	AddCourse(ctx context.Context, userID string, course models.EnrolledCourse) ([]models.EnrolledCourse, error)
	// RemoveCourse deletes courseID from the sequence. Removing an absent
	// course succeeds. Returns common.ErrUserNotFound for unknown users.
	RemoveCourse(ctx context.Context, userID, courseID string) error
	// ListCourses returns the sequence in enrollment order.
	ListCourses(ctx context.Context, userID string) ([]models.EnrolledCourse, error)
}
