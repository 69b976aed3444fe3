package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/repomanager"
)

// EnrollmentService owns the per-user enrollment sequence. Uniqueness is
// enforced by the repository's conditional append, not here.
type EnrollmentService struct {
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewEnrollmentService(m repomanager.RepositoryManager) *EnrollmentService {
	return &EnrollmentService{repomanager: m, now: time.Now}
}

func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID, title string) ([]models.EnrolledCourse, error) {
	courseID = strings.TrimSpace(courseID)
	title = strings.TrimSpace(title)
	if courseID == "" || title == "" {
		return nil, fmt.Errorf("%w: courseId and title are required", common.ErrValidation)
	}

	course := models.EnrolledCourse{
		CourseID:   courseID,
		Title:      title,
		EnrolledAt: s.now().UTC(),
	}

	courses, err := s.repomanager.Users().AddCourse(ctx, userID, course)
	if err != nil {
		return nil, passSentinel(err, "error enrolling", common.ErrUserNotFound, common.ErrAlreadyEnrolled)
	}
	return courses, nil
}

// Unenroll removes courseID. A course the user is not enrolled in is not
// an error.
func (s *EnrollmentService) Unenroll(ctx context.Context, userID, courseID string) error {
	if err := s.repomanager.Users().RemoveCourse(ctx, userID, courseID); err != nil {
		return passSentinel(err, "error unenrolling", common.ErrUserNotFound)
	}
	return nil
}

func (s *EnrollmentService) ListEnrolled(ctx context.Context, userID string) ([]models.EnrolledCourse, error) {
	courses, err := s.repomanager.Users().ListCourses(ctx, userID)
	if err != nil {
		return nil, passSentinel(err, "error listing courses", common.ErrUserNotFound)
	}
	return courses, nil
}

// passSentinel returns err unchanged when it is one of the expected domain
// errors and wraps it with op otherwise.
func passSentinel(err error, op string, sentinels ...error) error {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
