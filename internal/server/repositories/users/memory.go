package users

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

// InMemoryRepository is a process-local store for development and tests.
// The mutex plays the role the database plays for the other backends.
type InMemoryRepository struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	byEmail map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrDuplicateEmail
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	user.EnrolledCourses = []models.EnrolledCourse{}

	stored := *user
	stored.EnrolledCourses = []models.EnrolledCourse{}
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = user.ID
	return user, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	return clone(r.byID[id]), nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	return clone(u), nil
}

func (r *InMemoryRepository) AddCourse(ctx context.Context, userID string, course models.EnrolledCourse) ([]models.EnrolledCourse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	if indexOf(u.EnrolledCourses, course.CourseID) >= 0 {
		return nil, common.ErrAlreadyEnrolled
	}
	u.EnrolledCourses = append(u.EnrolledCourses, course)
	return slices.Clone(u.EnrolledCourses), nil
}

func (r *InMemoryRepository) RemoveCourse(ctx context.Context, userID, courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return common.ErrUserNotFound
	}
	if i := indexOf(u.EnrolledCourses, courseID); i >= 0 {
		u.EnrolledCourses = slices.Delete(u.EnrolledCourses, i, i+1)
	}
	return nil
}

func (r *InMemoryRepository) ListCourses(ctx context.Context, userID string) ([]models.EnrolledCourse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	return slices.Clone(u.EnrolledCourses), nil
}

func indexOf(courses []models.EnrolledCourse, courseID string) int {
	return slices.IndexFunc(courses, func(c models.EnrolledCourse) bool { return c.CourseID == courseID })
}

func clone(u *models.User) *models.User {
	c := *u
	c.EnrolledCourses = slices.Clone(u.EnrolledCourses)
	if c.EnrolledCourses == nil {
		c.EnrolledCourses = []models.EnrolledCourse{}
	}
	return &c
}

var _ Repository = (*InMemoryRepository)(nil)
