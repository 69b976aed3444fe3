package tutors

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	tutors []models.TutorProfile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, tutor *models.TutorProfile) (*models.TutorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tutor.ID = uuid.NewString()
	tutor.CreatedAt = time.Now().UTC()
	r.tutors = append(r.tutors, *tutor)
	return tutor, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.TutorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tutors == nil {
		return []models.TutorProfile{}, nil
	}
	return slices.Clone(r.tutors), nil
}

var _ Repository = (*InMemoryRepository)(nil)
