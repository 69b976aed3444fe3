package ratings

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

// InMemoryRepository keeps ratings newest first.
type InMemoryRepository struct {
	mu      sync.Mutex
	ratings []models.Rating
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rating.ID = uuid.NewString()
	rating.CreatedAt = time.Now().UTC()
	r.ratings = slices.Insert(r.ratings, 0, *rating)
	return rating, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ratings == nil {
		return []models.Rating{}, nil
	}
	return slices.Clone(r.ratings), nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ratings = slices.DeleteFunc(r.ratings, func(rt models.Rating) bool { return rt.ID == id })
	return nil
}

var _ Repository = (*InMemoryRepository)(nil)
