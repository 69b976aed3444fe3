package repomanager

import (
	"context"

	"github.com/dmitrijs2005/coursehub/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/tutors"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps everything in process memory. Data does
// not survive a restart.
type InMemoryRepositoryManager struct {
	users   users.Repository
	tutors  tutors.Repository
	ratings ratings.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:   users.NewInMemoryRepository(),
		tutors:  tutors.NewInMemoryRepository(),
		ratings: ratings.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Ping(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Close(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Tutors() tutors.Repository {
	return m.tutors
}

func (m *InMemoryRepositoryManager) Ratings() ratings.Repository {
	return m.ratings
}

var _ RepositoryManager = (*InMemoryRepositoryManager)(nil)
