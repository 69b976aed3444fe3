// Package repomanager owns the store connection and vends the repositories
// built on it. Open selects the backend from configuration.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coursehub/internal/server/config"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/tutors"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Users() users.Repository
	Tutors() tutors.Repository
	Ratings() ratings.Repository
}

// Open connects to the store named by cfg.StoreKind. The caller is expected
// to Ping and RunMigrations before serving traffic.
func Open(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StoreKind {
	case config.StorePostgres:
		return NewPostgresRepositoryManager(cfg.DatabaseDSN)
	case config.StoreMongo:
		return NewMongoRepositoryManager(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case config.StoreMemory:
		return NewInMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.StoreKind)
	}
}
