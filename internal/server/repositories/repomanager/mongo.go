package repomanager

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrijs2005/coursehub/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/tutors"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/users"
)

// MongoRepositoryManager vends MongoDB-backed repositories. Users keep their
// enrollments embedded so enrollment changes are single-document updates.
type MongoRepositoryManager struct {
	client  *mongo.Client
	users   *users.MongoRepository
	tutors  tutors.Repository
	ratings ratings.Repository
}

// NewMongoRepositoryManager creates a client. The driver connects lazily, so
// reachability is checked by Ping.
func NewMongoRepositoryManager(ctx context.Context, uri, database string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	db := client.Database(database)
	return &MongoRepositoryManager{
		client:  client,
		users:   users.NewMongoRepository(db),
		tutors:  tutors.NewMongoRepository(db),
		ratings: ratings.NewMongoRepository(db),
	}, nil
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) Tutors() tutors.Repository {
	return m.tutors
}

func (m *MongoRepositoryManager) Ratings() ratings.Repository {
	return m.ratings
}

// RunMigrations has no schema to apply; it ensures the indexes the
// repositories rely on exist.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	return m.users.EnsureIndexes(ctx)
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

var _ RepositoryManager = (*MongoRepositoryManager)(nil)
