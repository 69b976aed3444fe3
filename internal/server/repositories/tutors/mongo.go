package tutors

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

const CollectionName = "tutorprofiles"

type tutorDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Subject   string        `bson:"subject"`
	Bio       string        `bson:"bio"`
	CreatedAt time.Time     `bson:"createdAt"`
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, tutor *models.TutorProfile) (*models.TutorProfile, error) {
	doc := tutorDocument{
		Name:      tutor.Name,
		Subject:   tutor.Subject,
		Bio:       tutor.Bio,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		tutor.ID = id.Hex()
	}
	tutor.CreatedAt = doc.CreatedAt
	return tutor, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]models.TutorProfile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var docs []tutorDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result := make([]models.TutorProfile, 0, len(docs))
	for _, d := range docs {
		result = append(result, models.TutorProfile{
			ID:        d.ID.Hex(),
			Name:      d.Name,
			Subject:   d.Subject,
			Bio:       d.Bio,
			CreatedAt: d.CreatedAt.UTC(),
		})
	}
	return result, nil
}

var _ Repository = (*MongoRepository)(nil)
