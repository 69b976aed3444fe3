package ratings

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

const CollectionName = "ratings"

type ratingDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Score     int           `bson:"rating"`
	Comment   string        `bson:"comment"`
	CreatedAt time.Time     `bson:"createdAt"`
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	doc := ratingDocument{
		Name:      rating.Name,
		Email:     rating.Email,
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		rating.ID = id.Hex()
	}
	rating.CreatedAt = doc.CreatedAt
	return rating, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]models.Rating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var docs []ratingDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result := make([]models.Rating, 0, len(docs))
	for _, d := range docs {
		result = append(result, models.Rating{
			ID:        d.ID.Hex(),
			Name:      d.Name,
			Email:     d.Email,
			Score:     d.Score,
			Comment:   d.Comment,
			CreatedAt: d.CreatedAt.UTC(),
		})
	}
	return result, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

var _ Repository = (*MongoRepository)(nil)
