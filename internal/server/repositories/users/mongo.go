package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

const CollectionName = "users"

type userDocument struct {
	ID              bson.ObjectID    `bson:"_id,omitempty"`
	FirstName       string           `bson:"firstName"`
	LastName        string           `bson:"lastName"`
	Email           string           `bson:"email"`
	PasswordHash    string           `bson:"password"`
	EnrolledCourses []courseDocument `bson:"enrolledCourses"`
	CreatedAt       time.Time        `bson:"createdAt"`
}

type courseDocument struct {
	CourseID   string    `bson:"courseId"`
	Title      string    `bson:"title"`
	EnrolledAt time.Time `bson:"enrolledAt"`
}

// MongoRepository keeps enrollments embedded in the user document so every
// enrollment change is a single-document atomic update.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the unique email index.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	doc := userDocument{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		// $push onto a null field fails, so the array must exist from the start.
		EnrolledCourses: []courseDocument{},
		CreatedAt:       time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("db error: unexpected inserted id %T", res.InsertedID)
	}

	user.ID = id.Hex()
	user.CreatedAt = doc.CreatedAt
	user.EnrolledCourses = []models.EnrolledCourse{}
	return user, nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	return r.findOne(ctx, byID(oid))
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) AddCourse(ctx context.Context, userID string, course models.EnrolledCourse) ([]models.EnrolledCourse, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err = r.coll.FindOneAndUpdate(ctx, enrollFilter(oid, course.CourseID), enrollUpdate(course), opts).Decode(&doc)
	if err == nil {
		return doc.toModel().EnrolledCourses, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("db error: %w", err)
	}

	// The filter did not match: either the user is gone or the course is
	// already in the array.
	n, err := r.coll.CountDocuments(ctx, byID(oid))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return nil, unmatchedEnrollError(n)
}

// unmatchedEnrollError explains a conditional push that matched nothing,
// given how many documents carry the user's _id.
func unmatchedEnrollError(users int64) error {
	if users == 0 {
		return common.ErrUserNotFound
	}
	return common.ErrAlreadyEnrolled
}

func (r *MongoRepository) RemoveCourse(ctx context.Context, userID, courseID string) error {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return common.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx, byID(oid), unenrollUpdate(courseID))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

func (r *MongoRepository) ListCourses(ctx context.Context, userID string) ([]models.EnrolledCourse, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.EnrolledCourses, nil
}

func byID(id bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// enrollFilter matches the user only while courseID is absent from the array.
func enrollFilter(id bson.ObjectID, courseID string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "enrolledCourses.courseId", Value: bson.D{{Key: "$ne", Value: courseID}}},
	}
}

func enrollUpdate(course models.EnrolledCourse) bson.D {
	return bson.D{{Key: "$push", Value: bson.D{{Key: "enrolledCourses", Value: courseDocument{
		CourseID:   course.CourseID,
		Title:      course.Title,
		EnrolledAt: course.EnrolledAt,
	}}}}}
}

func unenrollUpdate(courseID string) bson.D {
	return bson.D{{Key: "$pull", Value: bson.D{{Key: "enrolledCourses", Value: bson.D{{Key: "courseId", Value: courseID}}}}}}
}

func (d *userDocument) toModel() *models.User {
	courses := make([]models.EnrolledCourse, 0, len(d.EnrolledCourses))
	for _, c := range d.EnrolledCourses {
		courses = append(courses, models.EnrolledCourse{
			CourseID:   c.CourseID,
			Title:      c.Title,
			EnrolledAt: c.EnrolledAt.UTC(),
		})
	}
	return &models.User{
		ID:              d.ID.Hex(),
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		PasswordHash:    d.PasswordHash,
		EnrolledCourses: courses,
		CreatedAt:       d.CreatedAt.UTC(),
	}
}

var _ Repository = (*MongoRepository)(nil)
