package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/coursehub/internal/server/config"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
	"github.com/dmitrijs2005/coursehub/internal/server/password"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/tutors"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/users"
)

const testSecret = "k"

var errStore = errors.New("store down")

func testConfig() *config.Config {
	return &config.Config{SecretKey: testSecret, TokenValidityDuration: time.Hour}
}

func newUserService(t *testing.T, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	s, err := NewUserService(rm, password.NewBcryptHasher(bcrypt.MinCost), testConfig())
	require.NoError(t, err)
	return s
}

// brokenRepoManager fails every store call with errStore.
type brokenRepoManager struct{}

func (brokenRepoManager) RunMigrations(context.Context) error { return errStore }
func (brokenRepoManager) Ping(context.Context) error          { return errStore }
func (brokenRepoManager) Close(context.Context) error         { return nil }
func (brokenRepoManager) Users() users.Repository             { return brokenUsers{} }
func (brokenRepoManager) Tutors() tutors.Repository           { return brokenTutors{} }
func (brokenRepoManager) Ratings() ratings.Repository         { return brokenRatings{} }

type brokenUsers struct{}

func (brokenUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, errStore }
func (brokenUsers) GetByEmail(context.Context, string) (*models.User, error)   { return nil, errStore }
func (brokenUsers) GetByID(context.Context, string) (*models.User, error)      { return nil, errStore }
func (brokenUsers) AddCourse(context.Context, string, models.EnrolledCourse) ([]models.EnrolledCourse, error) {
	return nil, errStore
}
func (brokenUsers) RemoveCourse(context.Context, string, string) error { return errStore }
func (brokenUsers) ListCourses(context.Context, string) ([]models.EnrolledCourse, error) {
	return nil, errStore
}

type brokenTutors struct{}

func (brokenTutors) Create(context.Context, *models.TutorProfile) (*models.TutorProfile, error) {
	return nil, errStore
}
func (brokenTutors) List(context.Context) ([]models.TutorProfile, error) { return nil, errStore }

type brokenRatings struct{}

func (brokenRatings) Create(context.Context, *models.Rating) (*models.Rating, error) {
	return nil, errStore
}
func (brokenRatings) List(context.Context) ([]models.Rating, error) { return nil, errStore }
func (brokenRatings) Delete(context.Context, string) error          { return errStore }
