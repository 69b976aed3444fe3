package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coursehub/internal/client/client"
	"github.com/dmitrijs2005/coursehub/internal/client/models"
	"github.com/dmitrijs2005/coursehub/internal/client/repositories/metadata"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func storedSession(t *testing.T, db *sql.DB) *metadata.Session {
	t.Helper()
	s, err := metadata.NewSQLiteRepository(db).Session(context.Background())
	require.NoError(t, err)
	return s
}

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	token string

	LoginToken string
	LoginErr   error
	Err        error
	PingErr    error

	LastRegistration models.Registration
	LastEmail        string
	LastPassword     string
	LastEnroll       [2]string
	LastUnenroll     string

	Enrolled []models.EnrolledCourse
}

func (f *fakeClient) SetAccessToken(token string) { f.token = token }
func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, r models.Registration) error {
	f.LastRegistration = r
	return f.Err
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Profile(ctx context.Context) (*models.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.User{Email: f.LastEmail, EnrolledCourses: f.Enrolled}, nil
}

func (f *fakeClient) Courses(ctx context.Context) ([]models.EnrolledCourse, error) {
	return f.Enrolled, f.Err
}

func (f *fakeClient) Enroll(ctx context.Context, courseID, title string) ([]models.EnrolledCourse, error) {
	f.LastEnroll = [2]string{courseID, title}
	if f.Err != nil {
		return nil, f.Err
	}
	f.Enrolled = append(f.Enrolled, models.EnrolledCourse{CourseID: courseID, Title: title})
	return f.Enrolled, nil
}

func (f *fakeClient) Unenroll(ctx context.Context, courseID string) error {
	f.LastUnenroll = courseID
	return f.Err
}

func (f *fakeClient) Tutors(ctx context.Context) ([]models.Tutor, error) {
	return []models.Tutor{{Name: "Grace"}}, f.Err
}

func (f *fakeClient) Ratings(ctx context.Context) ([]models.Rating, error) {
	return []models.Rating{{Score: 5}}, f.Err
}

var _ client.Client = (*fakeClient)(nil)
