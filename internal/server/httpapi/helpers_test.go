package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/coursehub/internal/logging"
	"github.com/dmitrijs2005/coursehub/internal/server/config"
	"github.com/dmitrijs2005/coursehub/internal/server/password"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/coursehub/internal/server/services"
)

const testSecret = "test-secret"

type testAPI struct {
	handler http.Handler
	store   *repomanager.InMemoryRepositoryManager
}

func newTestAPI(t *testing.T, mutate ...func(*RouterConfig)) *testAPI {
	t.Helper()

	store := repomanager.NewInMemoryRepositoryManager()
	cfg := &config.Config{SecretKey: testSecret, TokenValidityDuration: time.Hour}
	us, err := services.NewUserService(store, password.NewBcryptHasher(bcrypt.MinCost), cfg)
	require.NoError(t, err)

	h := NewHandlers(us,
		services.NewEnrollmentService(store),
		services.NewTutorService(store),
		services.NewRatingService(store),
		store,
		logging.Nop())

	rc := RouterConfig{
		BasePath:      "/api",
		Secret:        []byte(testSecret),
		AllowedOrigin: "http://localhost:3000",
		Metrics:       true,
		Logger:        logging.Nop(),
	}
	for _, m := range mutate {
		m(&rc)
	}

	handler, err := NewRouter(h, rc)
	require.NoError(t, err)
	return &testAPI{handler: handler, store: store}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf).WithContext(context.Background())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]any](t, rec)["message"].(string)
}

// registerAndLogin creates the user from the example scenario and returns
// its session token.
func (a *testAPI) registerAndLogin(t *testing.T) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"firstName": "A", "lastName": "B", "email": "a@b.com", "password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "a@b.com", "password": "secret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[loginResponse](t, rec).Token
}

func newRequest(method, path string, body ...io.Reader) *http.Request {
	var r io.Reader
	if len(body) > 0 {
		r = body[0]
	}
	return httptest.NewRequest(method, path, r).WithContext(context.Background())
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
