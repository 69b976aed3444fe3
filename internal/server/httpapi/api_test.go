package httpapi

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/coursehub/internal/server/auth"
)

func TestExampleScenario(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t)

	rec := api.do(t, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody[map[string]any](t, rec)
	assert.Equal(t, []any{}, user["enrolledCourses"])
	assert.Equal(t, "a@b.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "password")

	enroll := map[string]string{"courseId": "course1", "title": "X"}
	rec = api.do(t, http.MethodPost, "/api/enroll", token, enroll)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[enrolledCoursesResponse](t, rec)
	require.Len(t, resp.EnrolledCourses, 1)
	assert.Equal(t, "course1", resp.EnrolledCourses[0].CourseID)
	assert.Equal(t, "Course enrolled successfully", resp.Message)

	rec = api.do(t, http.MethodPost, "/api/enroll", token, enroll)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already enrolled in this course", message(t, rec))

	rec = api.do(t, http.MethodGet, "/api/user/courses", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[enrolledCoursesResponse](t, rec).EnrolledCourses, 1)

	rec = api.do(t, http.MethodDelete, "/api/enroll/course1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, decodeBody[map[string]any](t, rec)["enrolledCourses"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	api := newTestAPI(t)
	api.registerAndLogin(t)

	rec := api.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"firstName": "C", "lastName": "D", "email": "a@b.com", "password": "other",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists with this email", message(t, rec))
}

func TestRegister_Validation(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/register", "", map[string]string{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	msg := message(t, rec)
	assert.Contains(t, msg, "firstName is required")
	assert.Contains(t, msg, "email is invalid")
}

func TestRegister_MalformedJSON(t *testing.T) {
	api := newTestAPI(t)

	rec := serve(api.handler, newRequest(http.MethodPost, "/api/register", strings.NewReader("{")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, message(t, rec), "invalid JSON body")

	rec = api.do(t, http.MethodPost, "/api/register", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, message(t, rec), "request body is empty")
}

func TestLogin_InvalidCredentialsAreIdentical(t *testing.T) {
	api := newTestAPI(t)
	api.registerAndLogin(t)

	wrong := api.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "a@b.com", "password": "nope"})
	unknown := api.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "x@b.com", "password": "secret"})

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
	assert.Equal(t, "Invalid email or password", message(t, wrong))
}

func TestLogin_TokenCarriesIdentity(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t)

	id, err := auth.ParseToken(token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", id.Email)
	assert.Equal(t, "A", id.FirstName)
	assert.NotEmpty(t, id.UserID)
}

var protectedRoutes = []struct{ method, path string }{
	{http.MethodGet, "/api/user"},
	{http.MethodGet, "/api/user/courses"},
	{http.MethodPost, "/api/enroll"},
	{http.MethodDelete, "/api/enroll/course1"},
	{http.MethodDelete, "/api/ratings/r1"},
}

func TestProtectedRoutes_MissingToken(t *testing.T) {
	api := newTestAPI(t)

	for _, rt := range protectedRoutes {
		rec := api.do(t, rt.method, rt.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, rt.path)
		assert.Equal(t, "No token provided, authorization denied", message(t, rec), rt.path)
	}
}

func TestProtectedRoutes_InvalidToken(t *testing.T) {
	api := newTestAPI(t)

	for _, rt := range protectedRoutes {
		rec := api.do(t, rt.method, rt.path, "garbage", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, rt.path)
		assert.Equal(t, "Token is not valid", message(t, rec), rt.path)
	}
}

func TestProtectedRoutes_ExpiredToken(t *testing.T) {
	api := newTestAPI(t)
	api.registerAndLogin(t)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	u, err := api.store.Users().GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)

	expired, err := auth.GenerateToken(auth.Identity{UserID: u.ID, Email: u.Email, FirstName: u.FirstName}, []byte(testSecret), -time.Minute)
	require.NoError(t, err)

	for _, rt := range protectedRoutes {
		rec := api.do(t, rt.method, rt.path, expired, map[string]string{"courseId": "c1", "title": "X"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, rt.path)
	}
}

func TestProtectedRoutes_WrongScheme(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t)

	req := newRequest(http.MethodGet, "/api/user")
	req.Header.Set("Authorization", "Basic "+token)
	rec := serve(api.handler, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_UserDeletedAfterLogin(t *testing.T) {
	api := newTestAPI(t)

	ghost, err := auth.GenerateToken(auth.Identity{UserID: "ghost", Email: "g@b.com"}, []byte(testSecret), time.Hour)
	require.NoError(t, err)

	rec := api.do(t, http.MethodGet, "/api/user", ghost, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", message(t, rec))

	rec = api.do(t, http.MethodPost, "/api/enroll", ghost, map[string]string{"courseId": "c1", "title": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/enroll/c1", ghost, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnenroll_NotEnrolledIsNoop(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t)

	rec := api.do(t, http.MethodDelete, "/api/enroll/never", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnenroll_EscapedCourseIDs(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t)

	cases := []struct {
		courseID string
		path     string
	}{
		{"go/101", "/api/enroll/go%2F101"},
		{"intro to go", "/api/enroll/intro%20to%20go"},
		{"c%23", "/api/enroll/c%2523"},
	}

	for _, c := range cases {
		rec := api.do(t, http.MethodPost, "/api/enroll", token, map[string]string{"courseId": c.courseID, "title": "T"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	for _, c := range cases {
		rec := api.do(t, http.MethodDelete, c.path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, c.path)
		assert.Equal(t, "Course unenrolled successfully", message(t, rec))
	}

	rec := api.do(t, http.MethodGet, "/api/user/courses", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[enrolledCoursesResponse](t, rec).EnrolledCourses)
}

func TestUnenroll_MalformedEscape(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t)

	req := newRequest(http.MethodDelete, "/api/enroll/x")
	req.URL.RawPath = "/api/enroll/%zz"
	req.Header.Set("Authorization", "Bearer "+token)
	rec := serve(api.handler, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, message(t, rec), "malformed courseId")
}

func TestCORS_Wildcard(t *testing.T) {
	api := newTestAPI(t, func(rc *RouterConfig) { rc.AllowedOrigin = "*" })

	rec := serve(api.handler, newRequest(http.MethodGet, "/api/tutors"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req := newRequest(http.MethodGet, "/api/tutors")
	req.Header.Set("Origin", "http://anywhere.example")
	rec = serve(api.handler, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_NoOriginHeader(t *testing.T) {
	api := newTestAPI(t)

	rec := serve(api.handler, newRequest(http.MethodGet, "/api/tutors"))
	_, set := rec.Header()["Access-Control-Allow-Origin"]
	assert.False(t, set)
}

func TestEnroll_Validation(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t)

	rec := api.do(t, http.MethodPost, "/api/enroll", token, map[string]string{"title": "X"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, message(t, rec), "courseId is required")
}

func TestTutorsAndRatings(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerAndLogin(t)

	rec := api.do(t, http.MethodPost, "/api/tutors", "", map[string]string{"name": "Ann", "subject": "Math", "bio": "PhD"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/tutors", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, rec), 1)

	rec = api.do(t, http.MethodPost, "/api/ratings", "", map[string]any{"name": "Ann", "email": "ann@b.com", "rating": 9})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/ratings", "", map[string]any{"name": "Ann", "email": "ann@b.com", "rating": 5, "comment": "great"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decodeBody[map[string]any](t, rec)["_id"].(string)

	rec = api.do(t, http.MethodDelete, "/api/ratings/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rating deleted successfully", message(t, rec))

	rec = api.do(t, http.MethodGet, "/api/ratings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]map[string]any](t, rec))
}

func TestRootHealthAndMetrics(t *testing.T) {
	api := newTestAPI(t)

	rec := serve(api.handler, newRequest(http.MethodGet, "/"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello from coursehub!", rec.Body.String())

	rec = serve(api.handler, newRequest(http.MethodGet, "/health"))
	assert.Equal(t, http.StatusOK, rec.Code)

	serve(api.handler, newRequest(http.MethodGet, "/api/tutors"))
	rec = serve(api.handler, newRequest(http.MethodGet, "/metrics"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "coursehub_http_request_duration_seconds")
}

func TestSecurityHeadersAndCORS(t *testing.T) {
	api := newTestAPI(t)

	req := newRequest(http.MethodOptions, "/api/enroll")
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := serve(api.handler, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	req = newRequest(http.MethodGet, "/api/tutors")
	req.Header.Set("Origin", "http://evil.example")
	rec = serve(api.handler, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestAuthRateLimit(t *testing.T) {
	api := newTestAPI(t, func(c *RouterConfig) { c.AuthRateLimit = "2-M" })

	body := map[string]string{"email": "x@b.com", "password": "secret"}
	for i := 0; i < 2; i++ {
		rec := api.do(t, http.MethodPost, "/api/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := api.do(t, http.MethodPost, "/api/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests, please try again later", message(t, rec))

	// Other routes are not limited.
	rec = api.do(t, http.MethodGet, "/api/tutors", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRouter_BadRate(t *testing.T) {
	h := NewHandlers(nil, nil, nil, nil, nil, nil)
	_, err := NewRouter(h, RouterConfig{AuthRateLimit: "lots"})
	assert.Error(t, err)
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := serve(api.handler, newRequest(http.MethodGet, "/api/nope"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", message(t, rec))
}
