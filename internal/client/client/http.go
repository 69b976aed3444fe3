package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/coursehub/internal/client/models"
)

// HTTPClient implements Client over the JSON API.
type HTTPClient struct {
	client    *http.Client
	baseURL   string
	healthURL string

	mu          sync.RWMutex
	accessToken string
}

// HTTPClientOption configures HTTPClient.
type HTTPClientOption func(*HTTPClient)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(c *http.Client) HTTPClientOption {
	return func(h *HTTPClient) {
		h.client = c
	}
}

// NewHTTPClient builds a client for baseURL, e.g. "http://127.0.0.1:3001/api".
// Health checks go to /health on the same host.
func NewHTTPClient(baseURL string, opts ...HTTPClientOption) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse server url: unsupported scheme %q", u.Scheme)
	}

	health := *u
	health.Path = "/health"
	health.RawQuery = ""

	h := &HTTPClient{
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(u.String(), "/"),
		healthURL: health.String(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *HTTPClient) SetAccessToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.accessToken = token
}

func (h *HTTPClient) token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.accessToken
}

func (h *HTTPClient) Ping(ctx context.Context) error {
	return h.do(ctx, http.MethodGet, h.healthURL, nil, nil, false)
}

func (h *HTTPClient) Register(ctx context.Context, r models.Registration) error {
	return h.do(ctx, http.MethodPost, h.baseURL+"/register", r, nil, false)
}

func (h *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := h.do(ctx, http.MethodPost, h.baseURL+"/login", req, &resp, false); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response carries no token")
	}
	return resp.Token, nil
}

func (h *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := h.do(ctx, http.MethodGet, h.baseURL+"/user", nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

type enrolledCourses struct {
	EnrolledCourses []models.EnrolledCourse `json:"enrolledCourses"`
}

func (h *HTTPClient) Courses(ctx context.Context) ([]models.EnrolledCourse, error) {
	var resp enrolledCourses
	if err := h.do(ctx, http.MethodGet, h.baseURL+"/user/courses", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.EnrolledCourses, nil
}

func (h *HTTPClient) Enroll(ctx context.Context, courseID, title string) ([]models.EnrolledCourse, error) {
	req := struct {
		CourseID string `json:"courseId"`
		Title    string `json:"title"`
	}{courseID, title}

	var resp enrolledCourses
	if err := h.do(ctx, http.MethodPost, h.baseURL+"/enroll", req, &resp, true); err != nil {
		return nil, err
	}
	return resp.EnrolledCourses, nil
}

func (h *HTTPClient) Unenroll(ctx context.Context, courseID string) error {
	return h.do(ctx, http.MethodDelete, h.baseURL+"/enroll/"+url.PathEscape(courseID), nil, nil, true)
}

func (h *HTTPClient) Tutors(ctx context.Context) ([]models.Tutor, error) {
	var tutors []models.Tutor
	if err := h.do(ctx, http.MethodGet, h.baseURL+"/tutors", nil, &tutors, false); err != nil {
		return nil, err
	}
	return tutors, nil
}

func (h *HTTPClient) Ratings(ctx context.Context) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := h.do(ctx, http.MethodGet, h.baseURL+"/ratings", nil, &ratings, false); err != nil {
		return nil, err
	}
	return ratings, nil
}

// do sends body as JSON and decodes a 2xx response into out when out is non-nil.
func (h *HTTPClient) do(ctx context.Context, method, target string, body, out any, auth bool) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		if token := h.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, readMessage(resp.Body, resp.Status))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &APIError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body, resp.Status)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readMessage extracts {"message": ...} from an error body, falling back to
// the HTTP status line.
func readMessage(r io.Reader, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&body); err != nil || body.Message == "" {
		return fallback
	}
	return body.Message
}

var _ Client = (*HTTPClient)(nil)
