// Package httpapi exposes the coursehub services as a JSON HTTP API built
// on chi. Error bodies are always {"message": "..."}.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/dmitrijs2005/coursehub/internal/logging"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
	"github.com/dmitrijs2005/coursehub/internal/server/services"
)

const maxBodyBytes = 1 << 20

type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type EnrollmentService interface {
	Enroll(ctx context.Context, userID, courseID, title string) ([]models.EnrolledCourse, error)
	Unenroll(ctx context.Context, userID, courseID string) error
	ListEnrolled(ctx context.Context, userID string) ([]models.EnrolledCourse, error)
}

type TutorService interface {
	Create(ctx context.Context, name, subject, bio string) (*models.TutorProfile, error)
	List(ctx context.Context) ([]models.TutorProfile, error)
}

type RatingService interface {
	Create(ctx context.Context, name, email string, score int, comment string) (*models.Rating, error)
	List(ctx context.Context) ([]models.Rating, error)
	Delete(ctx context.Context, id string) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers holds the services behind each route.
type Handlers struct {
	users       UserService
	enrollments EnrollmentService
	tutors      TutorService
	ratings     RatingService
	store       Pinger
	logger      logging.Logger
	validate    *validator.Validate
}

func NewHandlers(us UserService, es EnrollmentService, ts TutorService, rs RatingService, store Pinger, l logging.Logger) *Handlers {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handlers{
		users:       us,
		enrollments: es,
		tutors:      ts,
		ratings:     rs,
		store:       store,
		logger:      l,
		validate:    v,
	}
}

// decode reads a JSON body into dst and validates its struct tags.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", common.ErrValidation)
		}
		return fmt.Errorf("%w: invalid JSON body", common.ErrValidation)
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", common.ErrValidation, describeValidation(err))
	}
	return nil
}

// pathParam returns a decoded URL parameter. chi matches against RawPath
// when the request has one, and then the parameter is still escaped.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", fmt.Errorf("%w: malformed %s", common.ErrValidation, name)
	}
	return decoded, nil
}

// describeValidation turns validator output into "email is invalid" style
// text. Field names are the json names.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "email":
			parts = append(parts, field+" is invalid")
		case "max":
			parts = append(parts, field+" is too long")
		case "min", "gte", "lte":
			parts = append(parts, field+" is out of range")
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, ", ")
}

func (h *Handlers) identity(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, capitalize(common.ErrMissingToken.Error()))
		return "", false
	}
	return id.UserID, true
}

func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Hello from coursehub!")
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn(r.Context(), "health check failed", "error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
