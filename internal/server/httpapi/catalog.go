package httpapi

import (
	"net/http"
)

type tutorRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Subject string `json:"subject" validate:"required,max=200"`
	Bio     string `json:"bio" validate:"max=5000"`
}

type ratingRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=5000"`
}

func (h *Handlers) CreateTutor(w http.ResponseWriter, r *http.Request) {
	var body tutorRequest
	if err := h.decode(w, r, &body); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	tutor, err := h.tutors.Create(r.Context(), body.Name, body.Subject, body.Bio)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, tutor)
}

func (h *Handlers) ListTutors(w http.ResponseWriter, r *http.Request) {
	tutors, err := h.tutors.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, tutors)
}

func (h *Handlers) CreateRating(w http.ResponseWriter, r *http.Request) {
	var body ratingRequest
	if err := h.decode(w, r, &body); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	rating, err := h.ratings.Create(r.Context(), body.Name, body.Email, body.Rating, body.Comment)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}

func (h *Handlers) ListRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.ratings.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}

func (h *Handlers) DeleteRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	if err := h.ratings.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Rating deleted successfully")
}
