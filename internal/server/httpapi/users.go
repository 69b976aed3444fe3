package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/coursehub/internal/server/services"
)

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,max=128"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := h.decode(w, r, &body); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	_, err := h.users.Register(r.Context(), services.RegisterInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully!")
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := h.decode(w, r, &body); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	token, err := h.users.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: "Login successful", Token: token})
}

// Profile returns the caller's user record. The password hash is never
// serialized.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	user, err := h.users.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
