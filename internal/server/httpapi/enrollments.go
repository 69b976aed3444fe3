package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

type enrollRequest struct {
	CourseID string `json:"courseId" validate:"required,max=200"`
	Title    string `json:"title" validate:"required,max=500"`
}

type enrolledCoursesResponse struct {
	Message         string                  `json:"message,omitempty"`
	EnrolledCourses []models.EnrolledCourse `json:"enrolledCourses"`
}

func (h *Handlers) Enroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	var body enrollRequest
	if err := h.decode(w, r, &body); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	courses, err := h.enrollments.Enroll(r.Context(), userID, body.CourseID, body.Title)
	recordEnrollment("enroll", err)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, enrolledCoursesResponse{
		Message:         "Course enrolled successfully",
		EnrolledCourses: courses,
	})
}

func (h *Handlers) Unenroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	courseID, err := pathParam(r, "courseId")
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	err = h.enrollments.Unenroll(r.Context(), userID, courseID)
	recordEnrollment("unenroll", err)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeMessage(w, http.StatusOK, "Course unenrolled successfully")
}

func (h *Handlers) ListEnrolled(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity(w, r)
	if !ok {
		return
	}

	courses, err := h.enrollments.ListEnrolled(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, enrolledCoursesResponse{EnrolledCourses: courses})
}
