// Package models defines server-side data models persisted by the store.
package models

import "time"

// User is an account record. PasswordHash never leaves the server.
type User struct {
	ID              string           `json:"_id" db:"id"`
	FirstName       string           `json:"firstName" db:"first_name"`
	LastName        string           `json:"lastName" db:"last_name"`
	Email           string           `json:"email" db:"email"`
	PasswordHash    string           `json:"-" db:"password_hash"`
	EnrolledCourses []EnrolledCourse `json:"enrolledCourses"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
}

// EnrolledCourse is one entry of a user's enrollment sequence.
// CourseID is unique within a single user.
type EnrolledCourse struct {
	CourseID   string    `json:"courseId" db:"course_id"`
	Title      string    `json:"title" db:"title"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
}
