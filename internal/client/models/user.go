// Package models holds the API payloads the CLI reads and writes.
package models

import "time"

type User struct {
	ID              string           `json:"_id"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Email           string           `json:"email"`
	EnrolledCourses []EnrolledCourse `json:"enrolledCourses"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type EnrolledCourse struct {
	CourseID   string    `json:"courseId"`
	Title      string    `json:"title"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}
