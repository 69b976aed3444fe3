package models

import "time"

type Tutor struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
}

type Rating struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Score     int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
