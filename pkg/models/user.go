package models

import "time"

// User is a simple identity record. It is not wired into the assessment
// flow; assessor identity travels on each assessment instead.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
