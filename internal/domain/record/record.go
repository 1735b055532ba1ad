package record

import "time"

type Record struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRecordInput struct {
	FirstName string
	LastName  string
	Email     string
}

type UpdateRecordInput struct {
	FirstName string
	LastName  string
	Email     string
}
