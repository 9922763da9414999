package domain

import "time"

type Feedback struct {
	ID        string    `db:"id" json:"id"`
	UserID    *string   `db:"user_id" json:"userID"`
	Message   string    `db:"message" json:"message"`
	Rating    *int      `db:"rating" json:"rating"`
	Contact   *string   `db:"contact" json:"contact"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
