package domain

import "time"

type GarageImage struct {
	ID        string    `db:"id" json:"id"`
	GarageID  string    `db:"garage_id" json:"garageID"`
	ImageURL  string    `db:"url" json:"url"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
