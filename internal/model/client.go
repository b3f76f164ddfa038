package model

import "time"

// Client is a shop customer. Telephone is stored digits-only (10 local
// digits); display grouping is handled by the format package.
type Client struct {
	ID        int64     `json:"id"`
	Nom       string    `json:"nom"`
	Telephone string    `json:"telephone"`
	Adresse   *string   `json:"adresse"`
	CreatedAt time.Time `json:"created_at"`
}
