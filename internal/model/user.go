package model

import "time"

// User is the identity referenced by document ownership and signatures.
// Credential storage and authentication live outside this service; only
// the lookup fields needed to validate references are modeled here.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
