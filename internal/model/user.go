package model

import "time"

// User represents a registered account. Farmers list products;
// any user can place orders.
type User struct {
	ID             int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	FullName       string    `json:"fullName" db:"full_name"`
	IsFarmer       bool      `json:"isFarmer" db:"is_farmer"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
