package model

import "time"

// Review is a customer's rating of a fulfilled order. Each order has
// at most one review; the unique constraint on order_id enforces it.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	OrderID   int64     `json:"orderId" db:"order_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
