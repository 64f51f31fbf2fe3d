// internal/models/engagement.go
package models

import "time"

// Comment is an append-only entry in a product's comment log. Comments are
// never mutated or removed once added.
type Comment struct {
	ProductID uint64    `json:"product_id"`
	Commenter string    `json:"commenter"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a rated write-up on a product. A reviewer holds at most one live
// review per product; resubmitting rewrites the existing entry in place and
// keeps its index.
type Review struct {
	ProductID uint64    `json:"product_id"`
	Reviewer  string    `json:"reviewer"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
