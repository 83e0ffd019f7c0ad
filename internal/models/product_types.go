package models

import "time"

// Product is the model for the 'products' collection.
// The JSON tags mirror the wire contract the storefront was built against,
// so 'Category' serializes as "cat" and 'CreatedAt' as "date".
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Category    string    `json:"cat" db:"category"`
	Price       float64   `json:"price" db:"price"`
	Image       string    `json:"image" db:"image"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"date" db:"created_at"`
	Available   bool      `json:"available" db:"available"`
}
