// Package store is the persistence adapter for the two collections the
// backend owns: products and users. Callers get interfaces; the concrete
// engines live alongside so main can pick one and inject it.
package store

import (
	"context"
	"errors"

	"github.com/shoply/shoply-golang/internal/models"
)

var (
	// ErrProductNotFound is returned by lookups that matched no product.
	ErrProductNotFound = errors.New("store: product not found")
	// ErrUserNotFound is returned by lookups that matched no user.
	ErrUserNotFound = errors.New("store: user not found")
	// ErrDuplicateEmail is returned when an insert violates the unique
	// email constraint.
	ErrDuplicateEmail = errors.New("store: duplicate email")
)

// ProductStore persists catalog products and owns the id sequence.
type ProductStore interface {
	// NextID atomically allocates the next product id. Ids are unique and
	// strictly increasing even under concurrent callers.
	NextID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, p *models.Product) error
	// DeleteByID removes the product with the given id. It reports whether
	// a product was actually deleted; a miss is not an error.
	DeleteByID(ctx context.Context, id int64) (bool, error)
	// All returns every product in insertion order.
	All(ctx context.Context) ([]models.Product, error)
}

// UserStore persists user accounts and their cart documents.
type UserStore interface {
	// Insert stores a new user and fills in its storage-assigned id.
	// A taken email fails with ErrDuplicateEmail.
	Insert(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateCart rewrites the user's full cart document.
	UpdateCart(ctx context.Context, id int64, cart models.CartData) error
}
