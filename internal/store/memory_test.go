package store

import (
	"context"
	"testing"
	"time"

	"github.com/shoply/shoply-golang/internal/models"
	"github.com/stretchr/testify/assert"
)

func testProduct(id int64, title string) *models.Product {
	return &models.Product{
		ID:          id,
		Title:       title,
		Category:    "women",
		Price:       49.99,
		Image:       "http://localhost:4000/images/p.png",
		Description: "A product",
		CreatedAt:   time.Now(),
		Available:   true,
	}
}

func testUser(email string) *models.User {
	return &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CartData:     models.NewCartData(),
		CreatedAt:    time.Now(),
	}
}

func TestMemoryProducts_NextIDStrictlyIncreasing(t *testing.T) {
	s := NewMemoryProducts()
	ctx := context.Background()

	var last int64
	for i := 0; i < 10; i++ {
		id, err := s.NextID(ctx)
		assert.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestMemoryProducts_InsertionOrderAndDelete(t *testing.T) {
	s := NewMemoryProducts()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		id, _ := s.NextID(ctx)
		assert.NoError(t, s.Insert(ctx, testProduct(id, "p")))
	}

	all, err := s.All(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[2].ID)

	deleted, err := s.DeleteByID(ctx, 2)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// Deleting a missing id is a reported miss, not an error.
	deleted, err = s.DeleteByID(ctx, 99)
	assert.NoError(t, err)
	assert.False(t, deleted)

	all, _ = s.All(ctx)
	assert.Len(t, all, 2)
}

func TestMemoryUsers_DuplicateEmail(t *testing.T) {
	s := NewMemoryUsers()
	ctx := context.Background()

	first := testUser("a@example.com")
	assert.NoError(t, s.Insert(ctx, first))
	assert.NotZero(t, first.ID)

	err := s.Insert(ctx, testUser("a@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The first record is untouched.
	got, err := s.GetByEmail(ctx, "a@example.com")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Test User", got.Name)
}

func TestMemoryUsers_LookupsAndCartUpdate(t *testing.T) {
	s := NewMemoryUsers()
	ctx := context.Background()

	_, err := s.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.GetByID(ctx, 123)
	assert.ErrorIs(t, err, ErrUserNotFound)

	u := testUser("b@example.com")
	assert.NoError(t, s.Insert(ctx, u))

	cart := models.NewCartData()
	cart.Increment(5)
	assert.NoError(t, s.UpdateCart(ctx, u.ID, cart))

	got, err := s.GetByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, got.CartData.Quantity(5))

	// The store keeps its own copy: mutating the returned map must not
	// leak back in.
	got.CartData.Increment(5)
	again, _ := s.GetByID(ctx, u.ID)
	assert.Equal(t, 1, again.CartData.Quantity(5))

	assert.ErrorIs(t, s.UpdateCart(ctx, 999, cart), ErrUserNotFound)
}
