// Package catalog implements the product catalog: sequential-id creation,
// idempotent removal, and the listing views the storefront reads.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/shoply/shoply-golang/internal/models"
	"github.com/shoply/shoply-golang/internal/store"
	"go.uber.org/zap"
)

// ErrMissingFields is returned when a required product field is empty.
var ErrMissingFields = errors.New("catalog: missing required product fields")

// recentCount is how many products ListRecent returns at most.
const recentCount = 4

type Service struct {
	products store.ProductStore
	log      *zap.Logger
}

func New(products store.ProductStore, log *zap.Logger) *Service {
	return &Service{products: products, log: log}
}

// Add allocates the next product id, persists the new product and returns
// it. Title, category, image and description are required; price is stored
// as given.
func (s *Service) Add(ctx context.Context, title, category string, price float64, image, description string) (*models.Product, error) {
	if title == "" || category == "" || image == "" || description == "" {
		return nil, ErrMissingFields
	}

	id, err := s.products.NextID(ctx)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          id,
		Title:       title,
		Category:    category,
		Price:       price,
		Image:       image,
		Description: description,
		CreatedAt:   time.Now(),
		Available:   true,
	}

	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("product saved", zap.Int64("id", product.ID), zap.String("title", product.Title))
	return product, nil
}

// Remove deletes the product with the given id. Removal is idempotent: a
// miss still succeeds so repeated deletes look the same to the caller.
func (s *Service) Remove(ctx context.Context, id int64) error {
	deleted, err := s.products.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		s.log.Info("product removed", zap.Int64("id", id))
	}
	return nil
}

// List returns every product in insertion order.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	return s.products.All(ctx)
}

// ListRecent returns the newest arrivals: drop the very first product, then
// take the last four of what remains. With one product or none the result
// is empty.
func (s *Service) ListRecent(ctx context.Context) ([]models.Product, error) {
	all, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	if len(all) <= 1 {
		return []models.Product{}, nil
	}

	rest := all[1:]
	if len(rest) > recentCount {
		rest = rest[len(rest)-recentCount:]
	}

	recent := make([]models.Product, len(rest))
	copy(recent, rest)
	return recent, nil
}
