package store

import (
	"context"
	"sync"

	"github.com/shoply/shoply-golang/internal/models"
)

// MemoryProducts is an in-memory ProductStore. It backs the test suite and
// lets the server run without a database (DB_DSN unset).
type MemoryProducts struct {
	mu       sync.Mutex
	products []models.Product
	lastID   int64
}

func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{}
}

func (s *MemoryProducts) NextID(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return s.lastID, nil
}

func (s *MemoryProducts) Insert(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, *p)
	return nil
}

func (s *MemoryProducts) DeleteByID(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryProducts) All(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// MemoryUsers is an in-memory UserStore with the same uniqueness semantics
// as the MySQL schema.
type MemoryUsers struct {
	mu      sync.Mutex
	byID    map[int64]*models.User
	byEmail map[string]int64
	lastID  int64
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{
		byID:    make(map[int64]*models.User),
		byEmail: make(map[string]int64),
	}
}

func (s *MemoryUsers) Insert(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[u.Email]; taken {
		return ErrDuplicateEmail
	}

	s.lastID++
	u.ID = s.lastID

	stored := *u
	stored.CartData = cloneCart(u.CartData)
	s.byID[u.ID] = &stored
	s.byEmail[u.Email] = u.ID
	return nil
}

func (s *MemoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(s.byID[id]), nil
}

func (s *MemoryUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(u), nil
}

func (s *MemoryUsers) UpdateCart(ctx context.Context, id int64, cart models.CartData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	u.CartData = cloneCart(cart)
	return nil
}

func copyUser(u *models.User) *models.User {
	out := *u
	out.CartData = cloneCart(u.CartData)
	return &out
}

func cloneCart(cart models.CartData) models.CartData {
	out := make(models.CartData, len(cart))
	for k, v := range cart {
		out[k] = v
	}
	return out
}
