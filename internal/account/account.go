// Package account implements user registration, login and the per-user
// cart operations behind the authenticated endpoints.
package account

import (
	"context"
	"errors"
	"time"

	"github.com/shoply/shoply-golang/internal/auth"
	"github.com/shoply/shoply-golang/internal/models"
	"github.com/shoply/shoply-golang/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrEmailTaken means a user with that email already exists.
	ErrEmailTaken = errors.New("account: email already registered")
	// ErrWrongEmail means no user with that email exists. Kept distinct
	// from ErrWrongPassword: the two failure modes are part of the login
	// response contract.
	ErrWrongEmail = errors.New("account: no user with that email")
	// ErrWrongPassword means the password did not match.
	ErrWrongPassword = errors.New("account: wrong password")
	// ErrItemOutOfRange means the item id falls outside the cart's fixed
	// 0..299 key range.
	ErrItemOutOfRange = errors.New("account: item id outside cart range")
)

type Service struct {
	users  store.UserStore
	tokens *auth.TokenService
	log    *zap.Logger
}

func New(users store.UserStore, tokens *auth.TokenService, log *zap.Logger) *Service {
	return &Service{users: users, tokens: tokens, log: log}
}

// Register creates a user with a freshly seeded 300-slot cart and returns
// an auth token for the new account. A taken email fails with ErrEmailTaken.
func (s *Service) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return "", err
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return "", err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pw.Hash,
		CartData:     models.NewCartData(),
		CreatedAt:    time.Now(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		// Two concurrent signups can pass the pre-check; the unique
		// constraint settles the race.
		if errors.Is(err, store.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	s.log.Info("user registered", zap.Int64("id", user.ID), zap.String("email", user.Email))
	return s.tokens.GenerateToken(user.ID)
}

// Login checks the credentials and returns a token embedding the user's id.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrWrongEmail
		}
		return "", err
	}

	pw := models.Password{Hash: user.PasswordHash}
	match, err := pw.Matches(password)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrWrongPassword
	}

	return s.tokens.GenerateToken(user.ID)
}

// AddToCart increments the cart slot for itemID by one and rewrites the
// user's full cart document.
func (s *Service) AddToCart(ctx context.Context, userID int64, itemID int) error {
	if !models.ValidItemID(itemID) {
		return ErrItemOutOfRange
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.CartData.Increment(itemID)
	return s.users.UpdateCart(ctx, userID, user.CartData)
}

// RemoveFromCart decrements the cart slot for itemID, flooring at zero, and
// rewrites the full cart document.
func (s *Service) RemoveFromCart(ctx context.Context, userID int64, itemID int) error {
	if !models.ValidItemID(itemID) {
		return ErrItemOutOfRange
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.CartData.Decrement(itemID)
	return s.users.UpdateCart(ctx, userID, user.CartData)
}

// GetCart returns the user's cart map as stored.
func (s *Service) GetCart(ctx context.Context, userID int64) (models.CartData, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.CartData, nil
}
