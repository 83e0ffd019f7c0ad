package handlers

import (
	"github.com/shoply/shoply-golang/internal/account"
	"github.com/shoply/shoply-golang/internal/auth"
	"github.com/shoply/shoply-golang/internal/catalog"
	"github.com/shoply/shoply-golang/internal/config"
	"go.uber.org/zap"
)

// Handlers holds all dependencies for the HTTP surface.
type Handlers struct {
	Catalog  *catalog.Service
	Accounts *account.Service
	Tokens   *auth.TokenService
	Config   *config.Config
	Log      *zap.Logger
}
