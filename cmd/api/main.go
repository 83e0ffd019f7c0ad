package main

import (
	"log"

	"github.com/shoply/shoply-golang/internal/account"
	"github.com/shoply/shoply-golang/internal/auth"
	"github.com/shoply/shoply-golang/internal/catalog"
	"github.com/shoply/shoply-golang/internal/config"
	"github.com/shoply/shoply-golang/internal/database"
	"github.com/shoply/shoply-golang/internal/handlers"
	"github.com/shoply/shoply-golang/internal/routes"
	"github.com/shoply/shoply-golang/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// --- Persistence ---
	// With DB_DSN set we run on MySQL; without it the server falls back to
	// the in-memory stores, which is enough for local frontend work.
	var products store.ProductStore
	var users store.UserStore

	if cfg.DBDSN != "" {
		db, err := database.OpenDB(cfg.DBDSN)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
		logger.Info("database connection pool established")

		products = store.NewMySQLProducts(db)
		users = store.NewMySQLUsers(db)
	} else {
		logger.Warn("DB_DSN not set, using in-memory stores")
		products = store.NewMemoryProducts()
		users = store.NewMemoryUsers()
	}

	// --- Services ---
	tokens := auth.NewTokenService(cfg.JWTSecret)
	catalogService := catalog.New(products, logger)
	accountService := account.New(users, tokens, logger)

	// --- Application Setup ---
	app := &handlers.Handlers{
		Catalog:  catalogService,
		Accounts: accountService,
		Tokens:   tokens,
		Config:   cfg,
		Log:      logger,
	}

	router := routes.SetupRouter(app)

	logger.Info("starting Shoply API server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
