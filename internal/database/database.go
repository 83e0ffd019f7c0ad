package database

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB creates and configures the shared MySQL connection pool.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the two collections and the id-sequence table, then seeds
// the product sequence so it never hands out an id already in use.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id BIGINT PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			price DOUBLE NOT NULL,
			image TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			cart_data JSON NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sequences (
			name VARCHAR(64) PRIMARY KEY,
			seq BIGINT NOT NULL
		)`,
		`INSERT INTO sequences (name, seq)
			SELECT 'product_id', COALESCE(MAX(id), 0) FROM products
			ON DUPLICATE KEY UPDATE seq = GREATEST(seq, VALUES(seq))`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
