package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/shoply/shoply-golang/internal/models"
)

// mysqlDuplicateEntry is the MySQL error number for a unique-key violation.
const mysqlDuplicateEntry = 1062

// MySQLProducts implements ProductStore on the shared connection pool
// opened in internal/database.
type MySQLProducts struct {
	db *sql.DB
}

func NewMySQLProducts(db *sql.DB) *MySQLProducts {
	return &MySQLProducts{db: db}
}

// NextID bumps the product sequence row and returns the new value in one
// statement, so concurrent adds can never allocate the same id.
func (s *MySQLProducts) NextID(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO sequences (name, seq)
		VALUES ('product_id', LAST_INSERT_ID(1))
		ON DUPLICATE KEY UPDATE seq = LAST_INSERT_ID(seq + 1)`)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *MySQLProducts) Insert(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products
		(id, title, category, price, image, description, created_at, available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Category, p.Price, p.Image, p.Description, p.CreatedAt, p.Available)
	return err
}

func (s *MySQLProducts) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (s *MySQLProducts) All(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, title, category, price, image, description, created_at, available
		FROM products
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Category, &p.Price,
			&p.Image, &p.Description, &p.CreatedAt, &p.Available,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// MySQLUsers implements UserStore. The cart document rides in a JSON
// column; every write rewrites the whole map.
type MySQLUsers struct {
	db *sql.DB
}

func NewMySQLUsers(db *sql.DB) *MySQLUsers {
	return &MySQLUsers{db: db}
}

func (s *MySQLUsers) Insert(ctx context.Context, u *models.User) error {
	cartJSON, err := json.Marshal(u.CartData)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (name, email, password_hash, cart_data, created_at)
		VALUES (?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, cartJSON, u.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrDuplicateEmail
		}
		return err
	}

	u.ID, err = result.LastInsertId()
	return err
}

func (s *MySQLUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, cart_data, created_at
		FROM users WHERE email = ?`, email))
}

func (s *MySQLUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, cart_data, created_at
		FROM users WHERE id = ?`, id))
}

func (s *MySQLUsers) UpdateCart(ctx context.Context, id int64, cart models.CartData) error {
	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE users SET cart_data = ? WHERE id = ?", cartJSON, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// MySQL reports zero rows when the stored cart already equals the
		// new one, so confirm the user exists before calling it a miss.
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLUsers) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var cartJSON []byte

	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &cartJSON, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(cartJSON, &u.CartData); err != nil {
		return nil, err
	}
	return &u, nil
}
