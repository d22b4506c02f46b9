package postgres

import (
	"context"
	"errors"

	"github.com/VoyageGenie/voyage-backend/internal/store"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// UserStore implements store.UserStore using PostgreSQL.
type UserStore struct {
	db DBConn
}

// NewUserStore creates a new UserStore instance.
func NewUserStore(db DBConn) *UserStore {
	return &UserStore{db: db}
}

// CreateUser inserts a new account. Returns store.ErrConflict when the
// username is already taken.
func (s *UserStore) CreateUser(ctx context.Context, user *types.User) error {
	query := `
		INSERT INTO users (username, password_hash, security_question, security_answer_hash)
		VALUES ($1, $2, $3, $4)`

	_, err := s.db.Exec(ctx, query,
		user.Username, user.PasswordHash, user.SecurityQuestion, user.SecurityAnswerHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return store.ErrConflict
		}
		return err
	}
	return nil
}

// GetUser retrieves an account by username.
func (s *UserStore) GetUser(ctx context.Context, username string) (*types.User, error) {
	query := `
		SELECT username, password_hash, security_question, security_answer_hash, created_at
		FROM users
		WHERE username = $1`

	var user types.User
	err := s.db.QueryRow(ctx, query, username).Scan(
		&user.Username, &user.PasswordHash, &user.SecurityQuestion,
		&user.SecurityAnswerHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the stored password hash for the account.
func (s *UserStore) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1
		WHERE username = $2`

	result, err := s.db.Exec(ctx, query, passwordHash, username)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
