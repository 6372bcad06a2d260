package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/echolabs-dev/echo-api/internal/domain/contract"
	"github.com/echolabs-dev/echo-api/internal/domain/entity"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

const userColumns = `id, username, email, password_hash, display_name, email_verified,
       email_verification_token, email_verification_expires, created_at`

// UserRepository is the PostgreSQL implementation of contract.IUserRepository.
// Every operation is a single parameterized statement.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (id, username, email, password_hash, display_name, email_verified,
	              email_verification_token, email_verification_expires, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var token sql.NullString
	var expires sql.NullTime
	if user.Verification != nil {
		token = sql.NullString{String: user.Verification.Token, Valid: true}
		expires = sql.NullTime{Time: user.Verification.ExpiresAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.DisplayName,
		user.EmailVerified, token, expires, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entity.ErrDuplicateIdentity
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetUserByLogin matches the login value against username or email in one query.
func (r *UserRepository) GetUserByLogin(ctx context.Context, login string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, login))
}

func (r *UserRepository) GetUserByVerificationToken(ctx context.Context, token string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email_verification_token = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, token))
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// SetVerificationToken overwrites the pending token and expiry in one
// statement. The previously issued token, if any, stops matching immediately.
func (r *UserRepository) SetVerificationToken(ctx context.Context, userID string, v *entity.PendingVerification) error {
	query := `UPDATE users
	          SET email_verification_token = $1, email_verification_expires = $2
	          WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, v.Token, v.ExpiresAt, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

// MarkEmailVerified flips the verified flag and clears both token fields in a
// single statement, so no row is ever observable as verified-with-live-token.
func (r *UserRepository) MarkEmailVerified(ctx context.Context, userID string) error {
	query := `UPDATE users
	          SET email_verified = TRUE, email_verification_token = NULL, email_verification_expires = NULL
	          WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func (r *UserRepository) scanUser(row *sql.Row) (*entity.User, error) {
	user := &entity.User{}
	var token sql.NullString
	var expires sql.NullTime

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.DisplayName, &user.EmailVerified, &token, &expires, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if token.Valid && expires.Valid {
		user.Verification = &entity.PendingVerification{
			Token:     token.String,
			ExpiresAt: expires.Time,
		}
	}

	return user, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}
