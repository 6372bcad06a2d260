package contract

import (
	"context"

	"github.com/echolabs-dev/echo-api/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser persists a new user. Returns entity.ErrDuplicateIdentity
	// when the username or email is already taken.
	CreateUser(ctx context.Context, user *entity.User) error
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email, as stored (no normalization).
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserByLogin retrieves a user whose username OR email equals login,
	// in a single query.
	GetUserByLogin(ctx context.Context, login string) (*entity.User, error)
	// GetUserByVerificationToken retrieves the user currently holding the
	// given verification token. Lookup is exact-match only.
	GetUserByVerificationToken(ctx context.Context, token string) (*entity.User, error)
	// ExistsByUsernameOrEmail reports whether any user already holds the
	// given username or email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	// SetVerificationToken overwrites the user's pending verification token
	// and expiry in one statement. Any previously issued token is discarded.
	SetVerificationToken(ctx context.Context, userID string, v *entity.PendingVerification) error
	// MarkEmailVerified flips email_verified and clears both token fields in
	// a single statement, so a verified row never carries a live token.
	MarkEmailVerified(ctx context.Context, userID string) error
}
