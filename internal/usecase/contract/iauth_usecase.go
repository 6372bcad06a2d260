package usecasecontract

import (
	"context"

	"github.com/echolabs-dev/echo-api/internal/domain/entity"
)

// IAuthUseCase defines the interface for account operations.
type IAuthUseCase interface {
	// Register creates an unverified account and sends the verification
	// email. The bool reports whether the email was actually delivered;
	// delivery failure never rolls the account back.
	Register(ctx context.Context, username, email, password, displayName string) (*entity.User, bool, error)
	// Login accepts a username or an email in the login field and returns
	// the user together with a signed access token.
	Login(ctx context.Context, login, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
