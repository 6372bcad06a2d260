package usecasecontract

import (
	"context"

	"github.com/echolabs-dev/echo-api/internal/domain/entity"
)

type IEmailVerificationUC interface {
	// IssueToken stores a fresh verification token on the account,
	// overwriting any previously pending one.
	IssueToken(ctx context.Context, user *entity.User) (*entity.PendingVerification, error)
	// SendVerificationEmail delivers the verification link for the token.
	SendVerificationEmail(ctx context.Context, user *entity.User, token string) error
	// ResendVerification reissues a token for the account behind email and
	// resends the mail. Fails for unknown or already verified accounts, and
	// propagates delivery failure.
	ResendVerification(ctx context.Context, email string) error
	// VerifyEmailToken redeems a token, marking the account verified.
	VerifyEmailToken(ctx context.Context, token string) (*entity.User, error)
}
