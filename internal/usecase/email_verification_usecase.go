package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/echolabs-dev/echo-api/internal/domain/contract"
	"github.com/echolabs-dev/echo-api/internal/domain/entity"
	usecasecontract "github.com/echolabs-dev/echo-api/internal/usecase/contract"
)

// verificationTokenBytes is the entropy of a verification token: 32 random
// bytes, hex encoded, so 256 bits.
const verificationTokenBytes = 32

// EmailVerificationUseCase manages the lifecycle of email verification
// tokens: issue, resend and redeem. At most one token is live per account;
// issuing overwrites whatever was pending before.
type EmailVerificationUseCase struct {
	userRepository  contract.IUserRepository
	mailService     contract.IMailService
	randomGenerator contract.IRandomGenerator
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
}

func NewEmailVerificationUseCase(ur contract.IUserRepository, ms contract.IMailService, rg contract.IRandomGenerator, logger usecasecontract.IAppLogger, cfg usecasecontract.IConfigProvider) *EmailVerificationUseCase {
	return &EmailVerificationUseCase{
		userRepository:  ur,
		mailService:     ms,
		randomGenerator: rg,
		logger:          logger,
		config:          cfg,
	}
}

// check that the usecase satisfies the handler-facing interface
var _ usecasecontract.IEmailVerificationUC = (*EmailVerificationUseCase)(nil)

// IssueToken generates a fresh token and persists it on the account together
// with its expiry, discarding any previously pending token.
func (uc *EmailVerificationUseCase) IssueToken(ctx context.Context, user *entity.User) (*entity.PendingVerification, error) {
	token, err := uc.randomGenerator.GenerateRandomToken(verificationTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	pending := &entity.PendingVerification{
		Token:     token,
		ExpiresAt: time.Now().Add(uc.config.GetEmailVerificationTokenExpiry()).UTC(),
	}
	if err := uc.userRepository.SetVerificationToken(ctx, user.ID, pending); err != nil {
		return nil, fmt.Errorf("failed to store verification token: %w", err)
	}

	user.Verification = pending
	return pending, nil
}

// SendVerificationEmail delivers the verification link for the given token.
func (uc *EmailVerificationUseCase) SendVerificationEmail(ctx context.Context, user *entity.User, token string) error {
	verificationURL := fmt.Sprintf("%s/api/auth/verify-email?token=%s", uc.config.GetAppBaseURL(), token)
	if err := uc.mailService.SendVerificationEmail(ctx, user.Email, user.DisplayName, verificationURL); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// ResendVerification reissues a token for the account registered under email
// and resends the verification mail. Unlike registration, a delivery failure
// here propagates to the caller.
func (uc *EmailVerificationUseCase) ResendVerification(ctx context.Context, email string) error {
	user, err := uc.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.ErrUserNotFound
		}
		uc.logger.Errorf("failed to look up user for resend: %v", err)
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user.EmailVerified {
		return entity.ErrAlreadyVerified
	}

	pending, err := uc.IssueToken(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to reissue verification token for user %s: %v", user.ID, err)
		return err
	}

	return uc.SendVerificationEmail(ctx, user, pending.Token)
}

// VerifyEmailToken redeems a verification token. The lookup is exact-match;
// expiry is checked strictly against the time captured here. On success the
// token fields are cleared and the account flips to verified in a single
// update, so a second redemption of the same token fails with
// entity.ErrInvalidToken.
func (uc *EmailVerificationUseCase) VerifyEmailToken(ctx context.Context, token string) (*entity.User, error) {
	user, err := uc.userRepository.GetUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidToken
		}
		uc.logger.Errorf("failed to look up verification token: %v", err)
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	if user.Verification == nil {
		// row matched but carries no pending verification; treat as unknown
		return nil, entity.ErrInvalidToken
	}
	if user.Verification.Expired(time.Now()) {
		return nil, entity.ErrTokenExpired
	}

	if err := uc.userRepository.MarkEmailVerified(ctx, user.ID); err != nil {
		uc.logger.Errorf("failed to mark user %s verified: %v", user.ID, err)
		return nil, fmt.Errorf("failed to update verification status: %w", err)
	}

	user.EmailVerified = true
	user.Verification = nil
	return user, nil
}
