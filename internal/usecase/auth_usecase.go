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

// AuthUsecase implements registration, login and token authentication.
type AuthUsecase struct {
	userRepo      contract.IUserRepository
	emailUsecase  usecasecontract.IEmailVerificationUC
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	emailUC usecasecontract.IEmailVerificationUC,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		emailUsecase:  emailUC,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if AuthUsecase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// Register creates a new unverified account, issues its verification token
// and sends the verification mail. The returned bool reports whether the
// mail went out; a delivery failure is logged and reported back but never
// rolls the account back.
func (uc *AuthUsecase) Register(ctx context.Context, username, email, password, displayName string) (*entity.User, bool, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, false, fmt.Errorf("invalid email format: %w", err)
	}

	// Duplicate check is case-sensitive, exactly as stored.
	exists, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		uc.logger.Errorf("failed to check for existing user: %v", err)
		return nil, false, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if exists {
		return nil, false, entity.ErrDuplicateIdentity
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, false, fmt.Errorf("failed to process password")
	}

	if displayName == "" {
		displayName = username
	}

	user := &entity.User{
		ID:            uc.uuidGenerator.NewUUID(),
		Username:      username,
		Email:         email,
		PasswordHash:  hashedPassword,
		DisplayName:   displayName,
		EmailVerified: false,
		CreatedAt:     time.Now().UTC(),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateIdentity) {
			// lost the race against a concurrent registration
			return nil, false, entity.ErrDuplicateIdentity
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, false, fmt.Errorf("failed to register user")
	}

	pending, err := uc.emailUsecase.IssueToken(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to issue verification token for user %s: %v", user.ID, err)
		return nil, false, fmt.Errorf("failed to issue verification token")
	}

	emailSent := true
	if err := uc.emailUsecase.SendVerificationEmail(ctx, user, pending.Token); err != nil {
		uc.logger.Errorf("verification email for user %s could not be sent: %v", user.ID, err)
		emailSent = false
	}

	return user, emailSent, nil
}

// Login authenticates by username or email plus password and returns a
// signed access token. Unknown account and wrong password collapse into the
// same error so callers cannot enumerate accounts; an unverified email is
// reported distinctly, but only after the password checked out.
func (uc *AuthUsecase) Login(ctx context.Context, login, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, "", entity.ErrEmailNotVerified
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	return user, accessToken, nil
}

// Authenticate resolves an access token back to its account.
func (uc *AuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (uc *AuthUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
