package mocks

import (
	"context"
	"time"

	"github.com/echolabs-dev/echo-api/internal/domain/entity"
	usecasecontract "github.com/echolabs-dev/echo-api/internal/usecase/contract"
)

// MockEmailVerificationUC is a mock implementation of the IEmailVerificationUC interface
type MockEmailVerificationUC struct {
	// Control mock behavior
	VerifyErr error
	ResendErr error

	// Return values
	MockUser entity.User
}

var _ usecasecontract.IEmailVerificationUC = (*MockEmailVerificationUC)(nil)

func NewMockEmailVerificationUC() *MockEmailVerificationUC {
	return &MockEmailVerificationUC{
		MockUser: entity.User{
			ID:            "mock-user-id",
			Username:      "testuser",
			Email:         "test@example.com",
			DisplayName:   "Test User",
			EmailVerified: true,
			CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (m *MockEmailVerificationUC) IssueToken(ctx context.Context, user *entity.User) (*entity.PendingVerification, error) {
	return &entity.PendingVerification{
		Token:     "mock-verification-token",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}, nil
}

func (m *MockEmailVerificationUC) SendVerificationEmail(ctx context.Context, user *entity.User, token string) error {
	return nil
}

func (m *MockEmailVerificationUC) ResendVerification(ctx context.Context, email string) error {
	return m.ResendErr
}

func (m *MockEmailVerificationUC) VerifyEmailToken(ctx context.Context, token string) (*entity.User, error) {
	if m.VerifyErr != nil {
		return nil, m.VerifyErr
	}
	return &m.MockUser, nil
}
