package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/echolabs-dev/echo-api/internal/domain/entity"
	usecasecontract "github.com/echolabs-dev/echo-api/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool // fail with duplicate identity
	EmailDeliveryFails     bool // register succeeds but reports mail failure
	LoginErr               error
	ShouldFailGetByID      bool
	ShouldFailAuthenticate bool

	// Return values
	MockUser  entity.User
	MockToken string
}

// Ensure MockAuthUsecase implements the correct interface for handler.NewAuthHandler
var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:          "mock-user-id",
			Username:    "testuser",
			Email:       "test@example.com",
			DisplayName: "Test User",
			CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		MockToken: "mock_access_token",
	}
}

func (m *MockAuthUsecase) Register(ctx context.Context, username, email, password, displayName string) (*entity.User, bool, error) {
	if m.ShouldFailRegister {
		return nil, false, entity.ErrDuplicateIdentity
	}
	return &m.MockUser, !m.EmailDeliveryFails, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, login, password string) (*entity.User, string, error) {
	if m.LoginErr != nil {
		return nil, "", m.LoginErr
	}
	user := m.MockUser
	user.EmailVerified = true
	return &user, m.MockToken, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, errors.New("authentication failed")
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, entity.ErrUserNotFound
	}
	return &m.MockUser, nil
}
