package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echolabs-dev/echo-api/internal/domain/entity"
	"github.com/echolabs-dev/echo-api/internal/handler/http/dto"
	"github.com/echolabs-dev/echo-api/internal/infrastructure/metrics"
	usecasecontract "github.com/echolabs-dev/echo-api/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	GetCurrentUser(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles account registration (signup)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, emailSent, err := h.authUsecase.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateIdentity) {
			ErrorHandler(c, http.StatusBadRequest, "Username or email already exists")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	message := "User registered successfully. Please check your email to verify your account."
	if !emailSent {
		message = "User registered successfully, but verification email could not be sent. Please contact support."
	}

	metrics.RegistrationsTotal.Inc()
	SuccessHandler(c, http.StatusCreated, dto.RegisterResponse{
		Message: message,
		User:    dto.ToUserResponse(*user),
	})
}

// Login handles authentication. Unknown account and wrong password produce
// the same response; an unverified email gets its own message but the same
// status, so neither leaks which accounts exist.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.authUsecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidCredentials):
			ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, entity.ErrEmailNotVerified):
			ErrorHandler(c, http.StatusUnauthorized, "Please verify your email before logging in")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	metrics.LoginsTotal.Inc()
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserResponse(*user),
	})
}

// GetCurrentUser handles retrieving the authenticated account
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
