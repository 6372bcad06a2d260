package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/echolabs-dev/echo-api/internal/domain/entity"
	handler "github.com/echolabs-dev/echo-api/internal/handler/http"
	dto "github.com/echolabs-dev/echo-api/internal/handler/http/dto"
	mocks "github.com/echolabs-dev/echo-api/internal/handler/http/mocks"
)

func setupEmailRouter(h handler.EmailHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/auth/verify-email", h.HandleVerifyEmailToken)
	r.POST("/api/auth/resend-verification", h.HandleResendVerification)
	return r
}

func TestVerifyEmail(t *testing.T) {
	mockUC := mocks.NewMockEmailVerificationUC()
	h := handler.NewEmailHandler(mockUC)
	r := setupEmailRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/verify-email?token=sometoken", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email verified successfully")
	assert.Contains(t, w.Body.String(), `"email_verified":true`)
}

func TestVerifyEmail_MissingToken(t *testing.T) {
	mockUC := mocks.NewMockEmailVerificationUC()
	h := handler.NewEmailHandler(mockUC)
	r := setupEmailRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/verify-email", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Verification token is required")
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	mockUC := mocks.NewMockEmailVerificationUC()
	mockUC.VerifyErr = entity.ErrInvalidToken
	h := handler.NewEmailHandler(mockUC)
	r := setupEmailRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/verify-email?token=bogus", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid verification token")
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	mockUC := mocks.NewMockEmailVerificationUC()
	mockUC.VerifyErr = entity.ErrTokenExpired
	h := handler.NewEmailHandler(mockUC)
	r := setupEmailRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/verify-email?token=stale", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Verification token has expired")
}

func TestResendVerification(t *testing.T) {
	mockUC := mocks.NewMockEmailVerificationUC()
	h := handler.NewEmailHandler(mockUC)
	r := setupEmailRouter(h)

	w := postJSON(r, "/api/auth/resend-verification", dto.ResendVerificationRequest{
		Email: "test@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Verification email sent successfully")
}

func TestResendVerification_UserNotFound(t *testing.T) {
	mockUC := mocks.NewMockEmailVerificationUC()
	mockUC.ResendErr = entity.ErrUserNotFound
	h := handler.NewEmailHandler(mockUC)
	r := setupEmailRouter(h)

	w := postJSON(r, "/api/auth/resend-verification", dto.ResendVerificationRequest{
		Email: "nobody@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestResendVerification_AlreadyVerified(t *testing.T) {
	mockUC := mocks.NewMockEmailVerificationUC()
	mockUC.ResendErr = entity.ErrAlreadyVerified
	h := handler.NewEmailHandler(mockUC)
	r := setupEmailRouter(h)

	w := postJSON(r, "/api/auth/resend-verification", dto.ResendVerificationRequest{
		Email: "test@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email is already verified")
}

func TestResendVerification_SendFailure(t *testing.T) {
	mockUC := mocks.NewMockEmailVerificationUC()
	mockUC.ResendErr = errors.New("smtp connection refused")
	h := handler.NewEmailHandler(mockUC)
	r := setupEmailRouter(h)

	w := postJSON(r, "/api/auth/resend-verification", dto.ResendVerificationRequest{
		Email: "test@example.com",
	})

	// unlike registration, resend surfaces delivery failure as a server error
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send verification email")
}
