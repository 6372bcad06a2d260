package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/echolabs-dev/echo-api/internal/domain/entity"
	handler "github.com/echolabs-dev/echo-api/internal/handler/http"
	dto "github.com/echolabs-dev/echo-api/internal/handler/http/dto"
	mocks "github.com/echolabs-dev/echo-api/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupAuthRouter(h handler.AuthHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/me", func(c *gin.Context) {
		c.Set("userID", "mock-user-id")
		h.GetCurrentUser(c)
	})
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/register", dto.RegisterRequest{
		Username:    "testuser",
		Email:       "test@example.com",
		Password:    "pw123!",
		DisplayName: "Test User",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "check your email to verify")
	assert.Contains(t, w.Body.String(), `"email_verified":false`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_Duplicate(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailRegister = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "pw123!",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username or email already exists")
}

func TestRegister_MissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	// password omitted intentionally
	w := postJSON(r, "/api/auth/register", map[string]string{
		"username": "testuser",
		"email":    "test@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Password' failed on the 'required' tag")
}

func TestRegister_EmailDeliveryFailure(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.EmailDeliveryFails = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "pw123!",
	})

	// mail failure degrades the message but registration still succeeds
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "verification email could not be sent")
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/login", dto.LoginRequest{
		Username: "testuser",
		Password: "pw123!",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
	assert.Contains(t, w.Body.String(), "Login successful")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.LoginErr = entity.ErrInvalidCredentials
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/login", dto.LoginRequest{
		Username: "testuser",
		Password: "wrongpass",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogin_UnverifiedEmail(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.LoginErr = entity.ErrEmailNotVerified
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/login", dto.LoginRequest{
		Username: "testuser",
		Password: "pw123!",
	})

	// same status as bad credentials, distinct message
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please verify your email before logging in")
}

func TestGetCurrentUser(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
}
