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

// EmailHandlerInterface defines the methods for the verification handler.
type EmailHandlerInterface interface {
	HandleVerifyEmailToken(*gin.Context)
	HandleResendVerification(*gin.Context)
}

var _ EmailHandlerInterface = (*EmailHandler)(nil)

type EmailHandler struct {
	emailVerificationUC usecasecontract.IEmailVerificationUC
}

func NewEmailHandler(eu usecasecontract.IEmailVerificationUC) *EmailHandler {
	return &EmailHandler{
		emailVerificationUC: eu,
	}
}

// HandleVerifyEmailToken redeems the token from the query string.
func (h *EmailHandler) HandleVerifyEmailToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		ErrorHandler(c, http.StatusBadRequest, "Verification token is required")
		return
	}

	user, err := h.emailVerificationUC.VerifyEmailToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidToken):
			ErrorHandler(c, http.StatusBadRequest, "Invalid verification token")
		case errors.Is(err, entity.ErrTokenExpired):
			ErrorHandler(c, http.StatusBadRequest, "Verification token has expired")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	metrics.EmailVerificationsTotal.Inc()
	SuccessHandler(c, http.StatusOK, dto.VerifyEmailResponse{
		Message: "Email verified successfully! You can now login.",
		User:    dto.ToUserResponse(*user),
	})
}

// HandleResendVerification reissues the token and resends the mail. A send
// failure here is a server error, unlike at registration time.
func (h *EmailHandler) HandleResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.emailVerificationUC.ResendVerification(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, entity.ErrUserNotFound):
			ErrorHandler(c, http.StatusBadRequest, "User not found")
		case errors.Is(err, entity.ErrAlreadyVerified):
			ErrorHandler(c, http.StatusBadRequest, "Email is already verified")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to send verification email")
		}
		return
	}

	metrics.VerificationEmailsResentTotal.Inc()
	MessageHandler(c, http.StatusOK, "Verification email sent successfully")
}
