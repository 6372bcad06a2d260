package usecase

import (
	"github.com/echolabs-dev/echo-api/internal/domain/entity"
)

// JWTService defines the interface for bearer-token operations. The signed
// token is the whole session artifact; nothing is stored server-side.
type JWTService interface {
	GenerateAccessToken(userID, username string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
