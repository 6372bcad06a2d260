package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by an access token: the account id and
// username, plus the registered expiry/issue fields.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
