package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims carried by an access token.
type Claims struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
	jwt.RegisteredClaims
}

// Config holds the token manager settings.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// DefaultTokenTTL is used when the config leaves the TTL unset.
const DefaultTokenTTL = 24 * time.Hour
