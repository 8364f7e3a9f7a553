package types

import (
	"github.com/cscportal/portal-go/internal/domain/user"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
	jwt.RegisteredClaims
}
