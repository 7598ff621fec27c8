package domain

import "github.com/golang-jwt/jwt/v5"

// Claims carried by the operator session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
