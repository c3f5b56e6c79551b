package types

import "github.com/golang-jwt/jwt/v4"

// Claims issued by the managed auth service. Subject carries the user's
// uuid identity.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}
