package middlewares

import (
	"etix/src/types"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func parseBearerToken(ctx *gin.Context) (*types.Claims, bool) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		return nil, false
	}
	reqToken := strings.Split(bearerToken, " ")[1]
	if reqToken == "" {
		return nil, false
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		return nil, false
	}
	if !tkn.Valid {
		return nil, false
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		log.Println("error parsing claims:", err.Error())
		return nil, false
	}
	return claims, true
}

func AuthMiddleware(ctx *gin.Context) {
	claims, ok := parseBearerToken(ctx)
	if !ok {
		ctx.AbortWithStatus(401)
		return
	}
	ctx.Set("uid", claims.Subject)
	ctx.Set("email", claims.Email)
	ctx.Set("name", claims.Name)
}

// OptionalAuthMiddleware attaches the caller's identity when a valid
// token is present; anonymous requests pass through untouched.
func OptionalAuthMiddleware(ctx *gin.Context) {
	if claims, ok := parseBearerToken(ctx); ok {
		ctx.Set("uid", claims.Subject)
		ctx.Set("email", claims.Email)
		ctx.Set("name", claims.Name)
	}
}
