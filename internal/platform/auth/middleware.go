package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const CtxUserIDKey = "user_id"

// Identity resolves the current user id from a Bearer token when one is
// present and valid, and otherwise leaves it empty. It never aborts: a
// missing identity means the downstream services run in signed-out mode and
// answer with empty defaults.
func Identity(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sub, ok := subjectFromHeader(c.GetHeader("Authorization"), secret); ok {
			c.Set(CtxUserIDKey, sub)
		}
		c.Next()
	}
}

// RequireAuth is the strict variant for endpoints that make no sense without
// an identity (profile, theme).
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, ok := subjectFromHeader(c.GetHeader("Authorization"), secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set(CtxUserIDKey, sub)
		c.Next()
	}
}

// CurrentUser returns the resolved user id, empty when signed out.
func CurrentUser(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}

func subjectFromHeader(header string, secret []byte) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tokenStr := strings.TrimSpace(parts[1])
	if tokenStr == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		// alg pinned to HS256, rejects alg=none tokens
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || token == nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}
