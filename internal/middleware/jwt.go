package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ticoship/rate-service/internal/domain/dto"
	"github.com/ticoship/rate-service/internal/i18n"
)

const (
	// SubjectKey is the context key for the authenticated subject.
	SubjectKey = "auth_subject"
)

// JWTAuth returns a middleware that validates HMAC-signed bearer tokens.
// The token subject is stored in the context for audit purposes.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)
		translator := i18n.GetTranslator()

		abort := func(key string) {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, translator.Translate(key, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

// GetSubject retrieves the authenticated subject from the gin context.
func GetSubject(c *gin.Context) string {
	if sub, exists := c.Get(SubjectKey); exists {
		if s, ok := sub.(string); ok {
			return s
		}
	}
	return ""
}
