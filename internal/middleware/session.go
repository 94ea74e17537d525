package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/models"
	"assetboard/internal/services"
	"assetboard/internal/uuid"
)

const (
	sessionIDKey = "sessionID"
	tokenIssuer  = "assetboard-api"
)

// SessionClaims represents the claims in a session token. The subject is
// the session ID.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a token for session that expires with it.
func GenerateSessionToken(secret []byte, session *models.Session) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   session.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(secret []byte, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("session token has no subject")
	}
	return claims, nil
}

// SessionMiddleware verifies the bearer token, checks the session is still
// live and sets the session ID in the context.
func SessionMiddleware(secret []byte, sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWith(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := ParseSessionToken(secret, parts[1])
		if err != nil {
			abortWith(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		sessionID, err := uuid.Parse(claims.Subject)
		if err != nil {
			abortWith(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		if _, err := sessions.GetSession(sessionID); err != nil {
			abortWith(c, err)
			return
		}

		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session ID set by SessionMiddleware.
func SessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// SetSessionID stores a session ID in the context the way SessionMiddleware does.
func SetSessionID(c *gin.Context, sessionID string) {
	c.Set(sessionIDKey, sessionID)
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
