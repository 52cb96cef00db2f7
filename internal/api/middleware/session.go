package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	actorKey   = "actor"
	roleKey    = "role"
	cookieName = "session"
)

// ErrNoSessionSecret means the API was started without APP_SESSION_SECRET.
var ErrNoSessionSecret = errors.New("session secret not configured")

// SessionClaims is the payload of a session token signed by the auth provider.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseSession validates an HS256 session token and returns its claims.
func ParseSession(tokenString, secret string) (*SessionClaims, error) {
	if secret == "" {
		return nil, ErrNoSessionSecret
	}
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if claims.Username == "" {
		return nil, errors.New("parse session: token has no username")
	}
	return claims, nil
}

// SessionActor requires a valid session token, from the Authorization bearer
// header or the session cookie, and stores its username as the request actor.
func SessionActor(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			return
		}

		claims, err := ParseSession(tokenString, secret)
		if err != nil {
			GetRequestLogger(c).WithError(err).Debug("rejected session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Set(actorKey, claims.Username)
		c.Set(roleKey, claims.Role)
		c.Set(loggerKey, GetRequestLogger(c).WithField("actor", claims.Username))
		c.Next()
	}
}

// ActorFrom returns the username placed in the context by SessionActor.
func ActorFrom(c *gin.Context) (string, bool) {
	actor := c.GetString(actorKey)
	return actor, actor != ""
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}
