// Package middleware carries the admin session: a signed JWT in a cookie,
// validated before any write route runs.
package middleware

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/FrancoCalegari/demobodega/internal/core"

	"github.com/dgrijalva/jwt-go"
	pbCore "github.com/pocketbase/pocketbase/core"
)

const (
	// SessionCookie is the cookie holding the admin session token.
	SessionCookie = "admin_session"

	// SessionTTL matches the original site's 24h session lifetime.
	SessionTTL = 24 * time.Hour

	identityContextKey = "identity"
)

// SessionSecret returns the HMAC key for session tokens.
func SessionSecret() []byte {
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		return []byte(v)
	}
	return []byte("valzoe-tour-secret-key-change-in-production")
}

// SessionClaims is the JWT payload: the authenticated identity plus the
// standard expiry.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// IssueSession signs a session token for the identity.
func IssueSession(identity core.Identity, secret []byte) (string, error) {
	claims := &SessionClaims{
		UserID:   identity.ID,
		Username: identity.Username,
		Role:     identity.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(SessionTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSession validates a token and returns the identity it carries.
func ParseSession(tokenString string, secret []byte) (*core.Identity, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return &core.Identity{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// SessionIdentity reads the session cookie of a request, if any.
func SessionIdentity(e *pbCore.RequestEvent, secret []byte) *core.Identity {
	cookie, err := e.Request.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	identity, err := ParseSession(cookie.Value, secret)
	if err != nil {
		return nil
	}
	return identity
}

// RequireAdmin ensures the caller is an authenticated admin or master
// before any write route runs. API routes get a JSON 401 rather than a
// redirect since the admin UI talks to them via fetch.
func RequireAdmin(secret []byte) func(e *pbCore.RequestEvent) error {
	return func(e *pbCore.RequestEvent) error {
		identity := SessionIdentity(e, secret)
		if identity == nil || (identity.Role != core.RoleAdmin && identity.Role != core.RoleMaster) {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		}
		e.Set(identityContextKey, identity)
		return e.Next()
	}
}

// IdentityFromRequest returns the identity RequireAdmin stored, or nil.
func IdentityFromRequest(e *pbCore.RequestEvent) *core.Identity {
	if v := e.Get(identityContextKey); v != nil {
		if identity, ok := v.(*core.Identity); ok {
			return identity
		}
	}
	return nil
}

// SetSessionCookie attaches the session token to the response.
func SetSessionCookie(e *pbCore.RequestEvent, token string) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie logs the caller out.
func ClearSessionCookie(e *pbCore.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
