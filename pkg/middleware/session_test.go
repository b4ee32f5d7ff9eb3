package middleware

import (
	"testing"
	"time"

	"github.com/FrancoCalegari/demobodega/internal/core"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	identity := core.Identity{ID: "rec0001", Username: "carla", Role: core.RoleAdmin}

	token, err := IssueSession(identity, secret)
	require.NoError(t, err)

	parsed, err := ParseSession(token, secret)
	require.NoError(t, err)
	assert.Equal(t, identity, *parsed)
}

func TestParseSessionRejectsWrongKey(t *testing.T) {
	token, err := IssueSession(core.Identity{ID: "x", Role: core.RoleAdmin}, []byte("key-a"))
	require.NoError(t, err)

	_, err = ParseSession(token, []byte("key-b"))
	assert.Error(t, err)
}

func TestParseSessionRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	claims := &SessionClaims{
		UserID: "x",
		Role:   core.RoleAdmin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = ParseSession(token, secret)
	assert.Error(t, err)
}

func TestParseSessionRejectsUnsignedToken(t *testing.T) {
	// alg=none tokens must never validate.
	claims := &SessionClaims{UserID: "x", Role: core.RoleMaster}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseSession(token, []byte("test-secret"))
	assert.Error(t, err)
}
