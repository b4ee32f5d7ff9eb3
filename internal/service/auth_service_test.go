package service

import (
	"testing"

	"github.com/FrancoCalegari/demobodega/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testMaster = core.MasterCredential{Username: "gowther", Password: "master-secret"}

func seedUser(t *testing.T, store *fakeStore, username, password, role string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	row, err := store.Insert(tableUsers, map[string]any{
		"username": username,
		"password": string(hash),
		"role":     role,
	})
	require.NoError(t, err)
	return row.ID()
}

func TestLoginMasterBypassesStore(t *testing.T) {
	// No users seeded at all: the master credential must still work.
	svc := NewAuthService(newFakeStore(), testMaster)

	identity, err := svc.Login("gowther", "master-secret")
	require.NoError(t, err)
	assert.Equal(t, core.MasterID, identity.ID)
	assert.Equal(t, core.RoleMaster, identity.Role)
	assert.Equal(t, "gowther", identity.Username)
}

func TestLoginStoreUser(t *testing.T) {
	store := newFakeStore()
	id := seedUser(t, store, "carla", "wine123", core.RoleAdmin)
	svc := NewAuthService(store, testMaster)

	identity, err := svc.Login("carla", "wine123")
	require.NoError(t, err)
	assert.Equal(t, id, identity.ID)
	assert.Equal(t, core.RoleAdmin, identity.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newFakeStore()
	seedUser(t, store, "carla", "wine123", core.RoleAdmin)
	svc := NewAuthService(store, testMaster)

	_, err := svc.Login("carla", "wrong")
	assert.ErrorIs(t, err, core.ErrInvalidCredentials)

	_, err = svc.Login("nobody", "wine123")
	assert.ErrorIs(t, err, core.ErrInvalidCredentials)

	// Master username with a wrong password must not fall through to a
	// store row either.
	_, err = svc.Login("gowther", "wrong")
	assert.ErrorIs(t, err, core.ErrInvalidCredentials)
}

func TestLoginDefaultsRoleToAdmin(t *testing.T) {
	store := newFakeStore()
	seedUser(t, store, "legacy", "pw", "")
	svc := NewAuthService(store, testMaster)

	identity, err := svc.Login("legacy", "pw")
	require.NoError(t, err)
	assert.Equal(t, core.RoleAdmin, identity.Role)
}
