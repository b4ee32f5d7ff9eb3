package service

import (
	"errors"
	"testing"

	"github.com/FrancoCalegari/demobodega/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserHashesPassword(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, testMaster)

	user, err := svc.Create("carla", "wine123", "")
	require.NoError(t, err)
	assert.Equal(t, core.RoleAdmin, user.Role)

	row, err := store.FetchOne(tableUsers, core.Filter{"username": "carla"})
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.NotEqual(t, "wine123", row.String("password"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(row.String("password")), []byte("wine123")))
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	svc := NewUserService(newFakeStore(), testMaster)

	_, err := svc.Create("carla", "wine123", "")
	require.NoError(t, err)

	_, err = svc.Create("carla", "other", "")
	var validation *core.ValidationError
	require.True(t, errors.As(err, &validation))
}

func TestCreateUserRejectsMasterUsername(t *testing.T) {
	svc := NewUserService(newFakeStore(), testMaster)

	_, err := svc.Create(testMaster.Username, "pw", "")
	var validation *core.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "username", validation.Field)
}

func TestUpdateUserPartialFields(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, testMaster)

	user, err := svc.Create("carla", "wine123", "")
	require.NoError(t, err)

	// Rename without touching the password
	require.NoError(t, svc.Update(user.ID, "carla2", "", ""))

	row, _ := store.FetchOne(tableUsers, core.Filter{"id": user.ID})
	assert.Equal(t, "carla2", row.String("username"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(row.String("password")), []byte("wine123")))

	// Renaming onto the master username is still rejected
	err = svc.Update(user.ID, testMaster.Username, "", "")
	var validation *core.ValidationError
	require.True(t, errors.As(err, &validation))

	// Keeping your own name is not a collision
	require.NoError(t, svc.Update(user.ID, "carla2", "newpw", ""))
	row, _ = store.FetchOne(tableUsers, core.Filter{"id": user.ID})
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(row.String("password")), []byte("newpw")))
}

func TestDeleteUser(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, testMaster)

	user, err := svc.Create("carla", "wine123", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID))
	assert.ErrorIs(t, svc.Delete(user.ID), core.ErrNotFound)
}

func TestListUsersOmitsHashInJSON(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, testMaster)

	_, err := svc.Create("carla", "wine123", "")
	require.NoError(t, err)

	users, err := svc.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	// The hash stays in the struct for the service layer but is tagged
	// json:"-" so it never serializes.
	assert.NotEmpty(t, users[0].PasswordHash)
}
