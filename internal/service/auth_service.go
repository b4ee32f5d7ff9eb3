package service

import (
	"github.com/FrancoCalegari/demobodega/internal/core"

	"golang.org/x/crypto/bcrypt"
)

const tableUsers = "users"

// AuthService resolves login attempts against the master credential first
// and the users table second. The master identity never touches the store.
type AuthService struct {
	store  core.RecordStore
	master core.MasterCredential
}

func NewAuthService(store core.RecordStore, master core.MasterCredential) *AuthService {
	return &AuthService{store: store, master: master}
}

// Login returns the caller's identity, or core.ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (*core.Identity, error) {
	if username == s.master.Username && password == s.master.Password {
		identity := s.master.Identity()
		return &identity, nil
	}

	row, err := s.store.FetchOne(tableUsers, core.Filter{"username": username})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, core.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.String("password")), []byte(password)); err != nil {
		return nil, core.ErrInvalidCredentials
	}

	role := row.String("role")
	if role == "" {
		role = core.RoleAdmin
	}

	return &core.Identity{
		ID:       row.ID(),
		Username: row.String("username"),
		Role:     role,
	}, nil
}
