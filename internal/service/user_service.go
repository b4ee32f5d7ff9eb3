package service

import (
	"fmt"
	"strings"

	"github.com/FrancoCalegari/demobodega/internal/core"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the original seed data was hashed with.
const bcryptCost = 10

// UserService manages the store-backed admin accounts. The master
// credential is injected only to guard against username collisions that
// would make login resolution ambiguous.
type UserService struct {
	store  core.RecordStore
	master core.MasterCredential
}

func NewUserService(store core.RecordStore, master core.MasterCredential) *UserService {
	return &UserService{store: store, master: master}
}

func userFromRow(row core.Row) core.User {
	return core.User{
		ID:           row.ID(),
		Username:     row.String("username"),
		Role:         row.String("role"),
		CreatedAt:    row.String("created"),
		PasswordHash: row.String("password"),
	}
}

// List returns all users in creation order, hashes stripped by the model's
// json tags.
func (s *UserService) List() ([]core.User, error) {
	rows, err := s.store.FetchMany(tableUsers, nil, "+created")
	if err != nil {
		return nil, err
	}

	users := make([]core.User, len(rows))
	for i, row := range rows {
		users[i] = userFromRow(row)
	}
	return users, nil
}

// Create adds a user with a bcrypt-hashed password. Duplicate usernames
// and the master username are rejected before any write.
func (s *UserService) Create(username, password, role string) (*core.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &core.ValidationError{Field: "username", Reason: "username and password required"}
	}
	if err := s.checkUsernameFree(username, ""); err != nil {
		return nil, err
	}
	if role == "" {
		role = core.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	row, err := s.store.Insert(tableUsers, map[string]any{
		"username": username,
		"password": string(hash),
		"role":     role,
	})
	if err != nil {
		return nil, err
	}

	user := userFromRow(row)
	return &user, nil
}

// Update changes username, role and/or password of an existing user.
// Empty arguments leave the corresponding column untouched; in particular
// the password is only re-hashed when a new one is supplied.
func (s *UserService) Update(id, username, password, role string) error {
	existing, err := s.store.FetchOne(tableUsers, core.Filter{"id": id})
	if err != nil {
		return err
	}
	if existing == nil {
		return core.ErrNotFound
	}

	fields := map[string]any{}
	if username = strings.TrimSpace(username); username != "" {
		if err := s.checkUsernameFree(username, id); err != nil {
			return err
		}
		fields["username"] = username
	}
	if role != "" {
		fields["role"] = role
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		fields["password"] = string(hash)
	}
	if len(fields) == 0 {
		return nil
	}

	_, err = s.store.Update(tableUsers, fields, core.Filter{"id": id})
	return err
}

// Delete removes a user account.
func (s *UserService) Delete(id string) error {
	existing, err := s.store.FetchOne(tableUsers, core.Filter{"id": id})
	if err != nil {
		return err
	}
	if existing == nil {
		return core.ErrNotFound
	}
	return s.store.DeleteRows(tableUsers, core.Filter{"id": id})
}

// checkUsernameFree enforces the uniqueness invariant, counting the master
// credential as a taken name. excludeID skips the user being renamed.
func (s *UserService) checkUsernameFree(username, excludeID string) error {
	if username == s.master.Username {
		return &core.ValidationError{Field: "username", Reason: "reserved"}
	}

	row, err := s.store.FetchOne(tableUsers, core.Filter{"username": username})
	if err != nil {
		return err
	}
	if row != nil && row.ID() != excludeID {
		return &core.ValidationError{Field: "username", Reason: "already exists"}
	}
	return nil
}
