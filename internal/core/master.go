package core

import "os"

// MasterCredential is the hardcoded master identity. It lives outside the
// users table so it can never be locked out by a bad edit; the auth service
// checks it before any store lookup.
type MasterCredential struct {
	Username string
	Password string
}

// MasterID is the fixed session id issued for a master login. PocketBase
// record ids are 15-char random strings, so "master" can never collide
// with a store-assigned user id.
const MasterID = "master"

// Identity builds the session identity for a master login.
func (c MasterCredential) Identity() Identity {
	return Identity{ID: MasterID, Username: c.Username, Role: RoleMaster}
}

// LoadMasterCredential reads the master credential from the environment,
// falling back to the built-in defaults.
func LoadMasterCredential() MasterCredential {
	cred := MasterCredential{
		Username: "gowther",
		Password: "Chemy@137546321",
	}
	if v := os.Getenv("MASTER_USERNAME"); v != "" {
		cred.Username = v
	}
	if v := os.Getenv("MASTER_PASSWORD"); v != "" {
		cred.Password = v
	}
	return cred
}
