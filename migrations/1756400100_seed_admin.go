package migrations

import (
	"os"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the default admin account when the users table is empty, so a
// fresh deployment can log into the dashboard immediately.
func init() {
	m.Register(func(app core.App) error {
		total, err := app.CountRecords("users")
		if err != nil {
			return err
		}
		if total > 0 {
			return nil // already initialized
		}

		username := os.Getenv("INITIAL_ADMIN_USERNAME")
		if username == "" {
			username = "admin"
		}
		password := os.Getenv("INITIAL_ADMIN_PASSWORD")
		if password == "" {
			password = "admin123" // change after first login
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
		if err != nil {
			return err
		}

		collection, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}

		record := core.NewRecord(collection)
		record.Set("username", username)
		record.Set("password", string(hash))
		record.Set("role", "admin")
		return app.Save(record)
	}, nil)
}
