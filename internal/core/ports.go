package core

import "fmt"

// Row is one store record surfaced as loosely typed columns.
// The getters mirror the coercions the PocketBase record API applies,
// so services read the same values regardless of the backend.
type Row map[string]any

func (r Row) ID() string {
	return r.String("id")
}

func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		// datetime and numeric columns stringify via their fmt support
		return fmt.Sprintf("%v", v)
	}
}

func (r Row) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Filter matches rows whose columns equal every entry. A nil filter
// matches everything.
type Filter map[string]any

// RecordStore is the seam between the aggregation logic and whatever
// relational backend sits underneath. One implementation wraps the
// embedded PocketBase/SQLite store; a remote table API could substitute
// without touching the services.
type RecordStore interface {
	// FetchOne returns the first matching row, or (nil, nil) when none match.
	FetchOne(table string, filter Filter) (Row, error)

	// FetchMany returns all matching rows. orderBy is a column name with a
	// +/- prefix for direction, e.g. "+display_order".
	FetchMany(table string, filter Filter, orderBy string) ([]Row, error)

	// Insert creates a row and returns it with its backend-assigned id.
	Insert(table string, fields map[string]any) (Row, error)

	// Update applies fields to every matching row and reports how many
	// rows were touched.
	Update(table string, fields map[string]any, filter Filter) (int, error)

	// DeleteRows removes every matching row. Deleting nothing is not an error.
	DeleteRows(table string, filter Filter) error

	// Count reports the number of matching rows.
	Count(table string, filter Filter) (int64, error)

	// RunInTransaction executes fn against a transactional view of the
	// store and rolls back when fn errors. Backends without transactions
	// run fn directly; callers must then treat a mid-sequence failure as
	// a partial write (see PartialWriteError).
	RunInTransaction(fn func(tx RecordStore) error) error
}

// AssetDestroyer removes an uploaded asset from the media host.
// Implemented by the Cloudinary client wrapper.
type AssetDestroyer interface {
	Destroy(publicID, resourceType string) error
}
