package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/FrancoCalegari/demobodega/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

// PBRecordStore implements core.RecordStore on top of the embedded
// PocketBase/SQLite store. Tables map to PocketBase collections.
type PBRecordStore struct {
	app pbCore.App
}

func NewRecordStore(app pbCore.App) core.RecordStore {
	return &PBRecordStore{app: app}
}

// buildFilter turns an equality filter into a PocketBase filter expression
// with bound params. Keys are sorted so the expression is deterministic.
func buildFilter(filter core.Filter) (string, dbx.Params) {
	if len(filter) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	params := dbx.Params{}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s = {:%s}", k, k))
		params[k] = filter[k]
	}
	return strings.Join(parts, " && "), params
}

func toRow(record *pbCore.Record) core.Row {
	row := core.Row(record.PublicExport())
	row["id"] = record.Id
	return row
}

func (s *PBRecordStore) findRecords(table string, filter core.Filter, orderBy string, limit int) ([]*pbCore.Record, error) {
	expr, params := buildFilter(filter)
	if expr == "" {
		// FindRecordsByFilter needs a non-empty expression
		expr = "id != ''"
	}

	records, err := s.app.FindRecordsByFilter(table, expr, orderBy, limit, 0, params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: query %s: %v", core.ErrStoreUnavailable, table, err)
	}
	return records, nil
}

func (s *PBRecordStore) FetchOne(table string, filter core.Filter) (core.Row, error) {
	records, err := s.findRecords(table, filter, "", 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return toRow(records[0]), nil
}

func (s *PBRecordStore) FetchMany(table string, filter core.Filter, orderBy string) ([]core.Row, error) {
	records, err := s.findRecords(table, filter, orderBy, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]core.Row, len(records))
	for i, record := range records {
		rows[i] = toRow(record)
	}
	return rows, nil
}

func (s *PBRecordStore) Insert(table string, fields map[string]any) (core.Row, error) {
	collection, err := s.app.FindCollectionByNameOrId(table)
	if err != nil {
		return nil, fmt.Errorf("%w: collection %s: %v", core.ErrStoreUnavailable, table, err)
	}

	record := pbCore.NewRecord(collection)
	for k, v := range fields {
		record.Set(k, v)
	}

	if err := s.app.Save(record); err != nil {
		return nil, fmt.Errorf("insert into %s: %w", table, err)
	}
	return toRow(record), nil
}

func (s *PBRecordStore) Update(table string, fields map[string]any, filter core.Filter) (int, error) {
	records, err := s.findRecords(table, filter, "", 0)
	if err != nil {
		return 0, err
	}

	for i, record := range records {
		for k, v := range fields {
			record.Set(k, v)
		}
		if err := s.app.Save(record); err != nil {
			return i, fmt.Errorf("update %s: %w", table, err)
		}
	}
	return len(records), nil
}

func (s *PBRecordStore) DeleteRows(table string, filter core.Filter) error {
	records, err := s.findRecords(table, filter, "", 0)
	if err != nil {
		return err
	}

	for _, record := range records {
		if err := s.app.Delete(record); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}
	return nil
}

func (s *PBRecordStore) Count(table string, filter core.Filter) (int64, error) {
	exprs := []dbx.Expression{}
	if len(filter) > 0 {
		exprs = append(exprs, dbx.HashExp(filter))
	}

	total, err := s.app.CountRecords(table, exprs...)
	if err != nil {
		return 0, fmt.Errorf("%w: count %s: %v", core.ErrStoreUnavailable, table, err)
	}
	return total, nil
}

func (s *PBRecordStore) RunInTransaction(fn func(tx core.RecordStore) error) error {
	return s.app.RunInTransaction(func(txApp pbCore.App) error {
		return fn(&PBRecordStore{app: txApp})
	})
}
