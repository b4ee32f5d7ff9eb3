package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/FrancoCalegari/demobodega/internal/core"
)

// fakeStore is an in-memory core.RecordStore for service tests. Its
// RunInTransaction has no rollback on purpose: that is exactly the
// non-transactional backend the partial-write policy is written for.
type fakeStore struct {
	tables map[string][]core.Row
	nextID int

	// failInsert makes Insert into the named table fail, to exercise
	// mid-sequence write failures.
	failInsert string
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string][]core.Row{}}
}

func rowMatches(row core.Row, filter core.Filter) bool {
	for k, v := range filter {
		if fmt.Sprintf("%v", row[k]) != fmt.Sprintf("%v", v) {
			return false
		}
	}
	return true
}

func (s *fakeStore) FetchOne(table string, filter core.Filter) (core.Row, error) {
	for _, row := range s.tables[table] {
		if rowMatches(row, filter) {
			return row, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FetchMany(table string, filter core.Filter, orderBy string) ([]core.Row, error) {
	var rows []core.Row
	for _, row := range s.tables[table] {
		if rowMatches(row, filter) {
			rows = append(rows, row)
		}
	}

	if orderBy != "" {
		desc := strings.HasPrefix(orderBy, "-")
		field := strings.TrimLeft(orderBy, "+-")
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := fmt.Sprintf("%010v", rows[i][field]), fmt.Sprintf("%010v", rows[j][field])
			if desc {
				return a > b
			}
			return a < b
		})
	}
	return rows, nil
}

func (s *fakeStore) Insert(table string, fields map[string]any) (core.Row, error) {
	if table == s.failInsert {
		return nil, fmt.Errorf("forced insert failure on %s", table)
	}

	s.nextID++
	row := core.Row{"id": fmt.Sprintf("rec%04d", s.nextID), "created": fmt.Sprintf("2026-01-01 00:00:%02d", s.nextID)}
	for k, v := range fields {
		row[k] = v
	}
	s.tables[table] = append(s.tables[table], row)
	return row, nil
}

func (s *fakeStore) Update(table string, fields map[string]any, filter core.Filter) (int, error) {
	affected := 0
	for _, row := range s.tables[table] {
		if rowMatches(row, filter) {
			for k, v := range fields {
				row[k] = v
			}
			affected++
		}
	}
	return affected, nil
}

func (s *fakeStore) DeleteRows(table string, filter core.Filter) error {
	kept := s.tables[table][:0]
	for _, row := range s.tables[table] {
		if !rowMatches(row, filter) {
			kept = append(kept, row)
		}
	}
	s.tables[table] = kept
	return nil
}

func (s *fakeStore) Count(table string, filter core.Filter) (int64, error) {
	rows, _ := s.FetchMany(table, filter, "")
	return int64(len(rows)), nil
}

func (s *fakeStore) RunInTransaction(fn func(tx core.RecordStore) error) error {
	return fn(s)
}
