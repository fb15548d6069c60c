// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema holds the attribute store: assembly-time merging, SQLite
// snapshot persistence, and the query surface.
package schema

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/adschema/internal/parse"
	"github.com/pdiddy/adschema/pkg/types"
)

// Store maps schemaIdGuid to attribute records. Insertion order is
// preserved so exports and tie-breaking name lookups stay deterministic.
// A store is built once by ingestion (or loaded from a snapshot) and is
// read-only afterwards.
type Store struct {
	records []*types.Attribute
	index   map[string]*types.Attribute
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]*types.Attribute)}
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Records exposes the records in iteration order for export and listing.
func (s *Store) Records() []*types.Attribute { return s.records }

func (s *Store) insert(a *types.Attribute) {
	s.records = append(s.records, a)
	s.index[a.SchemaIDGUID] = a
}

// StoreCorruptError reports the first structural violation found while
// loading a snapshot.
type StoreCorruptError struct {
	Path      string
	Violation string
}

func (e *StoreCorruptError) Error() string {
	return fmt.Sprintf("corrupt schema store %s: %s", e.Path, e.Violation)
}

const (
	createAttributes = `CREATE TABLE attributes (
		pos  INTEGER PRIMARY KEY,
		guid TEXT NOT NULL UNIQUE
	)`
	createFields = `CREATE TABLE fields (
		guid  TEXT NOT NULL REFERENCES attributes(guid),
		name  TEXT NOT NULL,
		kind  TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (guid, name)
	)`
)

// Save writes a complete snapshot of the store to a SQLite database at
// path. Any existing file is replaced first, so a snapshot never mixes
// records from two builds.
func (s *Store) Save(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replacing snapshot %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{createAttributes, createFields} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("creating snapshot schema: %w", err)
		}
	}

	insAttr, err := tx.Prepare(`INSERT INTO attributes (pos, guid) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing attribute insert: %w", err)
	}
	defer insAttr.Close()

	insField, err := tx.Prepare(`INSERT INTO fields (guid, name, kind, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing field insert: %w", err)
	}
	defer insField.Close()

	for pos, rec := range s.records {
		if _, err := insAttr.Exec(pos, rec.SchemaIDGUID); err != nil {
			return fmt.Errorf("writing attribute %s: %w", rec.SchemaIDGUID, err)
		}
		for _, name := range types.FieldNames {
			if name == types.FieldSchemaIDGUID {
				continue
			}
			v, ok := rec.Field(name)
			if !ok {
				continue
			}
			if _, err := insField.Exec(rec.SchemaIDGUID, name, string(v.Kind), v.Text()); err != nil {
				return fmt.Errorf("writing field %s of %s: %w", name, rec.SchemaIDGUID, err)
			}
		}
	}

	return tx.Commit()
}

// Load reads a snapshot back into memory, restoring record order and typed
// field values exactly. Structural violations surface as *StoreCorruptError
// naming the first problem found.
func Load(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening schema store: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening schema store %s: %w", path, err)
	}
	defer db.Close()

	for _, table := range []string{"attributes", "fields"} {
		var n int
		err := db.QueryRow(
			`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&n)
		if err != nil {
			return nil, &StoreCorruptError{Path: path, Violation: "not a snapshot database: " + err.Error()}
		}
		if n == 0 {
			return nil, &StoreCorruptError{Path: path, Violation: fmt.Sprintf("missing table %q", table)}
		}
	}

	store := NewStore()

	rows, err := db.Query(`SELECT guid FROM attributes ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("reading attributes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var guid string
		if err := rows.Scan(&guid); err != nil {
			return nil, fmt.Errorf("scanning attribute row: %w", err)
		}
		norm, err := parse.NormalizeGUID(guid)
		if err != nil || norm != guid {
			return nil, &StoreCorruptError{Path: path, Violation: fmt.Sprintf("malformed identifier %q", guid)}
		}
		store.insert(&types.Attribute{SchemaIDGUID: guid})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading attributes: %w", err)
	}

	frows, err := db.Query(`SELECT guid, name, kind, value FROM fields ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("reading fields: %w", err)
	}
	defer frows.Close()

	for frows.Next() {
		var guid, name, kind, value string
		if err := frows.Scan(&guid, &name, &kind, &value); err != nil {
			return nil, fmt.Errorf("scanning field row: %w", err)
		}

		rec, ok := store.index[guid]
		if !ok {
			return nil, &StoreCorruptError{Path: path, Violation: fmt.Sprintf("field row for unknown identifier %q", guid)}
		}
		if name == types.FieldSchemaIDGUID {
			return nil, &StoreCorruptError{Path: path, Violation: fmt.Sprintf("field row duplicates the identifier column for %q", guid)}
		}
		declared, known := types.FieldKinds[name]
		if !known {
			return nil, &StoreCorruptError{Path: path, Violation: fmt.Sprintf("unknown field %q for %q", name, guid)}
		}
		if types.FieldKind(kind) != declared {
			return nil, &StoreCorruptError{Path: path, Violation: fmt.Sprintf("field %q of %q has kind %q, want %q", name, guid, kind, declared)}
		}

		v, verr := decodeValue(declared, value)
		if verr != nil {
			return nil, &StoreCorruptError{Path: path, Violation: fmt.Sprintf("field %q of %q: %v", name, guid, verr)}
		}
		rec.SetField(name, v)
	}
	if err := frows.Err(); err != nil {
		return nil, fmt.Errorf("reading fields: %w", err)
	}

	return store, nil
}

// decodeValue reverses Value.Text for a declared kind. Stricter than
// ingestion coercion: a snapshot only ever holds canonical renderings.
func decodeValue(kind types.FieldKind, text string) (types.Value, error) {
	switch kind {
	case types.KindInt:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return types.Value{}, fmt.Errorf("non-integer value %q", text)
		}
		return types.IntValue(n), nil
	case types.KindBool:
		switch strings.ToUpper(text) {
		case "TRUE":
			return types.BoolValue(true), nil
		case "FALSE":
			return types.BoolValue(false), nil
		}
		return types.Value{}, fmt.Errorf("non-boolean value %q", text)
	default:
		return types.StringValue(text), nil
	}
}
