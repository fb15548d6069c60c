// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/adschema/pkg/types"
)

// ExportCSV writes (GUID, AttributeName) rows sorted by attribute name.
func (s *Store) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"GUID", "AttributeName"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, e := range s.entriesByName() {
		if err := cw.Write([]string{e.GUID, e.Name}); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportTSV writes the same projection as ExportCSV, tab-separated.
func (s *Store) ExportTSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "GUID\tAttributeName"); err != nil {
		return err
	}
	for _, e := range s.entriesByName() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.GUID, e.Name); err != nil {
			return err
		}
	}
	return nil
}

// ExportJSON writes the full typed store as a JSON object keyed by
// identifier, every field in its native type. Key order is sorted by the
// encoder, so output is deterministic.
func (s *Store) ExportJSON(w io.Writer) error {
	obj := make(map[string]map[string]any, len(s.records))
	for _, r := range s.records {
		fields := make(map[string]any)
		for _, name := range types.FieldNames {
			if name == types.FieldSchemaIDGUID {
				continue
			}
			if v, ok := r.Field(name); ok {
				fields[name] = v.Native()
			}
		}
		obj[r.SchemaIDGUID] = fields
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}

func (s *Store) entriesByName() []Entry {
	entries := s.List()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].GUID < entries[j].GUID
	})
	return entries
}
