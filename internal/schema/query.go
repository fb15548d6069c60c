// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"strings"

	"github.com/pdiddy/adschema/internal/parse"
	"github.com/pdiddy/adschema/pkg/types"
)

// Entry is one (primaryName, identifier) projection row.
type Entry struct {
	Name string
	GUID string
}

// LookupGUID returns the record for an identifier, applying the same
// normalization used at ingestion so casing never matters. The boolean is
// false both for absent identifiers and for tokens that are not
// identifiers at all.
func (s *Store) LookupGUID(id string) (*types.Attribute, bool) {
	guid, err := parse.NormalizeGUID(id)
	if err != nil {
		return nil, false
	}
	a, ok := s.index[guid]
	return a, ok
}

// LookupName returns the identifier for an exact, case-sensitive primary
// name. Display names are expected unique but the documents do not
// guarantee it; on a tie the first record in store iteration order wins.
func (s *Store) LookupName(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, r := range s.records {
		if r.LDAPDisplayName == name {
			return r.SchemaIDGUID, true
		}
	}
	return "", false
}

// Search returns every named record whose primary name contains the
// pattern, case-insensitively, in store iteration order. The empty pattern
// matches all named records. An empty result is a valid outcome.
func (s *Store) Search(pattern string) []Entry {
	p := strings.ToLower(pattern)
	var out []Entry
	for _, r := range s.records {
		if r.LDAPDisplayName == "" {
			continue
		}
		if strings.Contains(strings.ToLower(r.LDAPDisplayName), p) {
			out = append(out, Entry{Name: r.LDAPDisplayName, GUID: r.SchemaIDGUID})
		}
	}
	return out
}

// List enumerates every record in store iteration order, including records
// without a primary name.
func (s *Store) List() []Entry {
	out := make([]Entry, len(s.records))
	for i, r := range s.records {
		out[i] = Entry{Name: r.LDAPDisplayName, GUID: r.SchemaIDGUID}
	}
	return out
}
