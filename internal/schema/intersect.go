// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// commentMarker prefixes ignorable lines in identifier list files.
const commentMarker = "#"

// ReadGUIDList reads identifiers from a plain text file, one per line.
// Blank lines and comment lines are discarded; everything else is taken
// verbatim.
func ReadGUIDList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading identifier list: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading identifier list %s: %w", path, err)
	}
	return ids, nil
}

// IntersectEntry is one identifier surviving an intersection. Name and
// Resolved are populated only when annotation was requested; an identifier
// with no matching record is kept rather than dropped.
type IntersectEntry struct {
	GUID     string
	Name     string
	Resolved bool
}

// Intersect computes the set intersection across the supplied identifier
// lists. Duplicates within a list collapse before intersecting, so the
// content is order-independent; the output follows each identifier's first
// appearance in the first list, which keeps results deterministic for a
// fixed input order.
func (s *Store) Intersect(lists [][]string, annotate bool) []IntersectEntry {
	if len(lists) == 0 {
		return nil
	}

	sets := make([]map[string]bool, len(lists))
	for i, list := range lists {
		set := make(map[string]bool, len(list))
		for _, id := range list {
			set[id] = true
		}
		sets[i] = set
	}

	var out []IntersectEntry
	seen := make(map[string]bool)
	for _, id := range lists[0] {
		if seen[id] {
			continue
		}
		seen[id] = true

		inAll := true
		for _, set := range sets[1:] {
			if !set[id] {
				inAll = false
				break
			}
		}
		if !inAll {
			continue
		}

		e := IntersectEntry{GUID: id}
		if annotate {
			if a, ok := s.LookupGUID(id); ok {
				e.Name = a.LDAPDisplayName
				e.Resolved = true
			}
		}
		out = append(out, e)
	}
	return out
}
