// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import "strings"

// ExtractFields applies the field catalog to one block and returns raw
// string values keyed by field name. Each field matches at most once: the
// first matching line wins and later duplicates are ignored. Fields absent
// from the block are absent from the result.
//
// Multi-line fields accumulate subsequent lines until another catalog field
// line, a blank line, or a record marker, whichever comes first.
// Continuation lines are joined with a single space in order.
func ExtractFields(b Block) map[string]string {
	raw := make(map[string]string)

	for i := 0; i < len(b.Lines); {
		line := trimLead(b.Lines[i])
		spec, val, ok := matchField(line)
		if !ok {
			i++
			continue
		}
		if _, dup := raw[spec.name]; dup {
			i++
			continue
		}

		i++
		if spec.multiline {
			for i < len(b.Lines) {
				next := trimLead(b.Lines[i])
				if next == "" || markerPattern.MatchString(next) {
					break
				}
				if _, _, field := matchField(next); field {
					break
				}
				val += " " + strings.TrimSpace(next)
				i++
			}
		}

		raw[spec.name] = strings.TrimSpace(val)
	}

	return raw
}

// matchField tests a line against every catalog pattern and returns the
// first field it belongs to, with the captured raw value.
func matchField(line string) (fieldSpec, string, bool) {
	for _, s := range catalog {
		if m := s.pattern.FindStringSubmatch(line); m != nil {
			return s, m[1], true
		}
	}
	return fieldSpec{}, "", false
}
