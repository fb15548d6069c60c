// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/adschema/pkg/types"
)

// Result is the outcome of assembling one block into a record.
type Result struct {
	Attribute types.Attribute

	// Warnings holds recovered coercion failures: the affected fields were
	// dropped but the record itself was kept.
	Warnings []*CoercionError
}

// Assemble extracts and coerces a block's fields into an Attribute. The
// returned error is a *CoercionError when the identifier field is present
// but malformed, or a plain error when it is missing entirely; either way
// the block yields no record and must not be merged into another one.
func Assemble(b Block) (Result, error) {
	raw := ExtractFields(b)

	guidRaw, ok := raw[types.FieldSchemaIDGUID]
	if !ok {
		return Result{}, fmt.Errorf("block %q (section %s): no %s field", b.Name, b.Section, types.FieldSchemaIDGUID)
	}
	guid, err := NormalizeGUID(guidRaw)
	if err != nil {
		return Result{}, &CoercionError{Field: types.FieldSchemaIDGUID, Raw: strings.TrimSpace(guidRaw)}
	}

	res := Result{Attribute: types.Attribute{SchemaIDGUID: guid}}

	for _, s := range catalog {
		if s.name == types.FieldSchemaIDGUID {
			continue
		}
		rawVal, ok := raw[s.name]
		if !ok {
			continue
		}
		v, err := Coerce(s.name, rawVal, s.kind)
		if err != nil {
			ce := err.(*CoercionError)
			ce.GUID = guid
			res.Warnings = append(res.Warnings, ce)
			continue
		}
		res.Attribute.SetField(s.name, v)
	}

	// The PDFs occasionally omit the ldapDisplayName line; the marker line
	// carries the same name.
	if res.Attribute.LDAPDisplayName == "" && b.Name != "" {
		res.Attribute.LDAPDisplayName = b.Name
	}

	return res, nil
}

// NormalizeGUID validates an identifier token and returns its canonical
// lowercase hyphenated form. Only the plain 8-4-4-4-12 layout is accepted;
// braced, URN, and compact spellings do not occur in the documents.
func NormalizeGUID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) != 36 || strings.Count(s, "-") != 4 {
		return "", fmt.Errorf("malformed identifier %q", s)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("malformed identifier %q: %w", s, err)
	}
	return u.String(), nil
}
