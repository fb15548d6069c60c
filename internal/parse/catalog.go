// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns extracted document text into assembled schema
// attributes: segmentation into per-attribute blocks, field extraction
// against a fixed pattern catalog, type coercion, and record assembly.
package parse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/adschema/pkg/types"
)

// markerPattern matches the start-of-record line, e.g. "2.16 Attribute cost".
// Everything from one marker to the next belongs to the same block.
var markerPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)\s+Attribute\s+(\S.*)$`)

// fieldSpec couples a catalog field with its line recognition pattern.
type fieldSpec struct {
	name      string
	kind      types.FieldKind
	pattern   *regexp.Regexp
	multiline bool
}

// fieldLinePattern builds the line pattern for a field. Field names are
// matched case-sensitively in the exact casing the documents use.
func fieldLinePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(name) + `:\s*(.*)$`)
}

func spec(name string, multiline bool) fieldSpec {
	return fieldSpec{
		name:      name,
		kind:      types.FieldKinds[name],
		pattern:   fieldLinePattern(name),
		multiline: multiline,
	}
}

// catalog is the static field specification: one entry per field the
// reference documents describe. The flag-list fields wrap across physical
// lines in the PDFs, so they accumulate continuation lines.
var catalog = []fieldSpec{
	spec(types.FieldCN, false),
	spec(types.FieldLDAPDisplayName, false),
	spec(types.FieldAttributeID, false),
	spec(types.FieldAttributeSyntax, false),
	spec(types.FieldOMSyntax, false),
	spec(types.FieldSchemaIDGUID, false),
	spec(types.FieldIsSingleValued, false),
	spec(types.FieldSystemOnly, false),
	spec(types.FieldSearchFlags, true),
	spec(types.FieldRangeLower, false),
	spec(types.FieldRangeUpper, false),
	spec(types.FieldAttributeSecurityGUID, false),
	spec(types.FieldMapiID, false),
	spec(types.FieldIsMemberOfPartialAttributeSet, false),
	spec(types.FieldSystemFlags, true),
	spec(types.FieldSchemaFlagsEx, true),
}

// trimLead strips the leading no-break spaces and whitespace that PDF text
// extraction puts in front of field lines.
func trimLead(line string) string {
	return strings.TrimLeft(line, "  \t")
}
