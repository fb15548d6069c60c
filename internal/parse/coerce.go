// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/adschema/pkg/types"
)

// CoercionError reports a raw value that could not be converted to its
// field's declared kind.
type CoercionError struct {
	// Field is the catalog field name.
	Field string

	// GUID is the block's identifier when already resolved, empty otherwise.
	GUID string

	// Raw is the offending text, trimmed.
	Raw string
}

func (e *CoercionError) Error() string {
	if e.GUID != "" {
		return fmt.Sprintf("coercing %s for %s: invalid value %q", e.Field, e.GUID, e.Raw)
	}
	return fmt.Sprintf("coercing %s: invalid value %q", e.Field, e.Raw)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Coerce converts raw field text into a typed value. Booleans accept
// TRUE/FALSE in any casing; integers are base-10; strings pass through with
// whitespace runs collapsed to single spaces.
func Coerce(field, raw string, kind types.FieldKind) (types.Value, error) {
	trimmed := strings.TrimSpace(raw)

	switch kind {
	case types.KindBool:
		switch strings.ToUpper(trimmed) {
		case "TRUE":
			return types.BoolValue(true), nil
		case "FALSE":
			return types.BoolValue(false), nil
		}
		return types.Value{}, &CoercionError{Field: field, Raw: trimmed}

	case types.KindInt:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return types.Value{}, &CoercionError{Field: field, Raw: trimmed}
		}
		return types.IntValue(n), nil

	default:
		return types.StringValue(whitespaceRun.ReplaceAllString(trimmed, " ")), nil
	}
}
