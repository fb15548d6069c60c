package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/adschema/pkg/types"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    types.FieldKind
		want    types.Value
		wantErr bool
	}{
		{name: "bool TRUE", raw: "TRUE", kind: types.KindBool, want: types.BoolValue(true)},
		{name: "bool FALSE", raw: "FALSE", kind: types.KindBool, want: types.BoolValue(false)},
		{name: "bool mixed case", raw: "True", kind: types.KindBool, want: types.BoolValue(true)},
		{name: "bool with padding", raw: "  FALSE ", kind: types.KindBool, want: types.BoolValue(false)},
		{name: "bool invalid", raw: "YES", kind: types.KindBool, wantErr: true},
		{name: "int", raw: "1", kind: types.KindInt, want: types.IntValue(1)},
		{name: "int negative", raw: "-2147483648", kind: types.KindInt, want: types.IntValue(-2147483648)},
		{name: "int invalid", raw: "0x10", kind: types.KindInt, wantErr: true},
		{name: "int empty", raw: "", kind: types.KindInt, wantErr: true},
		{name: "string verbatim", raw: "Account-Expires", kind: types.KindString, want: types.StringValue("Account-Expires")},
		{name: "string whitespace collapsed", raw: "fATTINDEX |   fPRESERVEONDELETE", kind: types.KindString, want: types.StringValue("fATTINDEX | fPRESERVEONDELETE")},
		{name: "string trimmed", raw: "  cost  ", kind: types.KindString, want: types.StringValue("cost")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce("testField", tt.raw, tt.kind)
			if tt.wantErr {
				require.Error(t, err)
				var ce *CoercionError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, "testField", ce.Field)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %+v, want %+v", got, tt.want)
		})
	}
}

func TestCoercionErrorMessage(t *testing.T) {
	err := &CoercionError{Field: "rangeLower", Raw: "ten"}
	assert.Contains(t, err.Error(), "rangeLower")
	assert.Contains(t, err.Error(), `"ten"`)

	err.GUID = "bf967944-0de6-11d0-a285-00aa003049e2"
	assert.Contains(t, err.Error(), "bf967944-0de6-11d0-a285-00aa003049e2")
}
