// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the attribute record model shared across the
// ingestion pipeline, the store, and the CLI.
package types

import "strconv"

// FieldKind is the semantic type of an attribute field value.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindInt    FieldKind = "int"
	KindBool   FieldKind = "bool"
)

// Value is one typed field value. Kind selects the meaningful member.
type Value struct {
	Kind FieldKind
	Str  string
	Int  int64
	Bool bool
}

// StringValue wraps s as a string-kinded Value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IntValue wraps n as an int-kinded Value.
func IntValue(n int64) Value { return Value{Kind: KindInt, Int: n} }

// BoolValue wraps b as a bool-kinded Value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == o.Int
	case KindBool:
		return v.Bool == o.Bool
	default:
		return v.Str == o.Str
	}
}

// Text renders the value in the textual form the reference documents use:
// base-10 for integers, TRUE/FALSE for booleans, verbatim for strings.
func (v Value) Text() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return v.Str
	}
}

// Native returns the value as the matching Go type (string, int64, or bool),
// for JSON export.
func (v Value) Native() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindBool:
		return v.Bool
	default:
		return v.Str
	}
}

// Field names as they appear in the MS-ADA reference documents. The casing
// is exact; matching against document text is case-sensitive.
const (
	FieldCN                            = "cn"
	FieldLDAPDisplayName               = "ldapDisplayName"
	FieldAttributeID                   = "attributeId"
	FieldAttributeSyntax               = "attributeSyntax"
	FieldOMSyntax                      = "omSyntax"
	FieldSchemaIDGUID                  = "schemaIdGuid"
	FieldIsSingleValued                = "isSingleValued"
	FieldSystemOnly                    = "systemOnly"
	FieldSearchFlags                   = "searchFlags"
	FieldRangeLower                    = "rangeLower"
	FieldRangeUpper                    = "rangeUpper"
	FieldAttributeSecurityGUID         = "attributeSecurityGuid"
	FieldMapiID                        = "mapiID"
	FieldIsMemberOfPartialAttributeSet = "isMemberOfPartialAttributeSet"
	FieldSystemFlags                   = "systemFlags"
	FieldSchemaFlagsEx                 = "schemaFlagsEx"
)

// FieldNames lists every catalog field in document order. Iterating this
// slice instead of a map keeps persistence and export deterministic.
var FieldNames = []string{
	FieldCN,
	FieldLDAPDisplayName,
	FieldAttributeID,
	FieldAttributeSyntax,
	FieldOMSyntax,
	FieldSchemaIDGUID,
	FieldIsSingleValued,
	FieldSystemOnly,
	FieldSearchFlags,
	FieldRangeLower,
	FieldRangeUpper,
	FieldAttributeSecurityGUID,
	FieldMapiID,
	FieldIsMemberOfPartialAttributeSet,
	FieldSystemFlags,
	FieldSchemaFlagsEx,
}

// FieldKinds maps each catalog field to its declared kind.
var FieldKinds = map[string]FieldKind{
	FieldCN:                            KindString,
	FieldLDAPDisplayName:               KindString,
	FieldAttributeID:                   KindString,
	FieldAttributeSyntax:               KindString,
	FieldOMSyntax:                      KindInt,
	FieldSchemaIDGUID:                  KindString,
	FieldIsSingleValued:                KindBool,
	FieldSystemOnly:                    KindBool,
	FieldSearchFlags:                   KindString,
	FieldRangeLower:                    KindInt,
	FieldRangeUpper:                    KindInt,
	FieldAttributeSecurityGUID:         KindString,
	FieldMapiID:                        KindInt,
	FieldIsMemberOfPartialAttributeSet: KindBool,
	FieldSystemFlags:                   KindString,
	FieldSchemaFlagsEx:                 KindString,
}

// Attribute is one schema attribute assembled from a document block. The
// identifier and display name are always materialized; every other field is
// an optional typed slot. A nil slot means the documents never specified the
// field, which is distinct from an empty or zero value.
//
// The flag-list fields (searchFlags, systemFlags, schemaFlagsEx) stay opaque
// strings: the documents do not define a closed flag vocabulary, so decoding
// them into sets would misrepresent unknown tokens.
type Attribute struct {
	// SchemaIDGUID is the record key in canonical lowercase hyphenated form.
	SchemaIDGUID string

	// LDAPDisplayName is the primary name. Empty when neither the field nor
	// the block header supplied one; such records stay in the store but are
	// unusable for name-based lookup.
	LDAPDisplayName string

	CN                            *string
	AttributeID                   *string
	AttributeSyntax               *string
	OMSyntax                      *int64
	IsSingleValued                *bool
	SystemOnly                    *bool
	SearchFlags                   *string
	RangeLower                    *int64
	RangeUpper                    *int64
	AttributeSecurityGUID         *string
	MapiID                        *int64
	IsMemberOfPartialAttributeSet *bool
	SystemFlags                   *string
	SchemaFlagsEx                 *string
}

// Field returns the named field's value and whether it is set.
func (a *Attribute) Field(name string) (Value, bool) {
	switch name {
	case FieldSchemaIDGUID:
		return strVal(a.SchemaIDGUID)
	case FieldLDAPDisplayName:
		return strVal(a.LDAPDisplayName)
	case FieldCN:
		return strSlot(a.CN)
	case FieldAttributeID:
		return strSlot(a.AttributeID)
	case FieldAttributeSyntax:
		return strSlot(a.AttributeSyntax)
	case FieldOMSyntax:
		return intSlot(a.OMSyntax)
	case FieldIsSingleValued:
		return boolSlot(a.IsSingleValued)
	case FieldSystemOnly:
		return boolSlot(a.SystemOnly)
	case FieldSearchFlags:
		return strSlot(a.SearchFlags)
	case FieldRangeLower:
		return intSlot(a.RangeLower)
	case FieldRangeUpper:
		return intSlot(a.RangeUpper)
	case FieldAttributeSecurityGUID:
		return strSlot(a.AttributeSecurityGUID)
	case FieldMapiID:
		return intSlot(a.MapiID)
	case FieldIsMemberOfPartialAttributeSet:
		return boolSlot(a.IsMemberOfPartialAttributeSet)
	case FieldSystemFlags:
		return strSlot(a.SystemFlags)
	case FieldSchemaFlagsEx:
		return strSlot(a.SchemaFlagsEx)
	}
	return Value{}, false
}

// SetField stores a coerced value into its slot. Values of the wrong kind
// for the named field are ignored; coercion guarantees the kind upstream.
func (a *Attribute) SetField(name string, v Value) {
	switch name {
	case FieldSchemaIDGUID:
		a.SchemaIDGUID = v.Str
	case FieldLDAPDisplayName:
		a.LDAPDisplayName = v.Str
	case FieldCN:
		a.CN = &v.Str
	case FieldAttributeID:
		a.AttributeID = &v.Str
	case FieldAttributeSyntax:
		a.AttributeSyntax = &v.Str
	case FieldOMSyntax:
		a.OMSyntax = &v.Int
	case FieldIsSingleValued:
		a.IsSingleValued = &v.Bool
	case FieldSystemOnly:
		a.SystemOnly = &v.Bool
	case FieldSearchFlags:
		a.SearchFlags = &v.Str
	case FieldRangeLower:
		a.RangeLower = &v.Int
	case FieldRangeUpper:
		a.RangeUpper = &v.Int
	case FieldAttributeSecurityGUID:
		a.AttributeSecurityGUID = &v.Str
	case FieldMapiID:
		a.MapiID = &v.Int
	case FieldIsMemberOfPartialAttributeSet:
		a.IsMemberOfPartialAttributeSet = &v.Bool
	case FieldSystemFlags:
		a.SystemFlags = &v.Str
	case FieldSchemaFlagsEx:
		a.SchemaFlagsEx = &v.Str
	}
}

func strVal(s string) (Value, bool) {
	if s == "" {
		return Value{}, false
	}
	return StringValue(s), true
}

func strSlot(p *string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	return StringValue(*p), true
}

func intSlot(p *int64) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	return IntValue(*p), true
}

func boolSlot(p *bool) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	return BoolValue(*p), true
}
