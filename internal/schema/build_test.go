package schema

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/pdiddy/adschema/internal/extract"
	"github.com/pdiddy/adschema/pkg/types"
)

// fakeExtractor serves canned document text per path.
type fakeExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (string, error) {
	if err, ok := f.errs[path]; ok {
		return "", err
	}
	return f.texts[path], nil
}

const (
	guidCost    = "aaaaaaaa-0000-0000-0000-000000000001"
	guidHistory = "aaaaaaaa-0000-0000-0000-000000000002"
)

const docCost = `2.16 Attribute cost
` + " " + `cn: Cost
` + " " + `ldapDisplayName: cost
` + " " + `schemaIdGuid: AAAAAAAA-0000-0000-0000-000000000001
` + " " + `isSingleValued: TRUE
` + " " + `rangeLower: 1
`

const docHistory = `3.2 Attribute accountNameHistory
` + " " + `cn: Account-Name-History
` + " " + `ldapDisplayName: accountNameHistory
` + " " + `schemaIdGuid: aaaaaaaa-0000-0000-0000-000000000002
` + " " + `isSingleValued: FALSE
`

// docCostPartial re-describes cost with an extra field and a divergent
// rangeLower, the way a record referenced across partition boundaries
// carries partial metadata in each document.
const docCostPartial = `4.1 Attribute cost
` + " " + `ldapDisplayName: cost
` + " " + `schemaIdGuid: aaaaaaaa-0000-0000-0000-000000000001
` + " " + `rangeLower: 2
` + " " + `rangeUpper: 100
`

func buildFrom(t *testing.T, ex extract.TextExtractor, docs ...string) (*Store, *types.BuildReport) {
	t.Helper()
	var out bytes.Buffer
	store, report := BuildStore(context.Background(), ex, docs, &out)
	return store, report
}

func TestBuildStore(t *testing.T) {
	ex := &fakeExtractor{texts: map[string]string{
		"ada1.pdf": docCost,
		"ada2.pdf": docHistory,
	}}

	store, report := buildFrom(t, ex, "ada1.pdf", "ada2.pdf")

	if store.Len() != 2 {
		t.Fatalf("store has %d records, want 2", store.Len())
	}
	if report.TotalAnomalies() != 0 {
		t.Errorf("got %d anomalies, want 0: %v", report.TotalAnomalies(), report.Samples)
	}

	a, ok := store.LookupGUID(guidCost)
	if !ok {
		t.Fatal("cost record missing")
	}
	if a.LDAPDisplayName != "cost" {
		t.Errorf("LDAPDisplayName = %q", a.LDAPDisplayName)
	}
	if a.IsSingleValued == nil || !*a.IsSingleValued {
		t.Error("IsSingleValued should be true")
	}
	if a.RangeLower == nil || *a.RangeLower != 1 {
		t.Error("RangeLower should be 1")
	}
}

func TestBuildStoreMergeUnionAndConflict(t *testing.T) {
	ex := &fakeExtractor{texts: map[string]string{
		"ada1.pdf": docCost,
		"ada3.pdf": docCostPartial,
	}}

	store, report := buildFrom(t, ex, "ada1.pdf", "ada3.pdf")

	if store.Len() != 1 {
		t.Fatalf("store has %d records, want 1 merged record", store.Len())
	}
	a, _ := store.LookupGUID(guidCost)

	// Union: the later document contributes rangeUpper.
	if a.RangeUpper == nil || *a.RangeUpper != 100 {
		t.Error("RangeUpper should be unioned in from the later document")
	}
	// Conflict: the later document's rangeLower wins.
	if a.RangeLower == nil || *a.RangeLower != 2 {
		t.Error("RangeLower should be the later document's value")
	}
	// Fields only in the earlier document survive.
	if a.IsSingleValued == nil || !*a.IsSingleValued {
		t.Error("IsSingleValued from the first document should survive")
	}

	if got := report.Counts[types.AnomalyMergeConflict]; got != 1 {
		t.Errorf("merge conflicts = %d, want 1", got)
	}
}

func TestBuildStoreIdempotentMerge(t *testing.T) {
	ex := &fakeExtractor{texts: map[string]string{"ada1.pdf": docCost}}

	once, _ := buildFrom(t, ex, "ada1.pdf")
	twice, report := buildFrom(t, ex, "ada1.pdf", "ada1.pdf")

	if once.Len() != twice.Len() {
		t.Errorf("double ingestion changed record count: %d vs %d", once.Len(), twice.Len())
	}
	// Later-wins applied to identical values is a no-op, not a conflict.
	if got := report.Counts[types.AnomalyMergeConflict]; got != 0 {
		t.Errorf("merge conflicts = %d, want 0", got)
	}

	a1, _ := once.LookupGUID(guidCost)
	a2, _ := twice.LookupGUID(guidCost)
	for _, name := range types.FieldNames {
		v1, ok1 := a1.Field(name)
		v2, ok2 := a2.Field(name)
		if ok1 != ok2 || (ok1 && !v1.Equal(v2)) {
			t.Errorf("field %s differs after double ingestion", name)
		}
	}
}

func TestBuildStoreInvalidIdentifier(t *testing.T) {
	text := `2.1 Attribute broken
` + " " + `ldapDisplayName: broken
` + " " + `schemaIdGuid: not-hex-at-all
`
	ex := &fakeExtractor{texts: map[string]string{"ada1.pdf": text}}

	store, report := buildFrom(t, ex, "ada1.pdf")

	if store.Len() != 0 {
		t.Error("record with an invalid identifier must not be stored")
	}
	if report.TotalAnomalies() != 1 {
		t.Errorf("anomaly count = %d, want exactly 1", report.TotalAnomalies())
	}
	if got := report.Counts[types.AnomalyCoercion]; got != 1 {
		t.Errorf("coercion anomalies = %d, want 1", got)
	}
}

func TestBuildStoreMissingIdentifier(t *testing.T) {
	text := `2.1 Attribute orphan
` + " " + `cn: Orphan
`
	ex := &fakeExtractor{texts: map[string]string{"ada1.pdf": text}}

	store, report := buildFrom(t, ex, "ada1.pdf")

	if store.Len() != 0 {
		t.Error("block without an identifier must be skipped")
	}
	if got := report.Counts[types.AnomalySegmentation]; got != 1 {
		t.Errorf("segmentation anomalies = %d, want 1", got)
	}
}

func TestBuildStoreExtractionFailure(t *testing.T) {
	ex := &fakeExtractor{
		texts: map[string]string{"ada2.pdf": docHistory},
		errs:  map[string]error{"ada1.pdf": errors.New("document unreadable")},
	}

	store, report := buildFrom(t, ex, "ada1.pdf", "ada2.pdf")

	// The failed document is fatal for itself only.
	if store.Len() != 1 {
		t.Errorf("store has %d records, want 1 from the surviving document", store.Len())
	}
	if !report.ExtractionFailed() {
		t.Error("report should flag the extraction failure")
	}
	if len(report.Documents) != 2 || !report.Documents[0].Failed || report.Documents[1].Failed {
		t.Errorf("document reports = %+v", report.Documents)
	}
}

func TestBuildStoreRecoveredCoercion(t *testing.T) {
	text := `2.1 Attribute partial
` + " " + `ldapDisplayName: partial
` + " " + `schemaIdGuid: bf967944-0de6-11d0-a285-00aa003049e2
` + " " + `mapiID: many
`
	ex := &fakeExtractor{texts: map[string]string{"ada1.pdf": text}}

	store, report := buildFrom(t, ex, "ada1.pdf")

	if store.Len() != 1 {
		t.Fatal("record should survive a non-identifier coercion failure")
	}
	a, _ := store.LookupGUID("bf967944-0de6-11d0-a285-00aa003049e2")
	if a.MapiID != nil {
		t.Error("mapiID should be dropped")
	}
	if got := report.Counts[types.AnomalyCoercion]; got != 1 {
		t.Errorf("coercion anomalies = %d, want 1", got)
	}
}
