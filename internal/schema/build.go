// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/adschema/internal/extract"
	"github.com/pdiddy/adschema/internal/parse"
	"github.com/pdiddy/adschema/pkg/types"
)

// BuildStore ingests the documents into a fresh store. Text extraction runs
// concurrently across documents, but merging follows the declared argument
// order so conflict outcomes never depend on completion order.
//
// All non-fatal issues accumulate in the returned report; the store always
// comes back usable, possibly with fewer documents than requested.
func BuildStore(ctx context.Context, ex extract.TextExtractor, docs []string, w io.Writer) (*Store, *types.BuildReport) {
	store := NewStore()
	report := types.NewBuildReport()

	for _, dt := range extract.ExtractAll(ctx, ex, docs) {
		name := filepath.Base(dt.Path)

		if dt.Err != nil {
			report.Record(types.Anomaly{
				Kind:     types.AnomalyExtraction,
				Document: name,
				Detail:   dt.Err.Error(),
			})
			report.AddDocument(types.DocumentReport{Document: name, Failed: true})
			fmt.Fprintf(w, "failed  %s: %v\n", name, dt.Err)
			continue
		}

		dr := mergeDocument(store, report, name, dt.Text)
		report.AddDocument(dr)
		fmt.Fprintf(w, "parsed  %s (%d blocks, %d attributes)\n", name, dr.Blocks, dr.Stored)
	}

	fmt.Fprintf(w, "\n%d attributes, %d anomalies\n", store.Len(), report.TotalAnomalies())
	return store, report
}

// mergeDocument segments one document's text, assembles its blocks, and
// merges the records into the store.
func mergeDocument(store *Store, report *types.BuildReport, doc, text string) types.DocumentReport {
	blocks := parse.Segment(text)
	dr := types.DocumentReport{Document: doc, Blocks: len(blocks)}

	for _, b := range blocks {
		res, err := parse.Assemble(b)
		if err != nil {
			// A malformed identifier is a coercion failure; a missing one
			// means the block never resolved to a record at all.
			kind := types.AnomalySegmentation
			var ce *parse.CoercionError
			if errors.As(err, &ce) {
				kind = types.AnomalyCoercion
			}
			report.Record(types.Anomaly{
				Kind:     kind,
				Document: doc,
				Detail:   err.Error(),
			})
			continue
		}

		for _, warn := range res.Warnings {
			report.Record(types.Anomaly{
				Kind:     types.AnomalyCoercion,
				Document: doc,
				GUID:     warn.GUID,
				Field:    warn.Field,
				Detail:   warn.Error(),
			})
		}

		mergeAttribute(store, report, doc, res.Attribute)
		dr.Stored++
	}

	return dr
}

// mergeAttribute unions attr into the store. The first document to produce
// an identifier establishes the record; later documents union in missing
// fields, and on divergent values the later document wins with a recorded
// conflict. Identical values merge silently, which makes re-ingesting the
// same document a no-op.
func mergeAttribute(store *Store, report *types.BuildReport, doc string, attr types.Attribute) {
	existing, ok := store.index[attr.SchemaIDGUID]
	if !ok {
		store.insert(&attr)
		return
	}

	for _, name := range types.FieldNames {
		if name == types.FieldSchemaIDGUID {
			continue
		}
		v, present := attr.Field(name)
		if !present {
			continue
		}
		if old, had := existing.Field(name); had && !old.Equal(v) {
			report.Record(types.Anomaly{
				Kind:     types.AnomalyMergeConflict,
				Document: doc,
				GUID:     attr.SchemaIDGUID,
				Field:    name,
				Detail:   fmt.Sprintf("%q replaces %q", v.Text(), old.Text()),
			})
		}
		existing.SetField(name, v)
	}
}
