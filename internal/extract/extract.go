// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract obtains plain text from schema reference documents.
// Page-level text extraction itself is an external concern: the production
// backend shells out to pdftotext, and tests substitute a fake.
package extract

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// TextExtractor returns the full text of one document with line breaks
// preserved. Different backends (pdftotext, test fakes) implement this.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// DocumentText pairs a document path with its extracted text or failure.
// A failure is fatal for that document only; the batch continues.
type DocumentText struct {
	Path string
	Text string
	Err  error
}

// ExtractAll runs the extractor over every document concurrently and
// returns results indexed by the declared document order, regardless of
// completion order. Downstream merging depends on that order staying fixed.
func ExtractAll(ctx context.Context, ex TextExtractor, paths []string) []DocumentText {
	results := make([]DocumentText, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			text, err := ex.Extract(gctx, path)
			results[i] = DocumentText{Path: path, Text: text, Err: err}
			return nil
		})
	}
	// Per-document errors travel in the results; the group never fails.
	_ = g.Wait()

	return results
}
