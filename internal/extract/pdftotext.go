// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(ctx context.Context, name string, args []string, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(ctx context.Context, name string, args []string, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// PdftotextExtractor extracts document text by running the pdftotext binary
// with stdout capture. It preserves the line structure of the source pages.
type PdftotextExtractor struct {
	bin  string
	exec executor
}

// NewPdftotextExtractor returns an extractor using the given binary name or
// path (empty means "pdftotext" from PATH). It verifies the binary exists
// before returning.
func NewPdftotextExtractor(bin string) (*PdftotextExtractor, error) {
	return newPdftotextExtractor(bin, defaultExec)
}

func newPdftotextExtractor(bin string, exec executor) (*PdftotextExtractor, error) {
	if bin == "" {
		bin = binPdftotext
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", bin, err)
	}
	return &PdftotextExtractor{bin: bin, exec: exec}, nil
}

// Extract runs pdftotext over the document and returns its full text.
func (p *PdftotextExtractor) Extract(ctx context.Context, path string) (string, error) {
	var out bytes.Buffer
	// -nopgbrk drops form feeds so page boundaries look like ordinary lines.
	args := []string{"-nopgbrk", path, "-"}
	if err := p.exec.RunPiped(ctx, p.bin, args, &out); err != nil {
		return "", fmt.Errorf("running %s on %s: %w", p.bin, path, err)
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("%s produced empty output for %s", p.bin, path)
	}
	return out.String(), nil
}
