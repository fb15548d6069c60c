package extract

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool
	output        string
	runErr        error
	gotName       string
	gotArgs       []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunPiped(_ context.Context, name string, args []string, stdout io.Writer) error {
	m.gotName = name
	m.gotArgs = args
	if m.runErr != nil {
		return m.runErr
	}
	_, err := io.WriteString(stdout, m.output)
	return err
}

func TestNewPdftotextExtractor(t *testing.T) {
	t.Run("binary on PATH", func(t *testing.T) {
		exec := &mockExecutor{availableBins: map[string]bool{"pdftotext": true}}
		ex, err := newPdftotextExtractor("", exec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ex.bin != "pdftotext" {
			t.Errorf("bin = %q, want default pdftotext", ex.bin)
		}
	})

	t.Run("custom binary name", func(t *testing.T) {
		exec := &mockExecutor{availableBins: map[string]bool{"pdftotext-4": true}}
		if _, err := newPdftotextExtractor("pdftotext-4", exec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("binary missing", func(t *testing.T) {
		exec := &mockExecutor{availableBins: map[string]bool{}}
		if _, err := newPdftotextExtractor("", exec); err == nil {
			t.Fatal("constructor should fail when the binary is missing")
		}
	})
}

func TestPdftotextExtract(t *testing.T) {
	t.Run("returns command output", func(t *testing.T) {
		exec := &mockExecutor{
			availableBins: map[string]bool{"pdftotext": true},
			output:        "2.1 Attribute accountExpires\n",
		}
		ex, err := newPdftotextExtractor("", exec)
		if err != nil {
			t.Fatal(err)
		}

		text, err := ex.Extract(context.Background(), "ms-ada1.pdf")
		if err != nil {
			t.Fatalf("Extract() error: %v", err)
		}
		if text != exec.output {
			t.Errorf("text = %q", text)
		}
		if exec.gotName != "pdftotext" {
			t.Errorf("ran %q, want pdftotext", exec.gotName)
		}
		want := "-nopgbrk ms-ada1.pdf -"
		if got := strings.Join(exec.gotArgs, " "); got != want {
			t.Errorf("args = %q, want %q", got, want)
		}
	})

	t.Run("command failure", func(t *testing.T) {
		exec := &mockExecutor{
			availableBins: map[string]bool{"pdftotext": true},
			runErr:        errors.New("exit status 1"),
		}
		ex, _ := newPdftotextExtractor("", exec)
		if _, err := ex.Extract(context.Background(), "ms-ada1.pdf"); err == nil {
			t.Fatal("Extract() should propagate the command failure")
		}
	})

	t.Run("empty output is an error", func(t *testing.T) {
		exec := &mockExecutor{availableBins: map[string]bool{"pdftotext": true}}
		ex, _ := newPdftotextExtractor("", exec)
		if _, err := ex.Extract(context.Background(), "ms-ada1.pdf"); err == nil {
			t.Fatal("Extract() should reject empty output")
		}
	})
}
