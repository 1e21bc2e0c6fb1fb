package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/tabsum/internal/tabs"
)

// executeRoot runs the command in isolation from the user's config file and
// TABSUM_* environment.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{
		"TABSUM_FILE", "TABSUM_SAMPLE_SIZE", "TABSUM_SEED", "TABSUM_PREVIEW_ROWS",
		"TABSUM_NO_PREVIEW", "TABSUM_WATCH", "TABSUM_DEBOUNCE", "TABSUM_LOG_LEVEL", "TABSUM_LOG_FILE",
	} {
		t.Setenv(k, "")
	}

	var out bytes.Buffer
	cmd := newRootCommand(&out)
	args = append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_MissingFileIsNotFatal(t *testing.T) {
	out, err := executeRoot(t, "--file", filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Errorf("Execute() error = %v, want nil for an absent table", err)
	}
	if out != "" {
		t.Errorf("output = %q, want no summaries", out)
	}
}

func TestRoot_UnreadableFileIsNotFatal(t *testing.T) {
	out, err := executeRoot(t, "--file", t.TempDir())
	if err != nil {
		t.Errorf("Execute() error = %v, want nil for an absent table", err)
	}
	if out != "" {
		t.Errorf("output = %q, want no summaries", out)
	}
}

func TestRoot_PrintsSummaries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.txt")
	content := "1|1|a.com|Title A|?x=1|news\n2|1|b.com|Title B|?x=2|news\n3|2|c.com||?x=3|shopping\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write mapping: %v", err)
	}

	out, err := executeRoot(t, "--file", path, "--no-preview")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"news: 2 tabs", "    - No title | c.com", "TOTAL: 3 tabs across 2 categories"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRoot_ConfigErrorsAreFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.txt")
	if err := os.WriteFile(path, []byte("1|1|a.com|A|?|news\n"), 0644); err != nil {
		t.Fatalf("Failed to write mapping: %v", err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing file flag", args: nil},
		{name: "zero sample size", args: []string{"--file", path, "--sample-size", "0"}},
		{name: "zero preview rows", args: []string{"--file", path, "--preview-rows", "0"}},
		{name: "unknown log level", args: []string{"--file", path, "--log-level", "loud"}},
		{name: "positional argument", args: []string{"--file", path, "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeRoot(t, tt.args...); err == nil {
				t.Error("Execute() expected error but got nil")
			}
		})
	}
}

func TestAbsentTableOK(t *testing.T) {
	other := errors.New("printer broke")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "not found", err: fmt.Errorf("read: %w", tabs.ErrFileNotFound), want: nil},
		{name: "unreadable", err: fmt.Errorf("read: %w", tabs.ErrUnreadable), want: nil},
		{name: "other error", err: other, want: other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := absentTableOK(tt.err); !errors.Is(got, tt.want) || (got == nil) != (tt.want == nil) {
				t.Errorf("absentTableOK() = %v, want %v", got, tt.want)
			}
		})
	}
}
