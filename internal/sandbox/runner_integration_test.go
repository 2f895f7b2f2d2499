//go:build integration

package sandbox

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-lessonmark/internal/content"
)

func requireNode(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(DefaultCommand); err != nil {
		t.Skip("node not installed")
	}
}

func TestNodeRunner_Run_Integration(t *testing.T) {
	t.Parallel()
	requireNode(t)

	tests := []struct {
		name    string
		code    string
		output  []string
		wantErr string
	}{
		{
			name:   "formats like the tutorial console",
			code:   `console.log("a", 1, true); console.log([1, 2], {k: "v"}, null);`,
			output: []string{"a 1 true", `[1,2] {"k":"v"} null`},
		},
		{
			name:    "keeps output logged before a throw",
			code:    `console.log("before"); undefinedVariable;`,
			output:  []string{"before"},
			wantErr: "undefinedVariable is not defined",
		},
		{
			name:    "syntax error",
			code:    `let = ;`,
			output:  []string{},
			wantErr: "Unexpected token",
		},
	}

	r := NewNodeRunner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Run(context.Background(), tt.code)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if diff := cmp.Diff(tt.output, got.Output); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			switch {
			case tt.wantErr == "" && got.Err != nil:
				t.Errorf("unexpected error %q", got.Err.Message)
			case tt.wantErr != "" && (got.Err == nil || !strings.Contains(got.Err.Message, tt.wantErr)):
				t.Errorf("error = %v, want it to contain %q", got.Err, tt.wantErr)
			}
		})
	}
}

func TestNodeRunner_Timeout_Integration(t *testing.T) {
	t.Parallel()
	requireNode(t)

	r := NewNodeRunner(WithTimeout(500 * time.Millisecond))
	got, err := r.Run(context.Background(), "while (true) {}")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got.Err == nil || !got.Err.TimedOut {
		t.Errorf("expected timeout, got %+v", got)
	}
}

// TestBundledSolutions_Integration checks that every bundled solution produces its expected output.
func TestBundledSolutions_Integration(t *testing.T) {
	t.Parallel()
	requireNode(t)

	catalog, err := content.Embedded()
	if err != nil {
		t.Fatalf("Embedded() error = %v", err)
	}

	r := NewNodeRunner()
	for _, m := range catalog.Modules {
		if m.ID == "dom" {
			continue // needs a browser document
		}
		for _, p := range m.Problems {
			got, err := r.Run(context.Background(), p.Solution)
			if err != nil {
				t.Fatalf("%s/%d: Run() error = %v", m.ID, p.ID, err)
			}
			if !got.Passed(p.ExpectedOutput) {
				t.Errorf("%s/%d: output %q, want %q (err %v)", m.ID, p.ID, got.Output, p.ExpectedOutput, got.Err)
			}
		}
	}
}
