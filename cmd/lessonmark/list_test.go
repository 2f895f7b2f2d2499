package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-lessonmark/internal/content"
)

// ---------------------------------------------------------------------------
// TestRunList - Catalog listing
// ---------------------------------------------------------------------------

func TestRunList(t *testing.T) {
	t.Parallel()

	t.Run("all modules in catalog order", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		if err := runList(nil, env.Environment); err != nil {
			t.Fatalf("runList() error = %v", err)
		}

		lines := strings.Split(strings.TrimSpace(env.stdout.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want 2:\n%s", len(lines), env.stdout)
		}
		if !strings.HasPrefix(lines[0], "loops") || !strings.Contains(lines[0], "2 topics, 1 problems") {
			t.Errorf("first line = %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "arrays") {
			t.Errorf("second line = %q", lines[1])
		}
	})

	t.Run("one module", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		if err := runList([]string{"loops"}, env.Environment); err != nil {
			t.Fatalf("runList() error = %v", err)
		}

		out := env.stdout.String()
		for _, want := range []string{"🔁 Loops", "Repeat things.", "loops/for", "loops/while", "Count to three", "Log 1 to 3."} {
			if !strings.Contains(out, want) {
				t.Errorf("output should contain %q, got:\n%s", want, out)
			}
		}
		if strings.Contains(out, "`") {
			t.Error("descriptions should be printed without inline markers")
		}
	})

	t.Run("unknown module lists alternatives", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		err := runList([]string{"nope"}, env.Environment)
		if !errors.Is(err, content.ErrModuleNotFound) {
			t.Fatalf("error = %v, want ErrModuleNotFound", err)
		}
		if !strings.Contains(err.Error(), "loops, arrays") {
			t.Errorf("error should list modules, got %v", err)
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		if err := runList([]string{"a", "b"}, env.Environment); !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})
}
