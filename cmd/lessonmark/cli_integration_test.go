//go:build integration

package main

// Notes:
// - Runs commands against the production environment: bundled catalog,
//   real Chrome through the renderer pool, real node for check.
// - check is skipped when node is not on PATH.

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func integrationEnv(t *testing.T) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	env := DefaultEnv()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env.Stdout = stdout
	env.Stderr = stderr
	env.Stdin = strings.NewReader("")
	return env, stdout, stderr
}

// ---------------------------------------------------------------------------
// TestIntegration_Render - Bundled catalog to PDF
// ---------------------------------------------------------------------------

func TestIntegration_Render(t *testing.T) {
	env, _, stderr := integrationEnv(t)
	out := filepath.Join(t.TempDir(), "arrays.pdf")

	code := runMain(context.Background(), []string{"render", "arrays", "--pdf", "-o", out}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

// ---------------------------------------------------------------------------
// TestIntegration_Export - Every bundled module as HTML
// ---------------------------------------------------------------------------

func TestIntegration_Export(t *testing.T) {
	env, _, stderr := integrationEnv(t)
	dir := t.TempDir()

	code := runMain(context.Background(), []string{"export", "-o", dir}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 {
		t.Errorf("exported %d handouts, want 10", len(entries))
	}
}

// ---------------------------------------------------------------------------
// TestIntegration_Check - Stored solution under node
// ---------------------------------------------------------------------------

func TestIntegration_Check(t *testing.T) {
	if _, err := exec.LookPath("node"); err != nil {
		t.Skip("node not on PATH")
	}
	env, stdout, stderr := integrationEnv(t)

	code := runMain(context.Background(), []string{"check", "arrays", "1"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stdout:\n%s\nstderr:\n%s", code, stdout, stderr)
	}
	if !strings.Contains(stdout.String(), "green\n") {
		t.Errorf("stdout should contain the program output, got:\n%s", stdout)
	}
}
