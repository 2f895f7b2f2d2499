package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/content"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Catalog, renderer, pool and runner doubles
// ---------------------------------------------------------------------------

const testModuleYAML = `id: loops
title: Loops
description: Repeat things.
icon: "🔁"
topics:
  - id: for
    title: For Loops
    theory: |-
      **Counting**
      Use ` + "`for`" + ` to count ✅
      ` + "```js" + `
      for (let i = 0; i < 3; i++) {}
      ` + "```" + `
  - id: while
    title: While Loops
    theory: |-
      - check first
      - then run
problems:
  - id: 1
    title: Count to three
    description: Log ` + "`1`" + ` to ` + "`3`" + `.
    starterCode: "// Your code here\n"
    expectedOutput: "1\n2\n3"
    hint: Use a for loop
    solution: "for (let i = 1; i <= 3; i++) console.log(i);"
`

const testOtherModuleYAML = `id: arrays
title: Arrays
topics:
  - id: creating
    title: Creating
    theory: "| A | B |\n| --- | --- |\n| 1 | 2 |"
`

func testCatalog(t *testing.T) *content.Catalog {
	t.Helper()

	c, err := content.Load(fstest.MapFS{
		"catalog.yaml": &fstest.MapFile{Data: []byte("modules:\n  - loops\n  - arrays\n")},
		"loops.yaml":   &fstest.MapFile{Data: []byte(testModuleYAML)},
		"arrays.yaml":  &fstest.MapFile{Data: []byte(testOtherModuleYAML)},
	})
	if err != nil {
		t.Fatalf("loading test catalog: %v", err)
	}
	return c
}

// mockRenderer records inputs and echoes the title into its output.
// active and peak count overlapping Render calls.
type mockRenderer struct {
	mu     sync.Mutex
	inputs []lessonmark.Input
	err    error
	active int
	peak   int
}

func (m *mockRenderer) Render(_ context.Context, in lessonmark.Input) (*lessonmark.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.active++
	m.peak = max(m.peak, m.active)
	m.mu.Unlock()

	time.Sleep(time.Millisecond)
	defer func() {
		m.mu.Lock()
		m.active--
		m.mu.Unlock()
	}()

	if m.err != nil {
		return nil, m.err
	}

	res := &lessonmark.Result{HTML: []byte("<html>" + in.Title + "</html>")}
	if !in.HTMLOnly {
		res.PDF = []byte("%PDF-1.4 " + in.Title)
	}
	for _, s := range in.Sections {
		res.Sections = append(res.Sections, lessonmark.RenderedSection{Section: s, Blocks: lessonmark.Parse(s.Passage)})
	}
	return res, nil
}

func (m *mockRenderer) titles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Title
	}
	return out
}

// mockPool hands out a single shared mockRenderer.
type mockPool struct {
	renderer   *mockRenderer
	size       int
	optCount   int
	acquireErr error
	closed     bool
}

func (p *mockPool) Acquire(ctx context.Context) (Renderer, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.renderer, nil
}

func (p *mockPool) Release(Renderer) {}
func (p *mockPool) Size() int        { return p.size }
func (p *mockPool) Close() error {
	p.closed = true
	return nil
}

// mockRunner returns a canned execution.
type mockRunner struct {
	execution *lessonmark.Execution
	err       error
	gotCode   string
}

func (r *mockRunner) Run(_ context.Context, code string) (*lessonmark.Execution, error) {
	r.gotCode = code
	return r.execution, r.err
}

// testEnv bundles an Environment with its captured output and doubles.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	pool   *mockPool
	runner *mockRunner

	runnerCommand string
	runnerTimeout time.Duration
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog := testCatalog(t)
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		pool:   &mockPool{renderer: &mockRenderer{}},
		runner: &mockRunner{execution: &lessonmark.Execution{}},
	}
	clock := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	te.Environment = &Environment{
		Now:    func() time.Time { return clock },
		Stdin:  strings.NewReader(""),
		Stdout: te.stdout,
		Stderr: te.stderr,
		LoadCatalog: func(dir string) (*content.Catalog, error) {
			if dir != "" {
				return content.LoadDir(dir)
			}
			return catalog, nil
		},
		NewPool: func(size int, opts ...lessonmark.Option) Pool {
			te.pool.size = size
			te.pool.optCount = len(opts)
			return te.pool
		},
		NewRunner: func(command string, timeout time.Duration) lessonmark.Runner {
			te.runnerCommand = command
			te.runnerTimeout = timeout
			return te.runner
		},
	}
	return te
}
