package content

// Notes:
// - Load is tested against fstest.MapFS so no disk access is needed
// - The bundled catalog is checked for order and for lookups used by the CLI

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

const arraysYAML = `id: arrays
title: Arrays
description: Lists of values.
icon: "📚"
topics:
  - id: creating
    title: Creating
    theory: |-
      **Literals**
      Use ` + "`[]`" + `
problems:
  - id: 1
    title: Second element
    description: Log the second element.
    starterCode: "// Your code here\n"
    expectedOutput: green
    hint: 0-indexed
    solution: 'console.log(["red", "green"][1]);'
`

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

// ---------------------------------------------------------------------------
// TestLoad - Module files
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("parses module fields", func(t *testing.T) {
		t.Parallel()

		c, err := Load(mapFS(map[string]string{"arrays.yaml": arraysYAML}))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(c.Modules) != 1 {
			t.Fatalf("got %d modules, want 1", len(c.Modules))
		}

		m := c.Modules[0]
		if m.ID != "arrays" || m.Icon != "📚" || len(m.Topics) != 1 || len(m.Problems) != 1 {
			t.Errorf("unexpected module: %+v", m)
		}
		if m.Topics[0].Theory != "**Literals**\nUse `[]`" {
			t.Errorf("Theory = %q", m.Topics[0].Theory)
		}
		if p := m.Problems[0]; p.StarterCode != "// Your code here\n" || p.ExpectedOutput != "green" {
			t.Errorf("unexpected problem: %+v", p)
		}
	})

	t.Run("orders by index then id", func(t *testing.T) {
		t.Parallel()

		c, err := Load(mapFS(map[string]string{
			"a.yaml":       "id: a\ntitle: A\n",
			"b.yml":        "id: b\ntitle: B\n",
			"c.yaml":       "id: c\ntitle: C\n",
			"notes.txt":    "ignored",
			"catalog.yaml": "modules: [c, missing, a]\n",
		}))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		var got []string
		for _, m := range c.Modules {
			got = append(got, m.ID)
		}
		if want := "c,a,b"; strings.Join(got, ",") != want {
			t.Errorf("order = %v, want %s", got, want)
		}
	})

	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name:    "empty directory",
			files:   map[string]string{},
			wantErr: ErrEmptyCatalog,
		},
		{
			name:    "unknown field",
			files:   map[string]string{"a.yaml": "id: a\ntitle: A\ncolour: red\n"},
			wantErr: ErrInvalidModule,
		},
		{
			name:    "missing title",
			files:   map[string]string{"a.yaml": "id: a\n"},
			wantErr: ErrInvalidModule,
		},
		{
			name: "duplicate module id",
			files: map[string]string{
				"a.yaml": "id: same\ntitle: A\n",
				"b.yaml": "id: same\ntitle: B\n",
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "duplicate topic id",
			files: map[string]string{"a.yaml": `id: a
title: A
topics:
  - {id: t, title: One}
  - {id: t, title: Two}
`},
			wantErr: ErrDuplicateID,
		},
		{
			name: "bad index",
			files: map[string]string{
				"a.yaml":       "id: a\ntitle: A\n",
				"catalog.yaml": "order: [a]\n",
			},
			wantErr: ErrCatalogRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(mapFS(tt.files))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadDir - Catalog on disk
// ---------------------------------------------------------------------------

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "arrays.yaml"), []byte(arraysYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if _, err := c.Module("arrays"); err != nil {
		t.Errorf("Module() error = %v", err)
	}

	if _, err := LoadDir(filepath.Join(dir, "arrays.yaml")); !errors.Is(err, ErrCatalogRead) {
		t.Errorf("LoadDir(file) error = %v, want ErrCatalogRead", err)
	}
	if _, err := LoadDir(filepath.Join(dir, "missing")); !errors.Is(err, ErrCatalogRead) {
		t.Errorf("LoadDir(missing) error = %v, want ErrCatalogRead", err)
	}
}

// ---------------------------------------------------------------------------
// TestEmbedded - Bundled catalog
// ---------------------------------------------------------------------------

func TestEmbedded(t *testing.T) {
	t.Parallel()

	c, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error = %v", err)
	}
	if len(c.Modules) != 10 {
		t.Fatalf("got %d modules, want 10", len(c.Modules))
	}
	ids := c.IDs()
	if ids[0] != "variables" || ids[9] != "dom" {
		t.Errorf("first/last = %q/%q, want variables/dom", ids[0], ids[9])
	}

	for _, m := range c.Modules {
		if len(m.Topics) == 0 || len(m.Problems) == 0 {
			t.Errorf("module %q should have topics and problems", m.ID)
		}
	}

	arrays, err := c.Module("arrays")
	if err != nil {
		t.Fatalf("Module() error = %v", err)
	}
	p, err := arrays.Problem(3)
	if err != nil {
		t.Fatalf("Problem() error = %v", err)
	}
	if p.ExpectedOutput != "2,4,6,8,10" {
		t.Errorf("ExpectedOutput = %q", p.ExpectedOutput)
	}
}

// ---------------------------------------------------------------------------
// TestLookups - Not-found errors
// ---------------------------------------------------------------------------

func TestLookups(t *testing.T) {
	t.Parallel()

	c, err := Load(mapFS(map[string]string{"arrays.yaml": arraysYAML}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := c.Module("nope"); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("Module() error = %v, want ErrModuleNotFound", err)
	}

	m := &c.Modules[0]
	if got := m.TopicIDs(); len(got) == 0 || got[0] != "creating" {
		t.Errorf("TopicIDs() = %v, want creating first", got)
	}
	if _, err := m.Topic("creating"); err != nil {
		t.Errorf("Topic() error = %v", err)
	}
	if _, err := m.Topic("nope"); !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("Topic() error = %v, want ErrTopicNotFound", err)
	}
	if _, err := m.Problem(42); !errors.Is(err, ErrProblemNotFound) {
		t.Errorf("Problem() error = %v, want ErrProblemNotFound", err)
	}

	tests := []struct {
		ref     string
		wantErr bool
	}{
		{"1", false},
		{"2", true},
		{"x", true},
	}
	for _, tt := range tests {
		_, err := m.ProblemByRef(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("ProblemByRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrProblemNotFound) {
			t.Errorf("ProblemByRef(%q) error should wrap ErrProblemNotFound", tt.ref)
		}
	}
}
