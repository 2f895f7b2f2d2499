package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/alnah/go-lessonmark/internal/yamlutil"
)

// indexFile names the optional file that fixes module display order.
const indexFile = "catalog.yaml"

//go:embed modules/*.yaml
var bundled embed.FS

// catalogIndex is the schema of indexFile.
type catalogIndex struct {
	Modules []string `yaml:"modules"`
}

var (
	embeddedOnce    sync.Once
	embeddedCatalog *Catalog
	embeddedErr     error
)

// Embedded returns the catalog bundled with the binary.
// It is parsed once; callers must not modify the result.
func Embedded() (*Catalog, error) {
	embeddedOnce.Do(func() {
		sub, err := fs.Sub(bundled, "modules")
		if err != nil {
			embeddedErr = err
			return
		}
		embeddedCatalog, embeddedErr = Load(sub)
	})
	return embeddedCatalog, embeddedErr
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogRead, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrCatalogRead, dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every *.yaml and *.yml module file at the root of fsys.
// Modules listed in catalog.yaml come first, in that order; the rest follow
// sorted by id.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogRead, err)
	}

	byID := make(map[string]Module)
	var ids []string

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == indexFile || !isYAML(name) {
			continue
		}

		m, err := loadModule(fsys, name)
		if err != nil {
			return nil, err
		}
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: module %q (%s)", ErrDuplicateID, m.ID, name)
		}
		byID[m.ID] = m
		ids = append(ids, m.ID)
	}

	if len(ids) == 0 {
		return nil, ErrEmptyCatalog
	}

	order, err := loadIndex(fsys)
	if err != nil {
		return nil, err
	}

	return &Catalog{Modules: orderModules(byID, ids, order)}, nil
}

func loadModule(fsys fs.FS, name string) (Module, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Module{}, fmt.Errorf("%w: %s: %v", ErrCatalogRead, name, err)
	}

	var m Module
	if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
		return Module{}, fmt.Errorf("%w: %s: %v", ErrInvalidModule, name, err)
	}
	if err := m.Validate(); err != nil {
		return Module{}, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// loadIndex returns the ids listed in catalog.yaml, or nil when it is absent.
func loadIndex(fsys fs.FS) ([]string, error) {
	data, err := fs.ReadFile(fsys, indexFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogRead, indexFile, err)
	}

	var idx catalogIndex
	if err := yamlutil.UnmarshalStrict(data, &idx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogRead, indexFile, err)
	}
	return idx.Modules, nil
}

// orderModules places indexed modules first. Index entries without a module
// file are ignored.
func orderModules(byID map[string]Module, ids, order []string) []Module {
	out := make([]Module, 0, len(ids))
	placed := make(map[string]bool, len(ids))

	for _, id := range order {
		if m, ok := byID[id]; ok && !placed[id] {
			out = append(out, m)
			placed[id] = true
		}
	}

	slices.Sort(ids)
	for _, id := range ids {
		if !placed[id] {
			out = append(out, byID[id])
		}
	}
	return out
}

func isYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
