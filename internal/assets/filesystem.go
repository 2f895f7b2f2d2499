package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// stylesSubdir holds custom styles under an asset directory.
const stylesSubdir = "styles"

// FilesystemLoader reads custom styles from <dir>/styles/<name>.css.
type FilesystemLoader struct {
	stylesDir string // absolute, symlinks resolved
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)

// NewFilesystemLoader returns a loader rooted at dir, which must be an
// existing directory. A missing styles/ subdirectory is not an error: every
// lookup then falls through as ErrStyleNotFound.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := realPath(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, root)
	}

	return &FilesystemLoader{stylesDir: filepath.Join(root, stylesSubdir)}, nil
}

// LoadStyle returns the CSS of the named style.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	file, err := f.stylePath(name)
	if err != nil {
		return "", err
	}

	css, err := os.ReadFile(file) // #nosec G304 -- confined to stylesDir by stylePath
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(css), nil
}

// stylePath locates a style file and rejects one that resolves, through a
// symlink, to somewhere outside the styles directory.
func (f *FilesystemLoader) stylePath(name string) (string, error) {
	file := filepath.Join(f.stylesDir, name+".css")

	resolved, err := filepath.EvalSymlinks(file)
	if err != nil {
		// Missing files keep their joined path and fail on read.
		return file, nil
	}
	dir, err := realPath(f.stylesDir)
	if err != nil {
		return file, nil
	}
	if !strings.HasPrefix(resolved, dir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: style %q leaves %s", ErrPathTraversal, name, f.stylesDir)
	}
	return resolved, nil
}

// realPath returns the absolute form of p with symlinks resolved when possible.
func realPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
