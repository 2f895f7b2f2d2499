package assets

import "errors"

var (
	// ErrStyleNotFound means no loader has a style by that name.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName rejects names that could address a file other than
	// a style, such as ones with separators, dots or NUL bytes.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath is returned for an --asset-path that is not a directory.
	ErrInvalidBasePath = errors.New("invalid asset directory")

	ErrAssetRead = errors.New("reading style")

	// ErrPathTraversal rejects a style file linked to outside styles/.
	ErrPathTraversal = errors.New("style path escapes asset directory")
)
