package content

import "errors"

// Sentinel errors for catalog loading and lookup.
var (
	ErrModuleNotFound  = errors.New("module not found")
	ErrTopicNotFound   = errors.New("topic not found")
	ErrProblemNotFound = errors.New("problem not found")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrInvalidModule   = errors.New("invalid module")
	ErrEmptyCatalog    = errors.New("catalog has no modules")
	ErrCatalogRead     = errors.New("failed to read catalog")
)
