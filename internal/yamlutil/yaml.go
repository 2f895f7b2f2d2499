// Package yamlutil wraps YAML parsing so config and lesson content share
// one size cap and one strictness policy.
package yamlutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// indent is the block indentation used when encoding.
const indent = 2

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNilWriter      = errors.New("yamlutil: nil writer")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
// Config files and lesson modules are both decoded this way so a typo in a key
// fails loudly instead of silently dropping content.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v with literal blocks for multi-line strings.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v, options()...)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// Encode writes v to w as a YAML document.
func Encode(w io.Writer, v any) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := yaml.NewEncoder(w, options()...).Encode(v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func options() []yaml.EncodeOption {
	return []yaml.EncodeOption{
		yaml.Indent(indent),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	}
}
