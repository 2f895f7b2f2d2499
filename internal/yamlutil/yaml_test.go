package yamlutil_test

// Notes:
// - The Marshal and Encode error branches from the library are not tested:
//   goccy/go-yaml only fails on unmarshalable types (channels, functions),
//   which nothing in this module encodes.
// - TestInputSizeLimit modifies MaxInputSize and cannot run in parallel.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-lessonmark/internal/yamlutil"
)

type testTopic struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Theory string `yaml:"theory"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		want    testTopic
	}{
		{
			name: "literal block keeps newlines",
			data: []byte("id: creating\ntitle: Creating Arrays\ntheory: |\n  **Array Literals**\n  ```js\n  let a = [];\n  ```\n"),
			dest: &testTopic{},
			want: testTopic{ID: "creating", Title: "Creating Arrays", Theory: "**Array Literals**\n```js\nlet a = [];\n```\n"},
		},
		{
			name: "unknown fields ignored",
			data: []byte("id: x\nextra: 1"),
			dest: &testTopic{},
			want: testTopic{ID: "x"},
		},
		{
			name: "emoji content",
			data: []byte("title: \"✅ Done ⚡\""),
			dest: &testTopic{},
			want: testTopic{Title: "✅ Done ⚡"},
		},
		{name: "nil data", data: nil, dest: &testTopic{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testTopic{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("id: x"), dest: nil, wantErr: yamlutil.ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if got := *tt.dest.(*testTopic); got != tt.want {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshal_SyntaxError(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("id: [unclosed"), &testTopic{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want prefix 'yamlutil:'", err)
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown fields are rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields", func(t *testing.T) {
		t.Parallel()

		var got testTopic
		if err := yamlutil.UnmarshalStrict([]byte("id: loops\ntitle: Loops"), &got); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if got.ID != "loops" || got.Title != "Loops" {
			t.Errorf("UnmarshalStrict() = %+v", got)
		}
	})

	t.Run("misspelled key", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("id: loops\nthoery: x"), &testTopic{})
		if err == nil || !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("UnmarshalStrict() error = %v, want yamlutil error", err)
		}
	})

	t.Run("validation runs first", func(t *testing.T) {
		t.Parallel()

		if err := yamlutil.UnmarshalStrict(nil, &testTopic{}); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("UnmarshalStrict() error = %v, want ErrNilData", err)
		}
		if err := yamlutil.UnmarshalStrict([]byte("id: x"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("UnmarshalStrict() error = %v, want ErrNilDestination", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMarshal - Multi-line strings use literal style
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := testTopic{ID: "loops", Title: "Loops", Theory: "line one\nline two\n"}

	data, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "id: loops") {
		t.Errorf("output missing 'id: loops', got:\n%s", s)
	}
	if !strings.Contains(s, "theory: |") {
		t.Errorf("multi-line string should use literal style, got:\n%s", s)
	}

	var back testTopic
	if err := yamlutil.UnmarshalStrict(data, &back); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if back != in {
		t.Errorf("decoded = %+v, want %+v", back, in)
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Streaming output
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("sequence of mappings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := yamlutil.Encode(&buf, []testTopic{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}})
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		for _, want := range []string{"- id: a", "- id: b", "title: B"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("Encode() output should contain %q, got:\n%s", want, buf.String())
			}
		}
	})

	t.Run("nil writer", func(t *testing.T) {
		t.Parallel()

		if err := yamlutil.Encode(nil, testTopic{}); !errors.Is(err, yamlutil.ErrNilWriter) {
			t.Errorf("Encode() error = %v, want ErrNilWriter", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize enforcement
// ---------------------------------------------------------------------------

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 100

	atLimit := make([]byte, 100)
	copy(atLimit, "id: x")
	// Trailing NUL bytes are not valid YAML for every decoder, so only the
	// size check is asserted here.
	if err := yamlutil.Unmarshal(atLimit, &testTopic{}); errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("input at limit rejected: %v", err)
	}

	over := make([]byte, 101)
	for _, fn := range []func([]byte, any) error{yamlutil.Unmarshal, yamlutil.UnmarshalStrict} {
		err := fn(over, &testTopic{})
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
		if err != nil && !strings.Contains(err.Error(), "101 bytes (max 100)") {
			t.Errorf("error should include sizes, got: %v", err)
		}
	}
}
