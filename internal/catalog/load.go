package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://tensequiz/wordlist.json"

// wordListSchema describes a word list file: a non-empty array of entries.
var wordListSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "integer", "minimum": 1},
			"present":     map[string]any{"type": "string", "minLength": 1},
			"past":        map[string]any{"type": "string", "minLength": 1},
			"translation": map[string]any{"type": "string"},
		},
		"required":             []any{"id", "present", "past", "translation"},
		"additionalProperties": false,
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ValidationError reports a word list that failed schema or semantic checks.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid word list %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// LoadFile reads a JSON word list from path and validates it.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read word list: %w", err)
	}
	return Parse(path, data)
}

// Parse validates raw JSON against the word list schema and decodes it.
// name is only used in error messages.
func Parse(name string, data []byte) (Catalog, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Catalog{}, &ValidationError{Path: name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := getSchema()
	if err != nil {
		return Catalog{}, fmt.Errorf("compile word list schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return Catalog{}, &ValidationError{Path: name, Err: err}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return Catalog{}, &ValidationError{Path: name, Err: err}
	}
	if len(entries) == 0 {
		return Catalog{}, &ValidationError{Path: name, Err: ErrEmpty}
	}

	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			return Catalog{}, &ValidationError{Path: name, Err: fmt.Errorf("duplicate id %d", e.ID)}
		}
		seen[e.ID] = true
	}

	return New(entries), nil
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the Go map.
		raw, err := json.Marshal(wordListSchema)
		if err != nil {
			compileErr = err
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
