package greina

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrNoValueTree is returned by Decode when the document halted during
// deserialization and has no value tree to decode from.
var ErrNoValueTree = errors.New("document has no value tree")

// ErrPathNotFound is returned when the decode path does not exist in the document.
var ErrPathNotFound = errors.New("path not found")

// Validator is implemented by target structs that validate themselves after
// decoding.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by target structs that fill in default values
// before validation.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Decode unmarshals a section of the document's resolved text into target.
// This is the explicit second step of the two-step contract: the pipeline
// itself only ever builds the generic value tree, and callers opt in to
// typed decoding afterwards.
//
// The path parameter selects a section using colon (:) as the separator for
// nested keys, e.g. "database:connection"; the empty path decodes the entire
// document. When target implements Defaulter or Validator, defaults are
// applied and validation runs after decoding.
func Decode[T any](doc *Document, target *T, path string) error {
	if doc == nil || doc.State != StateComplete {
		return ErrNoValueTree
	}

	data := []byte(doc.Resolved)

	if path == "" {
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}
	} else {
		if err := decodePath(data, target, path); err != nil {
			return err
		}
	}

	if defaulter, ok := any(target).(Defaulter); ok {
		if defaulter.SetDefaults() {
			slog.Debug("defaults applied", slog.String("source", doc.Source), slog.String("path", path))
		}
	}

	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}

func decodePath(data []byte, target any, path string) error {
	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "database:connection" -> "$.database.connection"
func convertToYAMLPath(path string) string {
	return "$." + strings.Join(strings.Split(path, ":"), ".")
}
