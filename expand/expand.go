package expand

import (
	"os"
	"regexp"
	"strings"

	"github.com/0xalexb/greina/diag"
)

// Environment supplies values for placeholder names. Implementations must be
// read-only: Expand never mutates the environment it is given.
type Environment interface {
	Lookup(name string) (value string, ok bool)
}

// Map is an in-memory Environment backed by a plain map.
type Map map[string]string

// Lookup returns the value for name and whether it is present.
func (m Map) Lookup(name string) (string, bool) {
	value, ok := m[name]

	return value, ok
}

// OS returns an Environment backed by the process environment variables.
//
//nolint:ireturn // Environment is the contract; the backing type is an implementation detail.
func OS() Environment {
	return osEnvironment{}
}

type osEnvironment struct{}

func (osEnvironment) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Overlay returns an Environment that consults overrides before base.
// A nil base behaves as an empty environment.
//
//nolint:ireturn // Environment is the contract; the backing type is an implementation detail.
func Overlay(base Environment, overrides Map) Environment {
	return overlay{base: base, overrides: overrides}
}

type overlay struct {
	base      Environment
	overrides Map
}

func (o overlay) Lookup(name string) (string, bool) {
	if value, ok := o.overrides.Lookup(name); ok {
		return value, true
	}

	if o.base == nil {
		return "", false
	}

	return o.base.Lookup(name)
}

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Expand replaces every ${NAME} placeholder in text with its value from env.
// Placeholders whose name is absent from env stay verbatim in the output and
// produce one Warning diagnostic each, carrying the placeholder's line
// number. A nil env resolves nothing. Expand is idempotent on text that
// contains no unresolved placeholders.
func Expand(text string, env Environment) (string, []diag.Diagnostic) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var (
		builder strings.Builder
		diags   []diag.Diagnostic
	)

	builder.Grow(len(text))

	last := 0

	for _, match := range matches {
		start, end := match[0], match[1]
		name := text[match[2]:match[3]]

		builder.WriteString(text[last:start])

		var (
			value string
			ok    bool
		)

		if env != nil {
			value, ok = env.Lookup(name)
		}

		if ok {
			builder.WriteString(value)
		} else {
			builder.WriteString(text[start:end])
			diags = append(diags, diag.Warnf(
				diag.CategoryUnresolvedVariable,
				lineAt(text, start),
				"undefined variable %q", name,
			))
		}

		last = end
	}

	builder.WriteString(text[last:])

	return builder.String(), diags
}

// lineAt returns the 1-based line number of the byte offset in text.
func lineAt(text string, offset int) int {
	return 1 + strings.Count(text[:offset], "\n")
}
