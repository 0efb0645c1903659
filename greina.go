// Package greina loads YAML configuration through a fixed four-stage
// pipeline: fetch raw text from a Source, substitute ${NAME} environment
// placeholders, deserialize the result into a generic value tree, and lint
// the outcome. Findings accumulate as diagnostics on the returned Document
// instead of aborting the run; only an unreadable source or an unparseable
// document stop the pipeline early.
//
// Each Load call is a pure function of its inputs. No stage keeps state
// between calls, so concurrent loads need no coordination.
package greina

import (
	"errors"
	"fmt"

	"github.com/0xalexb/greina/diag"
	"github.com/0xalexb/greina/expand"
	"github.com/0xalexb/greina/lint"
	"github.com/0xalexb/greina/tree"
)

// ErrSourceUnavailable is returned by Load when the source cannot produce
// text at all. It is the only condition with no Document to report.
var ErrSourceUnavailable = errors.New("configuration source unavailable")

// Source produces the raw configuration text for one pipeline run.
type Source interface {
	// Name identifies the source, e.g. a file path.
	Name() string
	// Fetch returns the raw text. Any resource it acquires must be released
	// before it returns.
	Fetch() ([]byte, error)
}

// Literal returns a Source serving in-memory text, bypassing the filesystem
// entirely. The name identifies the source in diagnostics output.
//
//nolint:ireturn // Source is the contract; the backing type is an implementation detail.
func Literal(name, text string) Source {
	return literalSource{name: name, text: text}
}

type literalSource struct {
	name string
	text string
}

func (s literalSource) Name() string {
	return s.name
}

func (s literalSource) Fetch() ([]byte, error) {
	return []byte(s.text), nil
}

// State is the terminal state of a pipeline run that produced a Document.
type State int

const (
	// StateComplete means a value tree was built; diagnostics may still be present.
	StateComplete State = iota
	// StateHalted means deserialization failed; the Document has no value
	// tree but keeps the raw and resolved text for debugging.
	StateHalted
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateComplete:
		return "complete"
	case StateHalted:
		return "halted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Document is the result of one pipeline run. It is immutable once returned;
// no pipeline stage retains a reference to it.
type Document struct {
	// Source identifies where the text came from.
	Source string
	// Raw is the text as fetched, before substitution.
	Raw string
	// Resolved is the text after placeholder substitution.
	Resolved string
	// Root is the deserialized value tree, nil when State is StateHalted.
	Root *tree.Value
	// Diagnostics are the accumulated findings, in pipeline order.
	Diagnostics []diag.Diagnostic
	// State records how the run ended.
	State State
}

// HasErrors reports whether any diagnostic has Error severity. Whether that
// should reject the configuration is the caller's policy.
func (d *Document) HasErrors() bool {
	return diag.HasErrors(d.Diagnostics)
}

// Load runs the pipeline: fetch from src, substitute placeholders from env,
// deserialize, and lint with the required dot-separated key paths. A nil env
// resolves no placeholders.
//
// The only error Load returns wraps ErrSourceUnavailable; every other
// condition is reported through the Document. A parse failure yields a
// StateHalted Document that still carries the raw and resolved text plus the
// lexical lint findings.
func Load(src Source, env expand.Environment, required []string) (*Document, error) {
	data, err := src.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSourceUnavailable, src.Name(), err)
	}

	doc := &Document{
		Source: src.Name(),
		Raw:    string(data),
	}

	resolved, diags := expand.Expand(doc.Raw, env)
	doc.Resolved = resolved
	doc.Diagnostics = append(doc.Diagnostics, diags...)

	root, err := tree.Parse([]byte(doc.Resolved))
	if err != nil {
		doc.State = StateHalted
		doc.Diagnostics = append(doc.Diagnostics, parseDiagnostic(err))
		doc.Diagnostics = append(doc.Diagnostics, lint.Check(nil, doc.Raw, nil)...)

		return doc, nil
	}

	doc.Root = root
	doc.State = StateComplete
	doc.Diagnostics = append(doc.Diagnostics, lint.Check(root, doc.Raw, required)...)

	return doc, nil
}

func parseDiagnostic(err error) diag.Diagnostic {
	var perr *tree.ParseError
	if errors.As(err, &perr) {
		return diag.Errorf(diag.CategoryParseFailure, perr.Line, "%s", perr.Msg)
	}

	return diag.Errorf(diag.CategoryParseFailure, 0, "%v", err)
}
