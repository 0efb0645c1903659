package greina

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/greina/logging"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrInvalidDocument is returned by a WithFailOnError module when the loaded
// document halted or contains Error-severity diagnostics.
var ErrInvalidDocument = errors.New("document contains error diagnostics")

// NewModule creates an Fx module that loads a configuration document from
// src at container start and supplies it to the graph under the given name
// as the DI named tag. Diagnostics are logged through slog as they are
// found; with WithFailOnError the module turns Error-severity findings into
// a startup failure.
//
// Call multiple times with different names to load multiple documents.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, src Source, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return fx.Module(name, fx.Provide(
		fx.Annotate(
			func() (*Document, error) {
				doc, err := Load(src, options.Env, options.Required)
				if err != nil {
					return nil, fmt.Errorf("loading module %q: %w", name, err)
				}

				for _, d := range doc.Diagnostics {
					logging.Emit(slog.Default(), doc.Source, d)
				}

				if options.FailOnError && (doc.State == StateHalted || doc.HasErrors()) {
					return nil, fmt.Errorf("module %q: %w", name, ErrInvalidDocument)
				}

				return doc, nil
			},
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))
}
