package greina

import "github.com/0xalexb/greina/expand"

// Options holds settings applied when loading a document through the Fx module.
type Options struct {
	Env         expand.Environment
	Required    []string
	FailOnError bool
}

// Option defines a function type for applying module options.
type Option func(*Options)

// WithEnvironment sets the environment mapping used for placeholder
// substitution. Without it no placeholders resolve.
func WithEnvironment(env expand.Environment) Option {
	return func(opts *Options) {
		opts.Env = env
	}
}

// WithRequired adds dot-separated key paths that must resolve to non-null
// values. Call multiple times to accumulate paths.
func WithRequired(paths ...string) Option {
	return func(opts *Options) {
		opts.Required = append(opts.Required, paths...)
	}
}

// WithFailOnError makes the module fail container startup when the document
// halted or carries any Error-severity diagnostic. Without it the document is
// supplied as-is and the consumer applies its own policy.
func WithFailOnError() Option {
	return func(opts *Options) {
		opts.FailOnError = true
	}
}
