// Command greina lints YAML configuration files: it substitutes environment
// placeholders, parses safely, runs the structural checks, and reports every
// finding. Exit code 0 means clean, 1 means diagnostics failed the chosen
// policy, 2 means a file could not be read or the invocation was invalid.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	greina "github.com/0xalexb/greina"
	"github.com/0xalexb/greina/expand"
	"github.com/0xalexb/greina/fetcher/file"
	"github.com/0xalexb/greina/logging"

	"github.com/spf13/pflag"
)

const (
	exitClean       = 0
	exitDiagnostics = 1
	exitUsage       = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	flags := pflag.NewFlagSet("greina", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	required := flags.StringArray("require", nil, "dot-separated key path that must be present and non-null (repeatable)")
	envPairs := flags.StringArray("env", nil, "KEY=VALUE override applied on top of the process environment (repeatable)")
	strict := flags.Bool("strict", false, "treat warnings as failures")
	logLevel := flags.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flags.String("log-format", logging.FormatText, "log output format: text or json")
	showVersion := flags.Bool("version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitClean
		}

		return exitUsage
	}

	if *showVersion {
		fmt.Fprintf(stderr, "greina %s (compiled %s)\n", greina.Version, greina.CompiledAt)

		return exitClean
	}

	paths := flags.Args()
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "usage: greina [flags] file...")
		flags.PrintDefaults()

		return exitUsage
	}

	overrides, err := parseEnvPairs(*envPairs)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return exitUsage
	}

	logger := logging.New(logging.Config{Level: *logLevel, Format: *logFormat}, stderr)
	env := expand.Overlay(expand.OS(), overrides)

	exit := exitClean

	for _, path := range paths {
		doc, err := greina.Load(file.New(path), env, *required)
		if err != nil {
			logger.Error("load failed", "source", path, "error", err)

			return exitUsage
		}

		for _, d := range doc.Diagnostics {
			logging.Emit(logger, doc.Source, d)
		}

		if doc.State == greina.StateHalted || doc.HasErrors() {
			exit = exitDiagnostics
		}

		if *strict && len(doc.Diagnostics) > 0 {
			exit = exitDiagnostics
		}
	}

	return exit
}

func parseEnvPairs(pairs []string) (expand.Map, error) {
	overrides := make(expand.Map, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --env value %q, expected KEY=VALUE", pair)
		}

		overrides[key] = value
	}

	return overrides, nil
}
