// Package expand substitutes ${NAME} environment placeholders in
// configuration text.
//
// Placeholders follow the shell convention: ${NAME} where NAME starts with a
// letter or underscore and continues with letters, digits, or underscores.
// Values come from an injected Environment rather than the process
// environment, keeping substitution deterministic and testable. Text is
// scanned exactly once: a substituted value is never re-scanned, so expansion
// cannot recurse. Placeholders with no value in the environment are left
// verbatim and reported as Warning diagnostics.
//
// Usage:
//
//	resolved, diags := expand.Expand(text, expand.Map{"DEBUG": "true"})
//
// The command-line front-end uses expand.OS() to wire in the real process
// environment; library callers usually pass an expand.Map.
package expand
