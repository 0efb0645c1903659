// Package lint runs structural and lexical checks over a loaded
// configuration document.
//
// The checks are independent and non-short-circuiting: a single pass reports
// every issue found. Tree checks (required key paths, empty values) need a
// deserialized value tree; lexical checks (leading tabs, quote balance,
// indentation parity) run over the raw text and work even when parsing
// failed. Check never fails — it only accumulates diagnostics, leaving the
// accept-or-reject policy to the caller.
package lint
