// Package diag defines the diagnostic records produced while loading and
// linting configuration documents.
//
// A Diagnostic is an immutable finding: a severity, a category, an optional
// line number, and a human-readable message. The loading pipeline accumulates
// diagnostics instead of failing on the first problem, so a single run
// reports everything it found. Callers decide what severity is acceptable;
// the pipeline itself never applies policy.
//
// Usage:
//
//	d := diag.Errorf(diag.CategoryTabCharacter, 3, "tab character in indentation")
//	if diag.HasErrors(doc.Diagnostics) {
//	    // reject the configuration
//	}
package diag
