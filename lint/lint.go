package lint

import (
	"strconv"
	"strings"

	"github.com/0xalexb/greina/diag"
	"github.com/0xalexb/greina/tree"
)

// Check runs every check and returns the accumulated diagnostics. A nil root
// skips the tree checks and runs only the lexical ones over raw, which is
// what the pipeline does after a parse failure. The required paths are
// dot-separated mapping keys that must resolve to a non-null value.
func Check(root *tree.Value, raw string, required []string) []diag.Diagnostic {
	var diags []diag.Diagnostic

	if root != nil {
		diags = append(diags, requiredKeys(root, required)...)
		diags = append(diags, emptyValues(root)...)
	}

	diags = append(diags, tabIndentation(raw)...)
	diags = append(diags, quoteBalance(raw)...)
	diags = append(diags, indentationParity(raw)...)

	return diags
}

// requiredKeys checks that every dot-separated path resolves to a non-null
// value.
func requiredKeys(root *tree.Value, required []string) []diag.Diagnostic {
	var diags []diag.Diagnostic

	for _, path := range required {
		value, ok := root.Lookup(strings.Split(path, ".")...)

		switch {
		case !ok:
			diags = append(diags, diag.Errorf(
				diag.CategoryMissingRequiredKey, 0,
				"required key %q is missing", path,
			))
		case value.IsNull():
			diags = append(diags, diag.Errorf(
				diag.CategoryMissingRequiredKey, value.Line(),
				"required key %q is null", path,
			))
		}
	}

	return diags
}

// emptyValues walks the tree and warns about mapping entries whose value is
// null or an empty string. Sequence elements appear in paths as numeric
// segments.
func emptyValues(root *tree.Value) []diag.Diagnostic {
	var diags []diag.Diagnostic

	var walk func(v *tree.Value, path []string)

	walk = func(v *tree.Value, path []string) {
		switch v.Kind() {
		case tree.KindMapping:
			for _, entry := range v.Entries() {
				entryPath := append(path, entry.Key) //nolint:gocritic // each entry gets its own path

				if entry.Value.IsNull() || (entry.Value.Kind() == tree.KindString && entry.Value.Text() == "") {
					diags = append(diags, diag.Warnf(
						diag.CategoryEmptyValue, entry.Line,
						"key %q has an empty value", strings.Join(entryPath, "."),
					))
				}

				walk(entry.Value, entryPath)
			}
		case tree.KindSequence:
			for i := 0; i < v.Len(); i++ {
				walk(v.Index(i), append(path, strconv.Itoa(i))) //nolint:gocritic // each element gets its own path
			}
		default:
		}
	}

	walk(root, nil)

	return diags
}

// tabIndentation flags every line that has a tab character before its first
// non-whitespace character. Tabs in structural whitespace are ambiguous and
// must be rejected outright.
func tabIndentation(raw string) []diag.Diagnostic {
	var diags []diag.Diagnostic

	for i, line := range strings.Split(raw, "\n") {
		prefix := leadingWhitespace(line)
		if strings.ContainsRune(prefix, '\t') {
			diags = append(diags, diag.Errorf(
				diag.CategoryTabCharacter, i+1,
				"tab character in indentation",
			))
		}
	}

	return diags
}

// quoteBalance warns about lines with an odd number of unescaped single or
// double quotes. It is a per-line heuristic: multi-line quoted scalars are
// legal YAML, so this stays a warning.
func quoteBalance(raw string) []diag.Diagnostic {
	var diags []diag.Diagnostic

	for i, line := range strings.Split(raw, "\n") {
		single, double := countQuotes(line)

		if single%2 == 1 || double%2 == 1 {
			diags = append(diags, diag.Warnf(
				diag.CategoryUnbalancedQuote, i+1,
				"odd number of %s on line", oddQuoteName(single, double),
			))
		}
	}

	return diags
}

func countQuotes(line string) (single, double int) {
	escaped := false

	for _, r := range line {
		if escaped {
			escaped = false

			continue
		}

		switch r {
		case '\\':
			escaped = true
		case '\'':
			single++
		case '"':
			double++
		}
	}

	return single, double
}

func oddQuoteName(single, double int) string {
	switch {
	case single%2 == 1 && double%2 == 1:
		return "single and double quotes"
	case single%2 == 1:
		return "single quotes"
	default:
		return "double quotes"
	}
}

// indentationParity warns once when both even and odd leading-space widths
// appear across non-comment, non-blank lines. A mix is a heuristic signal of
// inconsistent formatting conventions, not a parse problem.
func indentationParity(raw string) []diag.Diagnostic {
	var even, odd bool

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if (len(line)-len(trimmed))%2 == 0 {
			even = true
		} else {
			odd = true
		}
	}

	if even && odd {
		return []diag.Diagnostic{diag.Warnf(
			diag.CategoryInconsistentIndentation, 0,
			"both even and odd indentation widths are used",
		)}
	}

	return nil
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
