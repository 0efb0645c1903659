// Package tree safely deserializes YAML text into a generic value tree.
//
// The tree covers exactly the null/bool/int/float/string/sequence/mapping
// grammar. Parsing never instantiates caller-defined types and rejects every
// construct that could: explicit tags, merge keys, and complex mapping keys
// all fail with a ParseError. Plain anchors and aliases are expanded by deep
// copy while the tree is built, so the result never shares nodes.
//
// Mappings preserve document order, and a duplicate key within one mapping is
// a hard ParseError rather than a silent overwrite. Every value carries the
// line it came from, which the lint checks use for diagnostics.
//
// Usage:
//
//	root, err := tree.Parse(data)
//	if err != nil {
//	    var perr *tree.ParseError
//	    if errors.As(err, &perr) {
//	        // perr.Line, perr.Duplicate
//	    }
//	}
//	host, ok := root.Lookup("database", "host")
package tree
