package tree

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// ParseError reports why no value tree could be built.
type ParseError struct {
	// Line is 1-based, zero when the failure has no single line.
	Line int
	// Msg is the human-readable reason.
	Msg string
	// Duplicate is set when the failure is a duplicate mapping key.
	Duplicate bool
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}

	return e.Msg
}

// Parse deserializes YAML text into a value tree. Empty input yields a null
// value. Any failure returns a *ParseError and no tree.
func Parse(data []byte) (*Value, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, syntaxError(err)
	}

	if file == nil || len(file.Docs) == 0 {
		return &Value{kind: KindNull}, nil
	}

	if len(file.Docs) > 1 {
		return nil, &ParseError{
			Line: nodeLine(file.Docs[1]),
			Msg:  "multiple documents in one source are not supported",
		}
	}

	builder := &treeBuilder{anchors: map[string]*Value{}}

	return builder.node(file.Docs[0].Body)
}

type treeBuilder struct {
	anchors map[string]*Value
}

//nolint:cyclop // one arm per AST node variant.
func (b *treeBuilder) node(n ast.Node) (*Value, error) {
	switch n := n.(type) {
	case nil:
		return &Value{kind: KindNull}, nil
	case *ast.NullNode:
		return &Value{kind: KindNull, line: nodeLine(n)}, nil
	case *ast.BoolNode:
		return &Value{kind: KindBool, line: nodeLine(n), boolV: n.Value}, nil
	case *ast.IntegerNode:
		return b.integer(n)
	case *ast.FloatNode:
		return &Value{kind: KindFloat, line: nodeLine(n), floatV: n.Value}, nil
	case *ast.InfinityNode:
		return &Value{kind: KindFloat, line: nodeLine(n), floatV: n.Value}, nil
	case *ast.NanNode:
		return &Value{kind: KindFloat, line: nodeLine(n), floatV: math.NaN()}, nil
	case *ast.StringNode:
		return b.scalar(n), nil
	case *ast.LiteralNode:
		return &Value{kind: KindString, line: nodeLine(n), strV: n.Value.Value}, nil
	case *ast.SequenceNode:
		return b.sequence(n)
	case *ast.MappingNode:
		return b.mapping(n.Values)
	case *ast.MappingValueNode:
		return b.mapping([]*ast.MappingValueNode{n})
	case *ast.AnchorNode:
		return b.anchor(n)
	case *ast.AliasNode:
		return b.alias(n)
	case *ast.TagNode:
		return nil, &ParseError{Line: nodeLine(n), Msg: fmt.Sprintf("tag %q is not allowed", tokenText(n))}
	case *ast.MergeKeyNode:
		return nil, &ParseError{Line: nodeLine(n), Msg: "merge keys are not supported"}
	default:
		return nil, &ParseError{Line: nodeLine(n), Msg: fmt.Sprintf("unsupported YAML construct %T", n)}
	}
}

func (b *treeBuilder) integer(n *ast.IntegerNode) (*Value, error) {
	switch value := n.Value.(type) {
	case int64:
		return &Value{kind: KindInt, line: nodeLine(n), intV: value}, nil
	case uint64:
		if value > math.MaxInt64 {
			return nil, &ParseError{Line: nodeLine(n), Msg: fmt.Sprintf("integer %d out of range", value)}
		}

		return &Value{kind: KindInt, line: nodeLine(n), intV: int64(value)}, nil
	case int:
		return &Value{kind: KindInt, line: nodeLine(n), intV: int64(value)}, nil
	default:
		return nil, &ParseError{Line: nodeLine(n), Msg: fmt.Sprintf("unsupported integer representation %T", value)}
	}
}

// scalar applies the inference order for unquoted strings: the yes/no boolean
// spellings come before plain text. Quoting always wins and yields a string;
// true/false, null, numbers, and floats are already distinct node types by
// the time the parser hands us a StringNode.
func (b *treeBuilder) scalar(n *ast.StringNode) *Value {
	if !isQuoted(n.GetToken()) {
		switch strings.ToLower(n.Value) {
		case "yes":
			return &Value{kind: KindBool, line: nodeLine(n), boolV: true}
		case "no":
			return &Value{kind: KindBool, line: nodeLine(n), boolV: false}
		}
	}

	return &Value{kind: KindString, line: nodeLine(n), strV: n.Value}
}

func (b *treeBuilder) sequence(n *ast.SequenceNode) (*Value, error) {
	elems := make([]*Value, 0, len(n.Values))

	for _, item := range n.Values {
		elem, err := b.node(item)
		if err != nil {
			return nil, err
		}

		elems = append(elems, elem)
	}

	return &Value{kind: KindSequence, line: nodeLine(n), seq: elems}, nil
}

func (b *treeBuilder) mapping(values []*ast.MappingValueNode) (*Value, error) {
	entries := make([]Entry, 0, len(values))
	seen := make(map[string]int, len(values))

	line := 0
	if len(values) > 0 {
		line = nodeLine(values[0])
	}

	for _, pair := range values {
		key, keyLine, err := b.key(pair.Key)
		if err != nil {
			return nil, err
		}

		if firstLine, dup := seen[key]; dup {
			return nil, &ParseError{
				Line:      keyLine,
				Duplicate: true,
				Msg:       fmt.Sprintf("duplicate key %q (first defined at line %d)", key, firstLine),
			}
		}

		seen[key] = keyLine

		value, err := b.node(pair.Value)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{Key: key, Line: keyLine, Value: value})
	}

	return &Value{kind: KindMapping, line: line, entries: entries}, nil
}

// key reduces a mapping key node to its string form. Mapping keys are always
// strings in the value tree; numeric and boolean keys keep their source
// spelling.
func (b *treeBuilder) key(n ast.Node) (string, int, error) {
	switch n := n.(type) {
	case *ast.StringNode:
		return n.Value, nodeLine(n), nil
	case *ast.IntegerNode, *ast.BoolNode, *ast.FloatNode, *ast.NullNode:
		return tokenText(n), nodeLine(n), nil
	case *ast.MergeKeyNode:
		return "", 0, &ParseError{Line: nodeLine(n), Msg: "merge keys are not supported"}
	default:
		return "", 0, &ParseError{Line: nodeLine(n), Msg: fmt.Sprintf("unsupported mapping key %T", n)}
	}
}

func (b *treeBuilder) anchor(n *ast.AnchorNode) (*Value, error) {
	value, err := b.node(n.Value)
	if err != nil {
		return nil, err
	}

	b.anchors[tokenText(n.Name)] = value

	return value, nil
}

// alias expands a *name reference to a deep copy of the anchored value, so
// the finished tree never aliases nodes.
func (b *treeBuilder) alias(n *ast.AliasNode) (*Value, error) {
	name := tokenText(n.Value)

	anchored, ok := b.anchors[name]
	if !ok {
		return nil, &ParseError{Line: nodeLine(n), Msg: fmt.Sprintf("unknown anchor %q", name)}
	}

	copied := anchored.clone()
	copied.line = nodeLine(n)

	return copied, nil
}

func isQuoted(tok *token.Token) bool {
	if tok == nil {
		return false
	}

	return tok.Type == token.SingleQuoteType || tok.Type == token.DoubleQuoteType
}

func nodeLine(n ast.Node) int {
	if n == nil {
		return 0
	}

	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return 0
	}

	return tok.Position.Line
}

func tokenText(n ast.Node) string {
	if n == nil {
		return ""
	}

	tok := n.GetToken()
	if tok == nil {
		return ""
	}

	return tok.Value
}

var errorPosition = regexp.MustCompile(`\[(\d+):\d+\]\s*`)

// syntaxError converts a library parse error into a ParseError, pulling the
// line number out of the "[line:column]" prefix when present.
func syntaxError(err error) *ParseError {
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}

	line := 0

	if match := errorPosition.FindStringSubmatch(msg); match != nil {
		line, _ = strconv.Atoi(match[1])
		msg = strings.TrimSpace(errorPosition.ReplaceAllString(msg, ""))
	}

	return &ParseError{Line: line, Msg: msg}
}
