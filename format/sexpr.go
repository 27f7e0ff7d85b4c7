package format

import (
	"io"
	"strings"

	"github.com/dhamidi/kei/expr"
)

// SExprEncoder writes a tree as a parenthesized prefix expression on a
// single line, operators first: "(+ 4 (* 3 8))". Missing subtrees
// print as "nil".
type SExprEncoder struct {
	w io.Writer
}

func NewSExprEncoder(w io.Writer) *SExprEncoder {
	return &SExprEncoder{w: w}
}

func (e *SExprEncoder) Encode(t expr.Tree) error {
	_, err := io.WriteString(e.w, sexprString(t))
	return err
}

func sexprString(t expr.Tree) string {
	switch n := t.(type) {
	case nil:
		return "nil"
	case *expr.Literal:
		return n.Token.Text
	case *expr.Unary:
		return parenthesize(n.Op.String(), n.Child)
	case *expr.Binary:
		return parenthesize(n.Op.String(), n.Left, n.Right)
	default:
		return "nil"
	}
}

func parenthesize(name string, children ...expr.Tree) string {
	var builder strings.Builder

	builder.WriteString("(" + name)
	for _, child := range children {
		builder.WriteString(" ")
		builder.WriteString(sexprString(child))
	}
	builder.WriteString(")")

	return builder.String()
}
