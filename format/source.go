package format

import (
	"io"

	"github.com/dhamidi/kei/expr"
)

// SourceEncoder writes a tree back as expression source with explicit
// grouping: any binary subexpression that does not bind strictly
// tighter than its parent is parenthesized, so the evaluation order is
// visible and reparsing the output rebuilds the identical tree.
// Missing subtrees print as 0, matching their value.
type SourceEncoder struct {
	w io.Writer
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(t expr.Tree) error {
	_, err := io.WriteString(e.w, sourceString(t))
	return err
}

const (
	bindTerm = iota + 1
	bindFactor
	bindAtom
)

func sourceString(t expr.Tree) string {
	switch n := t.(type) {
	case nil:
		return "0"
	case *expr.Literal:
		return n.Token.Text
	case *expr.Unary:
		return n.Op.String() + sourceChild(n.Child, bindAtom)
	case *expr.Binary:
		need := precedence(t) + 1
		return sourceChild(n.Left, need) + " " + n.Op.String() + " " + sourceChild(n.Right, need)
	default:
		return "0"
	}
}

// sourceChild renders a subtree, parenthesized when it binds less
// tightly than its position requires.
func sourceChild(t expr.Tree, need int) string {
	s := sourceString(t)
	if precedence(t) < need {
		return "(" + s + ")"
	}
	return s
}

// precedence ranks how tightly a subtree binds. Literals, unary
// operators and missing subtrees count as atoms.
func precedence(t expr.Tree) int {
	if n, ok := t.(*expr.Binary); ok {
		if n.Op == expr.TokenStar {
			return bindFactor
		}
		return bindTerm
	}
	return bindAtom
}
