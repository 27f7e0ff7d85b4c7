package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/kei/expr"
)

// TextEncoder writes one node per line, indented two spaces per
// nesting level. Subtrees the parser could not build print as "nil".
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(t expr.Tree) error {
	_, err := io.WriteString(e.w, treeStringIndent(t, 0))
	return err
}

func treeStringIndent(t expr.Tree, indent int) string {
	prefix := strings.Repeat("  ", indent)

	switch n := t.(type) {
	case nil:
		return prefix + "nil\n"
	case *expr.Literal:
		return prefix + "Literal " + n.Token.Text + "\n"
	case *expr.Unary:
		return prefix + "Unary " + n.Op.String() + "\n" +
			treeStringIndent(n.Child, indent+1)
	case *expr.Binary:
		return prefix + "Binary " + n.Op.String() + "\n" +
			treeStringIndent(n.Left, indent+1) +
			treeStringIndent(n.Right, indent+1)
	default:
		return prefix + fmt.Sprintf("Unknown %T\n", t)
	}
}
