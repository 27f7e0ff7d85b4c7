package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/kei/expr"
)

// JSONEncoder writes a tree as indented JSON. Missing subtrees render
// as null, including the whole document for a nil tree.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(t expr.Tree) error {
	text, err := json.MarshalIndent(treeToJSON(t), "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Op       string      `json:"op,omitempty"`
	Value    string      `json:"value,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func treeToJSON(t expr.Tree) *jsonNode {
	switch n := t.(type) {
	case *expr.Literal:
		return &jsonNode{Kind: "Literal", Value: n.Token.Text}
	case *expr.Unary:
		return &jsonNode{
			Kind:     "Unary",
			Op:       n.Op.String(),
			Children: []*jsonNode{treeToJSON(n.Child)},
		}
	case *expr.Binary:
		return &jsonNode{
			Kind:     "Binary",
			Op:       n.Op.String(),
			Children: []*jsonNode{treeToJSON(n.Left), treeToJSON(n.Right)},
		}
	}
	return nil
}
