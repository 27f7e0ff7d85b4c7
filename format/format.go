package format

import (
	"github.com/dhamidi/kei/expr"
)

// Encoder writes an expression tree to an output stream.
type Encoder interface {
	Encode(t expr.Tree) error
}
