package expr

import "strconv"

// Eval computes the value of an expression tree with wraparound
// unsigned 64-bit arithmetic. A nil tree, an unparsable literal and an
// unknown binary operator all evaluate to zero.
func Eval(t Tree) uint64 {
	switch node := t.(type) {
	case nil:
		return 0
	case *Literal:
		v, err := strconv.ParseUint(node.Token.Text, 10, 64)
		if err != nil {
			return 0
		}
		return v
	case *Unary:
		v := Eval(node.Child)
		switch node.Op {
		case TokenMinus:
			v = -v
		}
		return v
	case *Binary:
		a := Eval(node.Left)
		b := Eval(node.Right)
		switch node.Op {
		case TokenPlus:
			return a + b
		case TokenMinus:
			return a - b
		case TokenStar:
			return a * b
		}
		return 0
	default:
		log.Errorf("unknown tree node %T", t)
		return 0
	}
}
