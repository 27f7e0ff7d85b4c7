package expr

// Tree is the interface implemented by all expression tree nodes. The
// set of node types is closed; a nil Tree stands for a subexpression
// that could not be parsed and evaluates to zero.
type Tree interface {
	treeNode()
}

// Literal is an integer literal.
type Literal struct {
	Token Token
}

// Unary applies an operator to a single operand. No grammar production
// builds these today; the evaluator handles them for trees constructed
// directly.
type Unary struct {
	Op    TokenKind
	Child Tree
}

// Binary applies an operator to two operands. Either operand may be
// nil when the parser reported an error for it.
type Binary struct {
	Op    TokenKind
	Left  Tree
	Right Tree
}

func (*Literal) treeNode() {}
func (*Unary) treeNode()   {}
func (*Binary) treeNode()  {}
