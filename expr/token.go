package expr

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInvalid

	// Literals
	TokenInteger

	// Operators and punctuation
	TokenPlus
	TokenMinus
	TokenStar
	TokenLParen
	TokenRParen
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:     "EOF",
	TokenInvalid: "Invalid",
	TokenInteger: "Integer",
	TokenPlus:    "+",
	TokenMinus:   "-",
	TokenStar:    "*",
	TokenLParen:  "(",
	TokenRParen:  ")",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexical element of an expression. Text holds the
// digit run for integers and the matched character for operators and
// punctuation; it is empty for EOF. Offset is the byte offset of the
// token start in the source.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}
