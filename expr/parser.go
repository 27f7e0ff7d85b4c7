package expr

type Option func(*Parser)

// WithReporter routes diagnostics from the parser and its scanner to r.
func WithReporter(r Reporter) Option {
	return func(p *Parser) {
		p.report = r
		p.sc.SetReporter(r)
	}
}

// Parser builds expression trees from the token stream of a Scanner.
// Parse errors are reported as diagnostics and yield nil subtrees; the
// parser never panics and never aborts early.
type Parser struct {
	sc     *Scanner
	report Reporter
}

func NewParser(sc *Scanner, opts ...Option) *Parser {
	p := &Parser{sc: sc, report: LogReporter()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse scans and parses src in one step.
func Parse(src string, opts ...Option) Tree {
	return NewParser(NewScanner(src), opts...).ParseExpression()
}

func (p *Parser) ParseExpression() Tree {
	return p.parseAdditiveExpression()
}

// parseAdditiveExpression parses a chain of + and - operations. The
// first operator takes one multiplicative operand on the right; a
// second operator hands the entire rest of the chain to a recursive
// call, so "a - b - c - d" groups as (a-b) - (c-d). Additive is
// defined this way in the grammar and the evaluation order follows it.
func (p *Parser) parseAdditiveExpression() Tree {
	a := p.parseMultiplicativeExpression()

	if tok := p.sc.Peek(); isTermOp(tok.Kind) {
		p.sc.Advance()
		a = &Binary{Op: tok.Kind, Left: a, Right: p.parseMultiplicativeExpression()}
		if tok = p.sc.Peek(); isTermOp(tok.Kind) {
			p.sc.Advance()
			a = &Binary{Op: tok.Kind, Left: a, Right: p.parseAdditiveExpression()}
		}
	}
	return a
}

// parseMultiplicativeExpression parses a chain of * operations, with
// the same shape as parseAdditiveExpression one precedence level down.
func (p *Parser) parseMultiplicativeExpression() Tree {
	a := p.parsePrimary()

	if tok := p.sc.Peek(); isFactorOp(tok.Kind) {
		p.sc.Advance()
		a = &Binary{Op: tok.Kind, Left: a, Right: p.parsePrimary()}
		if tok = p.sc.Peek(); isFactorOp(tok.Kind) {
			p.sc.Advance()
			a = &Binary{Op: tok.Kind, Left: a, Right: p.parseMultiplicativeExpression()}
		}
	}
	return a
}

func (p *Parser) parsePrimary() Tree {
	tok := p.sc.Peek()

	switch tok.Kind {
	case TokenInteger:
		p.sc.Advance()
		return &Literal{Token: tok}
	case TokenLParen:
		p.sc.Advance()
		inner := p.ParseExpression()
		if tok = p.sc.Peek(); tok.Kind != TokenRParen {
			p.report.Reportf("offset %d: expected right parenthesis, found %s", tok.Offset, tok.Kind)
			return nil
		}
		p.sc.Advance()
		return inner
	}

	p.report.Reportf("offset %d: expected integer or left parenthesis, found %s", tok.Offset, tok.Kind)
	return nil
}

func isTermOp(k TokenKind) bool {
	return k == TokenPlus || k == TokenMinus
}

func isFactorOp(k TokenKind) bool {
	return k == TokenStar
}
