package expr

// Scanner splits expression source text into tokens. It exposes a
// two-phase protocol: Peek computes the token at the current position
// without consuming anything, Advance commits the position computed by
// the latest Peek. Peeking repeatedly without an Advance returns the
// same token and reports no further diagnostics.
type Scanner struct {
	src    string
	pos    int
	next   int
	tok    Token
	peeked bool
	report Reporter
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: src, report: LogReporter()}
}

// SetSource replaces the source text and resets all scan state.
func (s *Scanner) SetSource(src string) {
	s.src = src
	s.pos = 0
	s.next = 0
	s.peeked = false
}

func (s *Scanner) SetReporter(r Reporter) {
	if r == nil {
		r = LogReporter()
	}
	s.report = r
}

// Offset returns the committed scan position.
func (s *Scanner) Offset() int {
	return s.pos
}

// Peek returns the token at the current position. The position only
// moves when Advance is called.
func (s *Scanner) Peek() Token {
	if s.peeked {
		return s.tok
	}
	s.tok = s.scan()
	s.peeked = true
	return s.tok
}

// Advance consumes the token computed by the latest Peek. Without a
// preceding Peek it scans and consumes one token. Advancing at the end
// of the input has no effect.
func (s *Scanner) Advance() {
	if !s.peeked {
		s.Peek()
	}
	s.pos = s.next
	s.peeked = false
}

// scan computes the next token starting at the committed position and
// records the position after it in s.next. Every token that is not EOF
// moves s.next forward by at least one byte.
func (s *Scanner) scan() Token {
	pos := s.pos

	if pos >= len(s.src) {
		s.next = pos
		return Token{Kind: TokenEOF, Offset: pos}
	}

	// The printability check applies to the raw byte at the committed
	// position, before any whitespace is skipped.
	if ch := s.src[pos]; !isPrint(ch) {
		s.report.Reportf("offset %d: non-printable character 0x%02x", pos, ch)
		s.next = pos + 1
		return Token{Kind: TokenInvalid, Offset: pos}
	}

	for pos < len(s.src) && isSpace(s.src[pos]) {
		pos++
	}
	if pos >= len(s.src) {
		s.next = pos
		return Token{Kind: TokenEOF, Offset: pos}
	}

	ch := s.src[pos]

	if isDigit(ch) {
		return s.scanInteger(pos)
	}

	switch ch {
	case '+':
		return s.token(TokenPlus, pos)
	case '-':
		return s.token(TokenMinus, pos)
	case '*':
		return s.token(TokenStar, pos)
	case '(':
		return s.token(TokenLParen, pos)
	case ')':
		return s.token(TokenRParen, pos)
	}

	s.report.Reportf("offset %d: unexpected character %q", pos, ch)
	s.next = pos + 1
	return Token{Kind: TokenInvalid, Text: s.src[pos : pos+1], Offset: pos}
}

// scanInteger scans a maximal digit run. Identifier characters or a
// dot glued to the end of the run are reported once and skipped; the
// token text keeps only the digits.
func (s *Scanner) scanInteger(start int) Token {
	end := start
	for end < len(s.src) && isDigit(s.src[end]) {
		end++
	}
	text := s.src[start:end]

	if end < len(s.src) && (isIdent(s.src[end]) || s.src[end] == '.') {
		s.report.Reportf("offset %d: skipping trailing characters after integer %s", end, text)
		for end < len(s.src) && (isIdent(s.src[end]) || s.src[end] == '.') {
			end++
		}
	}

	s.next = end
	return Token{Kind: TokenInteger, Text: text, Offset: start}
}

func (s *Scanner) token(kind TokenKind, pos int) Token {
	s.next = pos + 1
	return Token{Kind: kind, Text: s.src[pos : pos+1], Offset: pos}
}

func isPrint(ch byte) bool {
	return ch >= 0x20 && ch < 0x7f
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdent(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || isDigit(ch) || ch == '_'
}
