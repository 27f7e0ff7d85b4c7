package grammar

import (
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// memoKey caches match results per production and offset.
type memoKey struct {
	name   string
	offset int
}

// Matcher tests whether inputs derive from the grammar by walking its
// productions. Match lengths are memoized per production and offset;
// a negative length means no match, zero an empty match.
type Matcher struct {
	grammar  ebnf.Grammar
	input    string
	memo     map[memoKey]int
	visiting map[memoKey]bool
}

func NewMatcher(g ebnf.Grammar) *Matcher {
	return &Matcher{grammar: g}
}

// Match reports whether input derives from the Expression production.
// Whitespace separates tokens without belonging to the grammar and is
// removed before matching.
func (m *Matcher) Match(input string) bool {
	m.input = stripSpace(input)
	m.memo = make(map[memoKey]int)
	m.visiting = make(map[memoKey]bool)
	return m.matchName(startProduction, 0) == len(m.input)
}

// Match is a convenience wrapper that loads the grammar and matches
// input against it.
func Match(input string) (bool, error) {
	g, err := Load()
	if err != nil {
		return false, err
	}
	return NewMatcher(g).Match(input), nil
}

// match returns the number of input bytes the expression consumes at
// offset, or -1 if it does not match there.
func (m *Matcher) match(x ebnf.Expression, offset int) int {
	switch e := x.(type) {
	case *ebnf.Token:
		return m.matchToken(e.String, offset)

	case *ebnf.Range:
		return m.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		pos := offset
		for _, item := range e {
			n := m.match(item, pos)
			if n < 0 {
				return -1
			}
			total += n
			pos += n
		}
		return total

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n := m.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		pos := offset
		for {
			n := m.match(e.Body, pos)
			if n <= 0 {
				break
			}
			total += n
			pos += n
		}
		return total

	case *ebnf.Option:
		if n := m.match(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.matchName(e.String, offset)

	default:
		return -1
	}
}

// matchName resolves a production reference, with memoization and a
// visiting set that cuts recursion into the same production at the
// same offset.
func (m *Matcher) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if n, ok := m.memo[key]; ok {
		return n
	}
	if m.visiting[key] {
		return -1
	}

	prod, ok := m.grammar[name]
	if !ok || prod.Expr == nil {
		m.memo[key] = -1
		return -1
	}

	m.visiting[key] = true
	n := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = n
	return n
}

func (m *Matcher) matchToken(lit string, offset int) int {
	s := strings.Trim(lit, "\"")
	if offset+len(s) > len(m.input) {
		return -1
	}
	if m.input[offset:offset+len(s)] == s {
		return len(s)
	}
	return -1
}

func (m *Matcher) matchRange(begin, end string, offset int) int {
	if offset >= len(m.input) {
		return -1
	}
	lo := strings.Trim(begin, "\"")
	hi := strings.Trim(end, "\"")
	if len(lo) != 1 || len(hi) != 1 {
		return -1
	}
	if ch := m.input[offset]; ch >= lo[0] && ch <= hi[0] {
		return 1
	}
	return -1
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
