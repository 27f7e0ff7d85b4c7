package grammar

import "testing"

func TestVerify(t *testing.T) {
	if err := Verify(); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}
}

func TestMatcherAccepts(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	m := NewMatcher(g)

	tests := []string{
		"4",
		"42",
		"4 + 3",
		"4 + 3 * 8",
		"(4 + 3) * 8",
		"(4 + 3 * 8) + 8 * 8 + (4 * 4)",
		"10 - 2 - 3",
		"10 - 2 - 3 - 1",
		"((7))",
		"2 * 3 * 4",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if !m.Match(input) {
				t.Errorf("Match(%q) = false, want true", input)
			}
		})
	}
}

func TestMatcherRejects(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	m := NewMatcher(g)

	tests := []string{
		"",
		"+",
		"4 +",
		"(4 + 3",
		"4 + 3)",
		"4 / 2",
		"-4",
		"a + b",
		"4 ** 3",
	}

	for _, input := range tests {
		t.Run("\""+input+"\"", func(t *testing.T) {
			if m.Match(input) {
				t.Errorf("Match(%q) = true, want false", input)
			}
		})
	}
}

func TestMatchConvenience(t *testing.T) {
	ok, err := Match("1 + 2 * 3")
	if err != nil {
		t.Fatalf("Match() = %v", err)
	}
	if !ok {
		t.Error("Match = false, want true")
	}
}
