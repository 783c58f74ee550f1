package splitter

import (
	"reflect"
	"testing"
)

func TestSplitIntoTokens(t *testing.T) {
	s := New()

	cases := []struct {
		expr string
		want []string
	}{
		{"10 + -2 * Sin(45)", []string{"10", "+", "-", "2", "*", "Sin", "(", "45", ")"}},
		{"10 + (-3) * 0.25", []string{"10", "+", "(", "-", "3", ")", "*", "0.25"}},
		{"(x+y)-2^10", []string{"(", "x", "+", "y", ")", "-", "2", "^", "10"}},
		{"Log2(25) * PI - 2", []string{"Log2", "(", "25", ")", "*", "PI", "-", "2"}},
		{"2PI + 10", []string{"2", "PI", "+", "10"}},
		{"x = 10", []string{"x", "=", "10"}},
	}

	for _, c := range cases {
		got := s.SplitIntoTokens(c.expr)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitIntoTokens(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestSplitKeepsWhitespaceWhenConfigured(t *testing.T) {
	s := NewWithStrategy(KeepWhitespace)
	got := s.SplitIntoTokens("5 * 2")
	want := []string{"5", " ", "*", " ", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitWithRule(t *testing.T) {
	rule := func(first rune, rest *Cursor) (string, bool) {
		if first != '@' {
			return "", false
		}
		lexeme := string(first)
		for {
			r, ok := rest.Peek()
			if !ok || !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
				break
			}
			lexeme += string(r)
			rest.Next()
		}
		return lexeme, true
	}

	s := NewWithRule(rule)
	got := s.SplitIntoTokens("@125 + -@2 * Sin(@45)")
	want := []string{"@125", "+", "-", "@2", "*", "Sin", "(", "@45", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
