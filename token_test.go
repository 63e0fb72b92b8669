package grammar

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("The cat runs.")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []Token{
		{"The", 0, 3, false},
		{"cat", 4, 7, false},
		{"runs", 8, 12, false},
		{".", 12, 13, true},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, tok, want[i])
		}
	}
}

func TestTokenizeContraction(t *testing.T) {
	tokens, err := Tokenize("They don't run!")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tokens[1].Text != "don't" {
		t.Errorf("contraction split: got %q, want one token %q", tokens[1].Text, "don't")
	}
	last := tokens[len(tokens)-1]
	if !last.IsPunct || last.Text != "!" {
		t.Errorf("terminal punctuation not detached: %+v", last)
	}
}

func TestTokenizeAccentedWord(t *testing.T) {
	sentence := "The café serves coffee."
	tokens, err := Tokenize(sentence)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tokens[1].Text != "café" || tokens[1].IsPunct {
		t.Errorf("token 1 = %+v, want one word token %q", tokens[1], "café")
	}
	for _, tok := range tokens {
		if got := sentence[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("offsets for %q slice to %q", tok.Text, got)
		}
	}
	words := wordTokens(tokens)
	if len(words) != 4 {
		t.Errorf("got %d word tokens, want 4: %v", len(words), words)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := Tokenize(in); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Tokenize(%q) error = %v, want ErrEmptyInput", in, err)
		}
	}
}

func TestTokenizeOffsets(t *testing.T) {
	sentence := "He doesn't run."
	tokens, err := Tokenize(sentence)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	for _, tok := range tokens {
		if got := sentence[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("offsets for %q slice to %q", tok.Text, got)
		}
	}
}
