package grammar

import (
	"regexp"
	"strings"
)

// reToken matches either a word (optionally carrying a contraction
// tail, so "don't" stays one token) or a single punctuation rune.
// Unicode letter/number classes keep accented words like "café" whole.
var reToken = regexp.MustCompile(`[\p{L}\p{N}_]+(?:'[\p{L}\p{N}_]+)?|[^\s\p{L}\p{N}_]`)

// reWordStart tests whether a token text begins with a word character.
var reWordStart = regexp.MustCompile(`^[\p{L}\p{N}_]`)

// Token is a single lexical token with byte offsets into the original
// sentence. Tokens are immutable once produced.
type Token struct {
	Text    string
	Start   int
	End     int
	IsPunct bool
}

// Tokenize splits a sentence into tokens. Whitespace separates tokens;
// terminal punctuation becomes its own token. An empty or
// whitespace-only sentence returns ErrEmptyInput.
func Tokenize(sentence string) ([]Token, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, ErrEmptyInput
	}
	locs := reToken.FindAllStringIndex(sentence, -1)
	tokens := make([]Token, 0, len(locs))
	for _, loc := range locs {
		text := sentence[loc[0]:loc[1]]
		tokens = append(tokens, Token{
			Text:    text,
			Start:   loc[0],
			End:     loc[1],
			IsPunct: !reWordStart.MatchString(text),
		})
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	return tokens, nil
}

// wordTokens filters tokens down to word tokens, preserving order.
func wordTokens(tokens []Token) []Token {
	words := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsPunct {
			words = append(words, t)
		}
	}
	return words
}
