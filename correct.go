package grammar

import (
	"strings"
	"unicode"
)

// correctVerbForm returns the form of verb that agrees with target.
// Contractions swap to their canonical counterpart, irregular verbs to
// their opposite form, regular verbs add or strip the trailing s. An
// empty result means no safe rewrite exists (a contraction like
// "won't" that does not inflect for number).
func (lx *Lexicon) correctVerbForm(verb string, target Number) string {
	v := strings.ToLower(verb)

	if c, ok := lx.contractions[v]; ok {
		fixed := c.Plural
		if target == Singular {
			fixed = c.Singular
		}
		if fixed == "" || strings.EqualFold(fixed, verb) {
			return ""
		}
		return fixed
	}

	if iv, ok := lx.irregularVerbs[v]; ok {
		if iv.Number == target {
			return verb
		}
		return iv.Opposite
	}

	if target == Singular {
		if !strings.HasSuffix(v, "s") {
			return verb + "s"
		}
		return verb
	}
	if strings.HasSuffix(v, "s") {
		return verb[:len(verb)-1]
	}
	return verb
}

// correctSentence rebuilds the sentence with the agreeing verb form
// substituted at the verb token's span, preserving the surrounding
// text and the casing of a sentence-initial verb. Returns "" when no
// safe rewrite exists.
func (lx *Lexicon) correctSentence(sentence string, verb Token, target Number) string {
	fixed := lx.correctVerbForm(verb.Text, target)
	if fixed == "" || fixed == verb.Text {
		return ""
	}
	if verb.Start == 0 {
		r := []rune(fixed)
		if len(r) > 0 && unicode.IsUpper([]rune(verb.Text)[0]) {
			r[0] = unicode.ToUpper(r[0])
			fixed = string(r)
		}
	}
	return sentence[:verb.Start] + fixed + sentence[verb.End:]
}
