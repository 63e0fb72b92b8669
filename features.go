package grammar

import "strings"

// Number is the grammatical number of a noun or verb phrase.
type Number string

const (
	Singular Number = "singular"
	Plural   Number = "plural"
)

// Opposite returns the other grammatical number.
func (n Number) Opposite() Number {
	if n == Singular {
		return Plural
	}
	return Singular
}

// Category is the lexical category assigned to a phrase head.
type Category string

const (
	CategoryRegular        Category = "regular"
	CategoryPronoun        Category = "pronoun"
	CategoryIrregular      Category = "irregular"
	CategoryCollective     Category = "collective"
	CategoryIndefinite     Category = "indefinite"
	CategoryUnitNoun       Category = "unit"
	CategoryCoordinated    Category = "coordinated"
	CategoryContraction    Category = "contraction"
	CategorySingularPlural Category = "singular_plural"
)

// Features describes a noun phrase or verb phrase. Features attach to
// phrases, never to bare tokens.
type Features struct {
	Number   Number   `json:"number"`
	Category Category `json:"category,omitempty"`
}

// coordination describes a coordinated subject: two conjuncts joined by
// "and", "or" or "nor". Only the two-conjunct form is recognized; a
// third conjunct stays in the surface text and does not change the
// resolved number (nearest-wins is defined for two conjuncts only).
type coordination struct {
	// Coordinator is the joining word, lowercased.
	Coordinator string
	// First and Second are the word indices of the conjunct heads.
	First, Second int
	// Number is the resolved number of the whole subject.
	Number Number
}

// classifySubject assigns number and category to a subject head word.
// Lookup order matters: the fixed vocabularies win over the
// morphological fallback, and the irregular-plural table overrides the
// trailing-s heuristic.
func (lx *Lexicon) classifySubject(word string) Features {
	w := strings.ToLower(word)

	if lx.indefinites[w] {
		return Features{Number: Singular, Category: CategoryIndefinite}
	}
	if p, ok := lx.pronouns[w]; ok {
		return Features{Number: p.Number, Category: CategoryPronoun}
	}
	if lx.singularPlurals[w] {
		return Features{Number: Singular, Category: CategorySingularPlural}
	}
	if lx.collectives[w] {
		return Features{Number: Singular, Category: CategoryCollective}
	}
	if lx.units[w] {
		return Features{Number: Singular, Category: CategoryUnitNoun}
	}
	if lx.irregularPlurals[w] {
		return Features{Number: Plural, Category: CategoryRegular}
	}
	if strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "'s") {
		return Features{Number: Plural, Category: CategoryRegular}
	}
	return Features{Number: Singular, Category: CategoryRegular}
}

// classifyVerb assigns number and category to a verb head word.
// Contractions win over the irregular table, which wins over the
// trailing-s heuristic. Everything else counts as plural (the bare
// form).
func (lx *Lexicon) classifyVerb(word string) Features {
	w := strings.ToLower(word)

	if c, ok := lx.contractions[w]; ok {
		return Features{Number: c.Number, Category: CategoryContraction}
	}
	if iv, ok := lx.irregularVerbs[w]; ok {
		return Features{Number: iv.Number, Category: CategoryIrregular}
	}
	if strings.HasSuffix(w, "s") {
		return Features{Number: Singular, Category: CategoryRegular}
	}
	return Features{Number: Plural, Category: CategoryRegular}
}

// isVerbCandidate rejects word shapes that cannot head a verb phrase
// when scanning for the main verb.
func isVerbCandidate(w string) bool {
	for _, suf := range []string{"ly", "tion", "ness", "ment"} {
		if strings.HasSuffix(w, suf) {
			return false
		}
	}
	return true
}

// findSubject returns the index of the subject head: the first word
// that is not a determiner, possessive, auxiliary or contraction.
func (lx *Lexicon) findSubject(words []string) int {
	for i, w := range words {
		lw := strings.ToLower(w)
		if lx.determiners[lw] || lx.possessives[lw] {
			continue
		}
		if lx.auxiliaries[lw] {
			continue
		}
		if _, ok := lx.contractions[lw]; ok {
			continue
		}
		return i
	}
	return -1
}

// findVerb returns the index of the verb that must agree with the
// subject. Contracted auxiliaries take priority over standalone
// auxiliaries, which take priority over the first plausible main verb
// after position `after`. The last word is the fallback.
func (lx *Lexicon) findVerb(words []string, after int) (idx int, isAux bool) {
	for i, w := range words {
		if _, ok := lx.contractions[strings.ToLower(w)]; ok {
			return i, true
		}
	}
	for i, w := range words {
		if lx.auxiliaries[strings.ToLower(w)] {
			return i, true
		}
	}
	for i := after + 1; i < len(words); i++ {
		lw := strings.ToLower(words[i])
		if lx.coordinators[lw] || lx.determiners[lw] || lx.possessives[lw] {
			continue
		}
		if isVerbCandidate(lw) {
			return i, false
		}
	}
	if len(words) > after+1 {
		return len(words) - 1, false
	}
	return -1, false
}

// detectCoordination recognizes a coordinated subject: the coordinator
// must immediately follow the subject head at subjIdx, so "runs and
// jumps" in the predicate is never mistaken for a coordinated subject.
// "and" is always plural; "or"/"nor" take the number of the nearer
// (second) conjunct. Determiners after the coordinator are skipped when
// locating the second conjunct head.
func (lx *Lexicon) detectCoordination(words []string, subjIdx int) *coordination {
	i := subjIdx + 1
	if i <= 0 || i >= len(words)-1 {
		return nil
	}
	c := strings.ToLower(words[i])
	if !lx.coordinators[c] {
		return nil
	}
	second := i + 1
	for second < len(words) && lx.determiners[strings.ToLower(words[second])] {
		second++
	}
	if second >= len(words) {
		return nil
	}
	num := Plural
	if c != "and" {
		num = lx.classifySubject(words[second]).Number
	}
	return &coordination{
		Coordinator: c,
		First:       subjIdx,
		Second:      second,
		Number:      num,
	}
}
