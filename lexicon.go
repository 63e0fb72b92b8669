package grammar

// pronounInfo holds the fixed number and person of a personal pronoun.
// "I" and "you" take plural verb forms ("I run", never "I runs"), so
// they carry Plural here even though "I" is semantically singular.
type pronounInfo struct {
	Number Number
	Person int
}

// irregularVerb pairs a finite verb form's number with the form of the
// opposite number, e.g. "is" → {Singular, "are"}.
type irregularVerb struct {
	Number   Number
	Opposite string
}

// contractionInfo describes a negated auxiliary contraction. Singular
// and Plural hold the canonical counterpart forms used by the
// correction generator; both are empty when the contraction does not
// inflect for number ("won't", "can't").
type contractionInfo struct {
	Number   Number
	Singular string
	Plural   string
}

// Lexicon holds all lexical tables. It is built once by NewLexicon,
// never mutated afterwards, and safe to share across concurrent
// analyses.
type Lexicon struct {
	// pronouns maps personal pronoun → fixed number/person.
	pronouns map[string]pronounInfo

	// irregularVerbs maps finite form → number and opposite form.
	irregularVerbs map[string]irregularVerb

	// contractions maps negated auxiliary forms, with and without the
	// apostrophe, to their number and counterpart forms. The
	// apostrophe-less spellings make "dont" and "don't" classify
	// identically.
	contractions map[string]contractionInfo

	// auxiliaries is the set of standalone auxiliary verbs.
	auxiliaries map[string]bool

	// coordinators is the set of subject-joining conjunctions.
	coordinators map[string]bool

	// indefinites is the set of indefinite pronouns (always singular).
	indefinites map[string]bool

	// collectives is the set of collective nouns (singular as a unit).
	collectives map[string]bool

	// units is the set of amount/time/money/distance nouns (singular).
	units map[string]bool

	// singularPlurals is the set of plural-looking singulars:
	// countries, fields of study, diseases.
	singularPlurals map[string]bool

	// irregularPlurals is the set of plural nouns without a trailing s.
	irregularPlurals map[string]bool

	// determiners and possessives are skipped when locating the
	// subject head.
	determiners map[string]bool
	possessives map[string]bool
}

// NewLexicon builds the lexical tables.
func NewLexicon() *Lexicon {
	return &Lexicon{
		pronouns: map[string]pronounInfo{
			"i":    {Plural, 1},
			"you":  {Plural, 2},
			"he":   {Singular, 3},
			"she":  {Singular, 3},
			"it":   {Singular, 3},
			"we":   {Plural, 1},
			"they": {Plural, 3},
		},
		irregularVerbs: map[string]irregularVerb{
			"is":   {Singular, "are"},
			"are":  {Plural, "is"},
			"was":  {Singular, "were"},
			"were": {Plural, "was"},
			"has":  {Singular, "have"},
			"have": {Plural, "has"},
			"does": {Singular, "do"},
			"do":   {Plural, "does"},
		},
		contractions: map[string]contractionInfo{
			"don't":   {Plural, "doesn't", "don't"},
			"dont":    {Plural, "doesn't", "don't"},
			"doesn't": {Singular, "doesn't", "don't"},
			"doesnt":  {Singular, "doesn't", "don't"},
			"isn't":   {Singular, "isn't", "aren't"},
			"isnt":    {Singular, "isn't", "aren't"},
			"aren't":  {Plural, "isn't", "aren't"},
			"arent":   {Plural, "isn't", "aren't"},
			"wasn't":  {Singular, "wasn't", "weren't"},
			"wasnt":   {Singular, "wasn't", "weren't"},
			"weren't": {Plural, "wasn't", "weren't"},
			"werent":  {Plural, "wasn't", "weren't"},
			"hasn't":  {Singular, "hasn't", "haven't"},
			"hasnt":   {Singular, "hasn't", "haven't"},
			"haven't": {Plural, "hasn't", "haven't"},
			"havent":  {Plural, "hasn't", "haven't"},
			"won't":   {Singular, "", ""},
			"wont":    {Singular, "", ""},
			"can't":   {Plural, "", ""},
			"cant":    {Plural, "", ""},
		},
		auxiliaries: wordSet(
			"is", "are", "was", "were", "has", "have", "do", "does",
			"will", "can", "should", "would", "could"),
		coordinators: wordSet("and", "or", "nor"),
		indefinites: wordSet(
			"everyone", "everybody", "everything",
			"someone", "somebody", "something",
			"anyone", "anybody", "anything",
			"nobody", "nothing",
			"each", "either", "neither",
			"one", "another", "other"),
		collectives: wordSet(
			"team", "group", "class", "family", "committee", "staff",
			"crew", "audience", "band", "jury", "council", "crowd",
			"company", "government", "organization", "department",
			"army", "navy", "police", "public"),
		units: wordSet(
			"dollars", "pesos", "pounds", "euros", "cents",
			"hours", "minutes", "seconds", "days", "weeks", "months", "years",
			"miles", "kilometers", "meters", "feet",
			"kilograms", "ounces"),
		singularPlurals: wordSet(
			"philippines", "netherlands",
			"mathematics", "physics", "economics", "politics",
			"news", "measles", "mumps", "diabetes",
			"athletics", "gymnastics", "statistics"),
		irregularPlurals: wordSet(
			"children", "people", "men", "women", "feet", "teeth", "mice"),
		determiners: wordSet("the", "a", "an"),
		possessives: wordSet("my", "your", "his", "her", "its", "our", "their"),
	}
}

// wordSet builds a membership set from its arguments.
func wordSet(words ...string) map[string]bool {
	s := make(map[string]bool, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}
