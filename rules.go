package grammar

import "strings"

// FeatureString is the working state of the derivation engine: terminal
// text interleaved with tagged non-terminals such as "NP[plural]" and
// "VP[singular]".
type FeatureString string

// ProductionRule is a context-sensitive rewrite rule αAβ → αγβ.
// The rule fires only where LeftContext, Symbol and RightContext appear
// contiguously; only Symbol is replaced. Replacement is never shorter
// than Symbol, so every firing grows the string and no cycle can form.
type ProductionRule struct {
	ID           string
	LeftContext  string
	Symbol       string
	RightContext string
	Replacement  string
	Description  string
	// SVARule is the number of the classroom agreement rule this
	// production encodes.
	SVARule int
}

// Production renders the rule in αAβ → αγβ notation.
func (r ProductionRule) Production() string {
	return r.LeftContext + r.Symbol + r.RightContext + " → " +
		r.LeftContext + r.Replacement + r.RightContext
}

// matchAt reports whether the rule fires with Symbol starting at pos.
func (r ProductionRule) matchAt(s FeatureString, pos int) bool {
	symEnd := pos + len(r.Symbol)
	if symEnd > len(s) || string(s[pos:symEnd]) != r.Symbol {
		return false
	}
	leftStart := pos - len(r.LeftContext)
	if leftStart < 0 || string(s[leftStart:pos]) != r.LeftContext {
		return false
	}
	rightEnd := symEnd + len(r.RightContext)
	if rightEnd > len(s) || string(s[symEnd:rightEnd]) != r.RightContext {
		return false
	}
	return true
}

// applyAt rewrites Symbol at pos, keeping both contexts.
func (r ProductionRule) applyAt(s FeatureString, pos int) FeatureString {
	symEnd := pos + len(r.Symbol)
	return s[:pos] + FeatureString(r.Replacement) + s[symEnd:]
}

// findMatch returns the leftmost position where the rule fires, or -1.
func (r ProductionRule) findMatch(s FeatureString) int {
	// Scan occurrences of Symbol and verify contexts at each.
	from := 0
	for from <= len(s)-len(r.Symbol) {
		rel := strings.Index(string(s[from:]), r.Symbol)
		if rel < 0 {
			return -1
		}
		pos := from + rel
		if r.matchAt(s, pos) {
			return pos
		}
		from = pos + 1
	}
	return -1
}

// productionRules is the ordered rule table. Coordination, pronoun and
// special-category rules precede the generic agreement rules so the
// default cannot mask them. Each rule consumes the single separator
// space between the NP and VP tags and inserts the required VP tag in
// its place; with the space gone no rule can fire a second time.
var productionRules = []ProductionRule{
	// Rule 2: the pronouns "I" and "you" take plural verb forms.
	{"R2.1", "NP[i]", " ", "VP[", "VP[plural]",
		"Pronoun 'I' takes a plural verb form", 2},
	{"R2.2", "NP[you]", " ", "VP[", "VP[plural]",
		"Pronoun 'you' takes a plural verb form", 2},

	// Rule 3: subjects joined by "and" are plural.
	{"R3.1", "+[and]NP[singular]", " ", "VP[", "VP[plural]",
		"Subjects joined by 'and' require a plural verb", 3},
	{"R3.2", "+[and]NP[plural]", " ", "VP[", "VP[plural]",
		"Subjects joined by 'and' require a plural verb", 3},

	// Rule 4: with "or"/"nor" the verb agrees with the nearer conjunct.
	{"R4.1", "+[or]NP[singular]", " ", "VP[", "VP[singular]",
		"With 'or', the verb agrees with the nearest (singular) subject", 4},
	{"R4.2", "+[or]NP[plural]", " ", "VP[", "VP[plural]",
		"With 'or', the verb agrees with the nearest (plural) subject", 4},
	{"R4.3", "+[nor]NP[singular]", " ", "VP[", "VP[singular]",
		"With 'nor', the verb agrees with the nearest (singular) subject", 4},
	{"R4.4", "+[nor]NP[plural]", " ", "VP[", "VP[plural]",
		"With 'nor', the verb agrees with the nearest (plural) subject", 4},

	// Rule 5: indefinite pronouns are singular.
	{"R5", "NP[indefinite]", " ", "VP[", "VP[singular]",
		"Indefinite pronouns (everyone, somebody, each) take singular verbs", 5},

	// Rule 6: collective nouns act as one unit.
	{"R6", "NP[collective]", " ", "VP[", "VP[singular]",
		"Collective nouns (team, group, class) take singular verbs", 6},

	// Rule 8: amounts, time and money are singular.
	{"R8", "NP[unit]", " ", "VP[", "VP[singular]",
		"Amounts, time and money expressions take singular verbs", 8},

	// Rule 9: plural-looking singulars.
	{"R9", "NP[singular_plural]", " ", "VP[", "VP[singular]",
		"Titles, countries and fields like 'mathematics' take singular verbs", 9},

	// Rule 1: the generic agreement rules. Last on purpose.
	{"R1.1", "NP[singular]", " ", "VP[", "VP[singular]",
		"A singular subject requires a singular verb", 1},
	{"R1.2", "NP[plural]", " ", "VP[", "VP[plural]",
		"A plural subject requires a plural verb", 1},
}

// Rules returns a copy of the production-rule table in priority order.
func Rules() []ProductionRule {
	out := make([]ProductionRule, len(productionRules))
	copy(out, productionRules)
	return out
}
