package grammar

import (
	"fmt"
	"strings"
)

// DerivationStep records one state of the rewriting system. Step 0 is
// the initial string and carries no rule. The sequence is append-only
// and deterministic: no timestamps, nothing derived from map order.
type DerivationStep struct {
	Step        int           `json:"step"`
	Result      FeatureString `json:"string"`
	Rule        string        `json:"rule,omitempty"`
	Production  string        `json:"production,omitempty"`
	Description string        `json:"description"`
	SVARule     int           `json:"sva_rule,omitempty"`
}

// subjectTag renders the NP non-terminal for the classified subject.
// Coordinated subjects keep both conjunct numbers visible so the
// coordination rules can fire on them; the special categories carry
// their category name; everything else carries its number.
func subjectTag(feats Features, head string, coord *coordination, first, second Number) string {
	if coord != nil {
		return fmt.Sprintf("NP[%s]+[%s]NP[%s]", first, coord.Coordinator, second)
	}
	switch feats.Category {
	case CategoryPronoun:
		h := strings.ToLower(head)
		if h == "i" || h == "you" {
			return "NP[" + h + "]"
		}
	case CategoryIndefinite, CategoryCollective, CategoryUnitNoun, CategorySingularPlural:
		return "NP[" + string(feats.Category) + "]"
	}
	return "NP[" + string(feats.Number) + "]"
}

// verbTag renders the VP non-terminal for the classified verb.
func verbTag(feats Features) string {
	return "VP[" + string(feats.Number) + "]"
}

// replacementNumber extracts the number from a rule replacement of the
// form "VP[...]". The rule table only uses singular/plural here.
func replacementNumber(replacement string) Number {
	inner := strings.TrimSuffix(strings.TrimPrefix(replacement, "VP["), "]")
	if inner == string(Plural) {
		return Plural
	}
	return Singular
}

// derive runs the rewriting system from the initial string to a fixed
// point: on each iteration the first rule in priority order that
// matches anywhere fires at its leftmost match, and the scan restarts
// from the head of the rule list. The rule table consumes the NP/VP
// separator on every firing, so the system terminates; the iteration
// cap only guards future rule-set edits.
//
// required is the verb number demanded by the last fired rule, valid
// only when fired is true.
func derive(initial FeatureString) (steps []DerivationStep, final FeatureString, required Number, fired bool, err error) {
	steps = append(steps, DerivationStep{
		Step:        0,
		Result:      initial,
		Description: "Initial feature string",
	})
	cur := initial
	maxIter := len(productionRules) + 2

	for iter := 0; ; iter++ {
		if iter >= maxIter {
			return nil, cur, required, fired,
				fmt.Errorf("%w after %d iterations at %q", errRuleExhaustion, iter, cur)
		}
		matched := false
		for _, r := range productionRules {
			pos := r.findMatch(cur)
			if pos < 0 {
				continue
			}
			cur = r.applyAt(cur, pos)
			steps = append(steps, DerivationStep{
				Step:        len(steps),
				Result:      cur,
				Rule:        r.ID,
				Production:  r.Production(),
				Description: r.Description,
				SVARule:     r.SVARule,
			})
			required = replacementNumber(r.Replacement)
			fired = true
			matched = true
			break
		}
		if !matched {
			break
		}
	}
	return steps, cur, required, fired, nil
}
