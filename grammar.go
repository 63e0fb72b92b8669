// Package grammar analyzes a single English sentence for subject–verb
// number agreement and explains the verdict as a sequence of
// context-sensitive production-rule applications plus a labeled parse
// tree.
//
// The analysis is a pure function of the sentence: the lexical tables
// and the rule table are built once and never mutated, so one Analyzer
// may serve concurrent requests without locking.
package grammar

import "fmt"

// Status is the agreement verdict.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Variant selects the analysis engine.
type Variant string

const (
	// VariantCSG runs the full context-sensitive derivation and
	// reports every rule firing.
	VariantCSG Variant = "csg"
	// VariantRule checks agreement directly from the classified
	// features and reports no derivation.
	VariantRule Variant = "rule"
)

// ProblemSpan locates a mismatching constituent in the sentence. Start
// and End are the literal token offsets from tokenization.
type ProblemSpan struct {
	Start           int       `json:"start"`
	End             int       `json:"end"`
	Type            string    `json:"type"`
	Text            string    `json:"text"`
	Features        Features  `json:"features"`
	SubjectFeatures *Features `json:"subject_features,omitempty"`
	VerbFeatures    *Features `json:"verb_features,omitempty"`
}

// CSGAnalysis summarizes the derivation for the csg variant.
type CSGAnalysis struct {
	InitialString  FeatureString `json:"initial_string"`
	FinalString    FeatureString `json:"final_string"`
	ExpectedString FeatureString `json:"expected_string,omitempty"`
	RulesApplied   int           `json:"rules_applied"`
}

// AnalysisResult is the complete outcome of one analysis. It is
// produced fresh per call; nothing is shared between results.
type AnalysisResult struct {
	Status              Status           `json:"status"`
	Message             string           `json:"message"`
	ProblemSpans        []ProblemSpan    `json:"problem_spans"`
	ParseTree           *ParseTreeNode   `json:"parse_tree"`
	Derivation          []DerivationStep `json:"derivation"`
	SuggestedCorrection string           `json:"suggested_correction,omitempty"`
	CSGAnalysis         *CSGAnalysis     `json:"csg_analysis,omitempty"`
}

// Analyzer holds the lexical tables and the production-rule table.
// Build it once with New and share it freely.
type Analyzer struct {
	lex *Lexicon
}

// New returns a ready-to-use Analyzer.
func New() *Analyzer {
	return &Analyzer{lex: NewLexicon()}
}

// Analyze classifies the sentence, runs the selected engine and
// returns the verdict with its parse tree, derivation trace and, on a
// mismatch, a suggested correction.
//
// It fails with ErrEmptyInput on a blank sentence, with
// *UnrecognizedTokenError when no subject or verb head can be located,
// and with a wrapped internal-consistency error if the rule table ever
// stops terminating.
func (a *Analyzer) Analyze(sentence string, variant Variant) (*AnalysisResult, error) {
	switch variant {
	case "":
		variant = VariantCSG
	case VariantCSG, VariantRule:
	default:
		return nil, fmt.Errorf("unknown engine variant %q", variant)
	}

	tokens, err := Tokenize(sentence)
	if err != nil {
		return nil, err
	}
	words := wordTokens(tokens)
	if len(words) == 0 {
		return nil, &UnrecognizedTokenError{Missing: "subject"}
	}
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}

	subjIdx := a.lex.findSubject(texts)
	if subjIdx < 0 {
		return nil, &UnrecognizedTokenError{Missing: "subject"}
	}
	coord := a.lex.detectCoordination(texts, subjIdx)

	after := subjIdx
	if coord != nil {
		after = coord.Second
	}
	verbIdx, isAux := a.lex.findVerb(texts, after)
	if verbIdx < 0 {
		return nil, &UnrecognizedTokenError{Missing: "verb"}
	}
	verbTok := words[verbIdx]
	verbF := a.lex.classifyVerb(verbTok.Text)

	var subjF Features
	var coordF [2]Features
	var displaySubject string
	if coord != nil {
		coordF[0] = a.lex.classifySubject(texts[coord.First])
		coordF[1] = a.lex.classifySubject(texts[coord.Second])
		subjF = Features{Number: coord.Number, Category: CategoryCoordinated}
		displaySubject = texts[coord.First] + " " + coord.Coordinator + " " + texts[coord.Second]
	} else {
		subjF = a.lex.classifySubject(texts[subjIdx])
		displaySubject = texts[subjIdx]
	}

	agreement := subjF.Number == verbF.Number

	res := &AnalysisResult{
		ProblemSpans: []ProblemSpan{},
		Derivation:   []DerivationStep{},
	}

	if variant == VariantCSG {
		initial := FeatureString(subjectTag(subjF, displaySubject, coord, coordF[0].Number, coordF[1].Number) + " " + verbTag(verbF))
		steps, final, required, fired, derr := derive(initial)
		if derr != nil {
			return nil, derr
		}
		if fired && (required == verbF.Number) != agreement {
			return nil, fmt.Errorf("internal: derivation requires %s verb but classification disagrees (%q)", required, final)
		}
		res.Derivation = steps
		res.CSGAnalysis = &CSGAnalysis{
			InitialString: initial,
			FinalString:   final,
			RulesApplied:  len(steps) - 1,
		}
		if !agreement {
			res.CSGAnalysis.ExpectedString = FeatureString(
				fmt.Sprintf("NP[%s] VP[%s]", subjF.Number, subjF.Number))
		}
	}

	res.ParseTree = a.lex.buildParseTree(treeInput{
		Words:     words,
		SubjIdx:   subjIdx,
		VerbIdx:   verbIdx,
		SubjF:     subjF,
		VerbF:     verbF,
		Coord:     coord,
		CoordF:    coordF,
		VerbIsAux: isAux,
	})

	if agreement {
		res.Status = StatusOK
		res.Message = fmt.Sprintf(
			"Subject-verb agreement is correct. Subject '%s' (%s) agrees with verb '%s' (%s).",
			displaySubject, subjF.Number, verbTok.Text, verbF.Number)
		return res, nil
	}

	res.Status = StatusError
	verbNoun := "verb"
	if isAux {
		verbNoun = "auxiliary"
	}
	res.Message = fmt.Sprintf(
		"Subject-verb disagreement: '%s' (%s) does not agree with %s '%s' (%s).",
		displaySubject, subjF.Number, verbNoun, verbTok.Text, verbF.Number)

	subjStart, subjEnd := words[subjIdx].Start, words[subjIdx].End
	subjText := words[subjIdx].Text
	if coord != nil {
		subjStart = words[coord.First].Start
		subjEnd = words[coord.Second].End
		subjText = sentence[subjStart:subjEnd]
	}
	sf, vf := subjF, verbF
	res.ProblemSpans = []ProblemSpan{
		{
			Start:           subjStart,
			End:             subjEnd,
			Type:            "subject",
			Text:            subjText,
			Features:        subjF,
			SubjectFeatures: &sf,
			VerbFeatures:    &vf,
		},
		{
			Start:           verbTok.Start,
			End:             verbTok.End,
			Type:            "verb",
			Text:            verbTok.Text,
			Features:        verbF,
			SubjectFeatures: &sf,
			VerbFeatures:    &vf,
		},
	}
	res.SuggestedCorrection = a.lex.correctSentence(sentence, verbTok, subjF.Number)
	return res, nil
}
