package grammar

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyzeVerdicts(t *testing.T) {
	a := New()
	tests := []struct {
		sentence string
		status   Status
	}{
		{"The cat runs.", StatusOK},
		{"The cats run.", StatusOK},
		{"The cats runs.", StatusError},
		{"He runs fast.", StatusOK},
		{"I run.", StatusOK},
		{"I runs.", StatusError},
		{"You run.", StatusOK},
		{"Everyone loves music.", StatusOK},
		{"Everyone love music.", StatusError},
		{"The team wins.", StatusOK},
		{"The team win.", StatusError},
		{"Mathematics is difficult.", StatusOK},
		{"They don't run.", StatusOK},
		{"He doesn't run.", StatusOK},
		{"They doesn't run.", StatusError},
		{"The children plays.", StatusError},
		{"The children play.", StatusOK},
		{"The cat and the dog runs.", StatusError},
		{"The cat and the dog run.", StatusOK},
		{"The cat or the dogs run.", StatusOK},
		{"The cat or the dogs runs.", StatusError},
		{"Neither runs.", StatusOK},
		{"The café serves coffee.", StatusOK},
		{"The café serve coffee.", StatusError},
	}
	for _, tt := range tests {
		res, err := a.Analyze(tt.sentence, VariantCSG)
		if err != nil {
			t.Errorf("Analyze(%q): %v", tt.sentence, err)
			continue
		}
		if res.Status != tt.status {
			t.Errorf("Analyze(%q) = %s, want %s (message: %s)",
				tt.sentence, res.Status, tt.status, res.Message)
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := New()
	for _, s := range []string{"The cats runs.", "They don't run.", "The cat and the dog runs."} {
		r1, err := a.Analyze(s, VariantCSG)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", s, err)
		}
		r2, err := a.Analyze(s, VariantCSG)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", s, err)
		}
		if diff := cmp.Diff(r1, r2); diff != "" {
			t.Errorf("Analyze(%q) not idempotent (-first +second):\n%s", s, diff)
		}
		b1, _ := json.Marshal(r1)
		b2, _ := json.Marshal(r2)
		if string(b1) != string(b2) {
			t.Errorf("Analyze(%q) JSON differs between calls", s)
		}
	}
}

func TestAnalyzeOkBaseline(t *testing.T) {
	a := New()
	res, err := a.Analyze("He runs fast.", VariantCSG)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Status != StatusOK {
		t.Fatalf("status = %s, want ok", res.Status)
	}
	if len(res.ProblemSpans) != 0 {
		t.Errorf("problem spans = %+v, want empty", res.ProblemSpans)
	}
	if res.SuggestedCorrection != "" {
		t.Errorf("correction = %q, want none", res.SuggestedCorrection)
	}
}

func TestAnalyzeMismatchReport(t *testing.T) {
	a := New()
	res, err := a.Analyze("The children plays.", VariantCSG)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Status != StatusError {
		t.Fatalf("status = %s, want error", res.Status)
	}
	for _, frag := range []string{"children", "plural", "plays", "singular"} {
		if !strings.Contains(res.Message, frag) {
			t.Errorf("message %q does not cite %q", res.Message, frag)
		}
	}
	if res.SuggestedCorrection != "The children play." {
		t.Errorf("correction = %q, want %q", res.SuggestedCorrection, "The children play.")
	}
	if len(res.ProblemSpans) != 2 {
		t.Fatalf("got %d problem spans, want subject and verb", len(res.ProblemSpans))
	}
	sentence := "The children plays."
	for _, span := range res.ProblemSpans {
		if sentence[span.Start:span.End] != span.Text {
			t.Errorf("span %s offsets [%d:%d] slice to %q, want %q",
				span.Type, span.Start, span.End, sentence[span.Start:span.End], span.Text)
		}
	}
}

func TestAnalyzeCorrections(t *testing.T) {
	a := New()
	tests := []struct {
		sentence string
		want     string
	}{
		{"The cats runs.", "The cats run."},
		{"The cat run.", "The cat runs."},
		{"They doesn't run.", "They don't run."},
		{"He don't run.", "He doesn't run."},
		{"The cat and the dog runs.", "The cat and the dog run."},
		{"The children plays.", "The children play."},
		{"The dogs is loud.", "The dogs are loud."},
	}
	for _, tt := range tests {
		res, err := a.Analyze(tt.sentence, VariantCSG)
		if err != nil {
			t.Errorf("Analyze(%q): %v", tt.sentence, err)
			continue
		}
		if res.Status != StatusError {
			t.Errorf("Analyze(%q) = %s, want error", tt.sentence, res.Status)
			continue
		}
		if res.SuggestedCorrection != tt.want {
			t.Errorf("Analyze(%q) correction = %q, want %q",
				tt.sentence, res.SuggestedCorrection, tt.want)
		}
	}
}

func TestAnalyzeContractionNormalization(t *testing.T) {
	a := New()
	bare, err := a.Analyze("They dont run.", VariantCSG)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	apos, err := a.Analyze("They don't run.", VariantCSG)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if bare.Status != apos.Status {
		t.Errorf("status differs: %s vs %s", bare.Status, apos.Status)
	}
	if diff := cmp.Diff(bare.Derivation, apos.Derivation); diff != "" {
		t.Errorf("derivation differs between spellings:\n%s", diff)
	}
	// Messages match modulo the literal verb token.
	norm := func(s string) string { return strings.ReplaceAll(s, "don't", "dont") }
	if norm(bare.Message) != norm(apos.Message) {
		t.Errorf("messages differ beyond token text: %q vs %q", bare.Message, apos.Message)
	}
}

func TestAnalyzeCoordinationDerivation(t *testing.T) {
	a := New()
	res, err := a.Analyze("The cat and the dog runs.", VariantCSG)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.CSGAnalysis == nil {
		t.Fatal("no csg_analysis block")
	}
	if res.CSGAnalysis.InitialString != "NP[singular]+[and]NP[singular] VP[singular]" {
		t.Errorf("initial string = %q", res.CSGAnalysis.InitialString)
	}
	if res.CSGAnalysis.RulesApplied != 1 {
		t.Errorf("rules applied = %d, want 1", res.CSGAnalysis.RulesApplied)
	}
	if got := res.Derivation[len(res.Derivation)-1].Rule; got != "R3.1" {
		t.Errorf("last fired rule = %s, want R3.1", got)
	}
}

func TestAnalyzeParseTree(t *testing.T) {
	a := New()

	t.Run("simple", func(t *testing.T) {
		res, err := a.Analyze("The cat runs.", VariantCSG)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		tree := res.ParseTree
		if tree.Label != "S" || len(tree.Children) != 2 {
			t.Fatalf("root = %+v, want S with NP and VP", tree)
		}
		np, vp := tree.Children[0], tree.Children[1]
		if np.Label != "NP (singular)" {
			t.Errorf("NP label = %q", np.Label)
		}
		if vp.Label != "VP (singular)" {
			t.Errorf("VP label = %q", vp.Label)
		}
		if np.Children[0].Label != "DET" || np.Children[0].Text != "The" {
			t.Errorf("first NP child = %+v, want DET 'The'", np.Children[0])
		}
	})

	t.Run("mismatch labels disagree", func(t *testing.T) {
		res, err := a.Analyze("The cats runs.", VariantCSG)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		np, vp := res.ParseTree.Children[0], res.ParseTree.Children[1]
		if !strings.Contains(np.Label, "(plural)") || !strings.Contains(vp.Label, "(singular)") {
			t.Errorf("labels %q / %q do not expose the mismatch", np.Label, vp.Label)
		}
	})

	t.Run("coordinated subject", func(t *testing.T) {
		res, err := a.Analyze("The cat and the dog runs.", VariantCSG)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		np := res.ParseTree.Children[0]
		if np.Label != "NP (plural)" {
			t.Errorf("parent NP label = %q, want resolved plural", np.Label)
		}
		var labels []string
		for _, c := range np.Children {
			labels = append(labels, c.Label)
		}
		want := []string{"DET", "NP (singular)", "COORD", "NP (singular)"}
		if diff := cmp.Diff(want, labels); diff != "" {
			t.Errorf("NP children (-want +got):\n%s", diff)
		}
	})

	t.Run("auxiliary sibling", func(t *testing.T) {
		res, err := a.Analyze("They don't run.", VariantCSG)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		vp := res.ParseTree.Children[1]
		if len(vp.Children) != 2 || vp.Children[0].Label != "AUX" || vp.Children[1].Label != "V" {
			t.Errorf("VP children = %+v, want AUX + V", vp.Children)
		}
	})
}

func TestAnalyzeRuleVariant(t *testing.T) {
	a := New()
	res, err := a.Analyze("The cats runs.", VariantRule)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Status != StatusError {
		t.Errorf("status = %s, want error", res.Status)
	}
	if len(res.Derivation) != 0 {
		t.Errorf("rule variant produced %d derivation steps, want none", len(res.Derivation))
	}
	if res.CSGAnalysis != nil {
		t.Errorf("rule variant produced csg_analysis: %+v", res.CSGAnalysis)
	}

	// Both variants must agree on every verdict.
	for _, s := range []string{"The cat runs.", "The cats runs.", "They don't run.", "The cat and the dog runs."} {
		csg, err := a.Analyze(s, VariantCSG)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", s, err)
		}
		rule, err := a.Analyze(s, VariantRule)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", s, err)
		}
		if csg.Status != rule.Status {
			t.Errorf("variants disagree on %q: csg=%s rule=%s", s, csg.Status, rule.Status)
		}
	}
}

func TestAnalyzeErrors(t *testing.T) {
	a := New()

	if _, err := a.Analyze("   ", VariantCSG); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("whitespace sentence: err = %v, want ErrEmptyInput", err)
	}
	if _, err := a.Analyze("", ""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty sentence: err = %v, want ErrEmptyInput", err)
	}

	var ute *UnrecognizedTokenError
	if _, err := a.Analyze("?!", VariantCSG); !errors.As(err, &ute) {
		t.Errorf("punctuation-only sentence: err = %v, want UnrecognizedTokenError", err)
	} else if ute.Missing != "subject" {
		t.Errorf("missing constituent = %q, want subject", ute.Missing)
	}

	ute = nil
	if _, err := a.Analyze("The cat.", VariantCSG); !errors.As(err, &ute) {
		t.Errorf("verbless sentence: err = %v, want UnrecognizedTokenError", err)
	} else if ute.Missing != "verb" {
		t.Errorf("missing constituent = %q, want verb", ute.Missing)
	}

	if _, err := a.Analyze("The cat runs.", "fancy"); err == nil {
		t.Error("unknown variant accepted")
	}
}

func TestAnalyzeJSONShape(t *testing.T) {
	a := New()
	res, err := a.Analyze("The cats runs.", VariantCSG)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"status", "message", "problem_spans", "parse_tree", "derivation", "suggested_correction", "csg_analysis"} {
		if _, ok := m[key]; !ok {
			t.Errorf("serialized result missing %q", key)
		}
	}
	if m["status"] != "error" {
		t.Errorf("status = %v, want error", m["status"])
	}
}
