package grammar

import (
	"fmt"
	"strings"
)

// ParseTreeNode is a node of the labeled parse tree: a rooted ordered
// tree, no sharing between nodes. Phrase labels embed the number in
// parentheses ("NP (plural)"); the rendering layer keys on the
// "(singular)"/"(plural)" substrings to color-code a mismatch, so the
// label format is a consumer contract.
type ParseTreeNode struct {
	Label    string           `json:"label"`
	Text     string           `json:"text,omitempty"`
	Features *Features        `json:"features,omitempty"`
	Children []*ParseTreeNode `json:"children,omitempty"`
}

// phraseLabel renders a phrase-tag label with its number annotation.
func phraseLabel(tag string, n Number) string {
	return fmt.Sprintf("%s (%s)", tag, n)
}

// treeInput bundles what the tree builder needs from classification.
type treeInput struct {
	Words     []Token
	SubjIdx   int
	VerbIdx   int
	SubjF     Features
	VerbF     Features
	Coord     *coordination
	CoordF    [2]Features // conjunct features, valid when Coord != nil
	VerbIsAux bool
}

// buildParseTree builds Sentence → [NP, VP]. A leading determiner
// becomes a DET leaf inside the NP; a coordinated subject becomes two
// child NPs joined by a COORD leaf, with the parent NP carrying the
// resolved number; an auxiliary verb keeps the following main verb as
// a sibling V leaf.
func (lx *Lexicon) buildParseTree(in treeInput) *ParseTreeNode {
	np := &ParseTreeNode{Label: phraseLabel("NP", in.SubjF.Number)}
	if in.SubjIdx > 0 && lx.determiners[strings.ToLower(in.Words[0].Text)] {
		np.Children = append(np.Children, &ParseTreeNode{Label: "DET", Text: in.Words[0].Text})
	}
	if in.Coord != nil {
		f1, f2 := in.CoordF[0], in.CoordF[1]
		np.Children = append(np.Children,
			&ParseTreeNode{
				Label: phraseLabel("NP", f1.Number),
				Children: []*ParseTreeNode{
					{Label: "N", Text: in.Words[in.Coord.First].Text, Features: &f1},
				},
			},
			&ParseTreeNode{Label: "COORD", Text: in.Coord.Coordinator},
			&ParseTreeNode{
				Label: phraseLabel("NP", f2.Number),
				Children: []*ParseTreeNode{
					{Label: "N", Text: in.Words[in.Coord.Second].Text, Features: &f2},
				},
			},
		)
	} else {
		sf := in.SubjF
		np.Children = append(np.Children, &ParseTreeNode{
			Label:    "N",
			Text:     in.Words[in.SubjIdx].Text,
			Features: &sf,
		})
	}

	vp := &ParseTreeNode{Label: phraseLabel("VP", in.VerbF.Number)}
	vf := in.VerbF
	if in.VerbIsAux && in.VerbIdx+1 < len(in.Words) {
		vp.Children = append(vp.Children,
			&ParseTreeNode{Label: "AUX", Text: in.Words[in.VerbIdx].Text, Features: &vf},
			&ParseTreeNode{Label: "V", Text: in.Words[in.VerbIdx+1].Text},
		)
	} else {
		vp.Children = append(vp.Children, &ParseTreeNode{
			Label:    "V",
			Text:     in.Words[in.VerbIdx].Text,
			Features: &vf,
		})
	}

	return &ParseTreeNode{Label: "S", Children: []*ParseTreeNode{np, vp}}
}
