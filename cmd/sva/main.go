// Command sva analyzes a sentence for subject–verb agreement from the
// terminal, rendering the parse tree and the derivation trace.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	grammar "github.com/sva-visualizer/grammar"
)

var (
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleErr   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleRule  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

func main() {
	root := &cobra.Command{
		Use:   "sva",
		Short: "Subject–verb agreement analyzer",
		Long: "Analyzes a single English sentence for subject-verb number agreement\n" +
			"and explains the verdict as a sequence of grammar-rule applications.",
	}
	root.AddCommand(newAnalyzeCmd(), newRulesCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var engine string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <sentence>",
		Short: "Analyze a sentence and print the verdict",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence := strings.Join(args, " ")
			res, err := grammar.New().Analyze(sentence, grammar.Variant(engine))
			if err != nil {
				return err
			}
			if asJSON {
				raw, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(raw))
				return nil
			}
			render(res)
			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", string(grammar.VariantCSG), "analysis engine: csg or rule")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON result")
	return cmd
}

func render(res *grammar.AnalysisResult) {
	if res.Status == grammar.StatusOK {
		fmt.Println(styleOK.Render("✓ agreement ok"))
	} else {
		fmt.Println(styleErr.Render("✗ agreement error"))
	}
	fmt.Println(res.Message)

	if res.SuggestedCorrection != "" {
		fmt.Println()
		fmt.Printf("suggestion: %s\n", styleOK.Render(res.SuggestedCorrection))
	}

	fmt.Println()
	fmt.Println(styleDim.Render("parse tree"))
	printTree(res.ParseTree, 0)

	if len(res.Derivation) > 0 {
		fmt.Println()
		fmt.Println(styleDim.Render("derivation"))
		for _, step := range res.Derivation {
			if step.Rule == "" {
				fmt.Printf("  %d. %s\n", step.Step, step.Result)
				continue
			}
			fmt.Printf("  %d. %s  %s\n", step.Step, step.Result, styleRule.Render(step.Rule))
			fmt.Printf("     %s\n", styleDim.Render(step.Description))
		}
	}
}

func printTree(node *grammar.ParseTreeNode, depth int) {
	if node == nil {
		return
	}
	line := strings.Repeat("  ", depth) + styleLabel.Render(node.Label)
	if node.Text != "" {
		line += " " + node.Text
	}
	fmt.Println(line)
	for _, child := range node.Children {
		printTree(child, depth+1)
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the production rules in priority order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range grammar.Rules() {
				fmt.Printf("%s  %s\n", styleRule.Render(fmt.Sprintf("%-5s", r.ID)), r.Production())
				fmt.Printf("       %s\n", styleDim.Render(r.Description))
			}
			return nil
		},
	}
}
