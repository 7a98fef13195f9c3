package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/lutlib/pkg/lutlib"
)

// generateRulesDocs generates the library rules reference page.
func generateRulesDocs(outDir string) error {
	log.Printf("Generating rules docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lutlib.Rules()

	w := NewMarkdownWriter()
	w.Frontmatter("Library Rules", "Sanity checks applied to LUT libraries")
	w.GeneratedMarker()

	w.Header(1, "Library Rules")
	w.Paragraph(fmt.Sprintf("lutlib checks every parsed library against **%d rules**. "+
		"Findings are warnings and the library stays usable; run with %s to treat them as errors.",
		len(rules), InlineCode("--strict")))

	var rows [][]string
	for _, rule := range rules {
		link := fmt.Sprintf("[%s](#%s)", rule.ID, rule.ID)
		rows = append(rows, []string{link, InlineCode(rule.Name), cleanDescription(rule.Description)})
	}
	w.Table([]string{"ID", "Name", "Description"}, rows)

	for _, rule := range rules {
		writeRuleDoc(w, rule)
	}

	if err := os.WriteFile(filepath.Join(outDir, "rules.md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated rules.md")
	return nil
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule lutlib.RuleInfo) {
	// Rule header with anchor: ### LUT001 - delay.non_positive {#LUT001}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.ID, rule.Name, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.Severity.String())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rule.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("text", rule.BadExample)
	}
	if rule.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("text", rule.GoodExample)
	}

	w.Line("---")
	w.Newline()
}
