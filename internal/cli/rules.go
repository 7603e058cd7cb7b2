package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhradilek/check-links/internal/ui/pretty"
	"github.com/jhradilek/check-links/pkg/document"
	"github.com/jhradilek/check-links/pkg/lint"
	_ "github.com/jhradilek/check-links/pkg/lint/rules" // Register built-in rules
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Types       []string `json:"types,omitempty"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available validation rules",
		Long: `List all available validation rules with their IDs, names,
descriptions, and the module types they apply to.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			if format == formatJSON {
				return printRulesJSON(cmd, rules)
			}

			colorMode, _ := cmd.Flags().GetString("color")
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

			for _, rule := range rules {
				types := strings.Join(ruleTypes(rule), ", ")
				if types == "" {
					types = "all"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%s)\n        %s\n",
					styles.Bold.Render(rule.ID()),
					rule.Name(),
					types,
					styles.Dim.Render(rule.Description()),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// ruleTypes returns the names of the module types a rule applies to, or
// nil when the rule applies to every type.
func ruleTypes(rule lint.Rule) []string {
	typed, ok := rule.(interface{ Types() []document.Type })
	if !ok {
		return nil
	}

	var names []string
	for _, t := range typed.Types() {
		names = append(names, t.String())
	}
	return names
}

// printRulesJSON outputs rules as a JSON array.
func printRulesJSON(cmd *cobra.Command, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Types:       ruleTypes(rule),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
