package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/veclint/veclint/internal/cli/output"
	"github.com/veclint/veclint/pkg/lint"
	_ "github.com/veclint/veclint/pkg/lint/rules" // register built-in rules
)

// ruleInfo is the JSON shape for one rule type.
type ruleInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ConfigKeys  []string `json:"config_keys,omitempty"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List available rule types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := RuntimeFrom(cmd)
			r := rt.Renderer

			defs := lint.AllRules()

			if r.EffectiveMode() == output.ModeJSON {
				infos := make([]ruleInfo, 0, len(defs))
				for _, def := range defs {
					infos = append(infos, ruleInfo{
						Name:        def.Name,
						Description: def.Description,
						ConfigKeys:  def.ConfigKeys,
					})
				}
				return r.JSON(infos)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Rule", "Description", "Reserved keys"})
			for _, def := range defs {
				t.AppendRow(table.Row{def.Name, def.Description, strings.Join(def.ConfigKeys, ", ")})
			}
			t.Render()
			return nil
		},
	}
}
