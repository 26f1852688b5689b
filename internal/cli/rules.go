package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/rules"
)

// rulesOutput is the JSON form of the rules command
type rulesOutput struct {
	Rules rules.Config      `json:"rules"`
	Units []model.UnitStats `json:"units"`
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the effective rules and unit stats",
		Long: `Print the rules in effect (defaults, or --rules file) as YAML, followed by
the unit stat table. The YAML output is a valid rules file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesCfg, err := cfg.LoadRules()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if isJSON() {
				return json.NewEncoder(w).Encode(rulesOutput{Rules: rulesCfg, Units: unitStatsTable()})
			}

			data, err := yaml.Marshal(rulesCfg)
			if err != nil {
				return err
			}
			if _, err := w.Write(data); err != nil {
				return err
			}
			fmt.Fprintln(w)

			table := tablewriter.NewTable(w,
				tablewriter.WithHeader([]string{"Unit", "For Sale", "Cost", "HP", "Armor", "Damage"}),
			)
			for _, stats := range unitStatsTable() {
				forSale := "no"
				if stats.ForSale {
					forSale = "yes"
				}
				_ = table.Append([]string{
					stats.Name,
					forSale,
					strconv.Itoa(stats.Cost),
					strconv.Itoa(stats.BaseHP),
					strconv.Itoa(stats.Armor),
					strconv.Itoa(stats.Damage),
				})
			}
			return table.Render()
		},
	}
}

func unitStatsTable() []model.UnitStats {
	kinds := model.AllUnitKinds()
	stats := make([]model.UnitStats, 0, len(kinds))
	for _, kind := range kinds {
		s, err := model.StatsFor(kind)
		if err != nil {
			continue
		}
		stats = append(stats, s)
	}
	return stats
}
