package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/ensinfo/config"
	"github.com/tranvictor/ensinfo/ens"
	"github.com/tranvictor/ensinfo/util"
)

type labelHashResult struct {
	Label     string `json:"label"`
	LabelHash string `json:"labelhash"`
}

var labelhashCmd = &cobra.Command{
	Use:   "labelhash [labels...]",
	Short: "Compute the keccak256 hash of one or multiple labels",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		para, err := readParams(cmd, args)
		if err != nil {
			return err
		}
		labels := util.ScanForNames(para)
		if len(labels) == 0 {
			return fmt.Errorf("couldn't find any labels in the params")
		}

		results := []labelHashResult{}
		for _, label := range labels {
			if strings.Contains(label, ".") {
				appUI.Warn("%s contains a dot, use namehash for full names", label)
			}
			results = append(results, labelHashResult{
				Label:     label,
				LabelHash: ens.LabelHash(label).Hex(),
			})
		}

		if config.JSONOutput {
			return printJSON(results)
		}
		rows := [][]string{}
		for _, r := range results {
			rows = append(rows, []string{r.Label, r.LabelHash})
		}
		appUI.Table([]string{"Label", "Labelhash"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labelhashCmd)
}
