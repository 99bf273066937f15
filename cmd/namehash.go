package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/ensinfo/config"
	"github.com/tranvictor/ensinfo/ens"
	"github.com/tranvictor/ensinfo/util"
)

type nameHashResult struct {
	Input string `json:"input"`
	Name  string `json:"name"`
	Node  string `json:"node,omitempty"`
	Error string `json:"error,omitempty"`
}

const defaultTLD = "eth"

// prepareName applies the --tld, --normalize and --strict options to a
// scanned name.
func prepareName(input string) (string, error) {
	name := util.WithTLD(input, config.TLD)
	if config.Normalize {
		normalized, err := util.NormalizeName(name)
		if err != nil {
			return "", err
		}
		name = normalized
	}
	if config.Strict {
		tld := config.TLD
		if tld == "" {
			tld = defaultTLD
		}
		if err := util.CheckTLD(name, tld); err != nil {
			return "", err
		}
	}
	return name, nil
}

var namehashCmd = &cobra.Command{
	Use:   "namehash [names...]",
	Short: "Compute the ENS node of one or multiple names",
	Long: `Compute the ENS registry node (EIP-137 namehash) of every name found in
the params. Names can be wrapped in quotes, brackets or separated by commas.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		para, err := readParams(cmd, args)
		if err != nil {
			return err
		}
		inputs := util.ScanForNames(para)
		if len(inputs) == 0 {
			return fmt.Errorf("couldn't find any names in the params")
		}

		results := []nameHashResult{}
		errs := []error{}
		for _, input := range inputs {
			name, err := prepareName(input)
			if err != nil {
				errs = append(errs, err)
				results = append(results, nameHashResult{Input: input, Error: err.Error()})
				continue
			}
			results = append(results, nameHashResult{
				Input: input,
				Name:  name,
				Node:  ens.NameHash(name).Hex(),
			})
		}

		if config.JSONOutput {
			if err := printJSON(results); err != nil {
				return err
			}
			return reported(errs)
		}

		rows := [][]string{}
		for _, r := range results {
			if r.Error != "" {
				appUI.Error("%s: %s", r.Input, r.Error)
				continue
			}
			rows = append(rows, []string{r.Name, r.Node})
		}
		if len(rows) > 0 {
			appUI.Table([]string{"Name", "Node"}, rows)
		}
		return reported(errs)
	},
}

func init() {
	namehashCmd.Flags().BoolVarP(&config.Normalize, "normalize", "n", false, "Normalize names with UTS-46 before hashing.")
	namehashCmd.Flags().StringVarP(&config.TLD, "tld", "t", "", "Top level domain appended to names without a dot, eg. eth.")
	namehashCmd.Flags().BoolVarP(&config.Strict, "strict", "s", false, "Reject names that don't end with the --tld domain (eth when --tld is not set).")
	rootCmd.AddCommand(namehashCmd)
}
