package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/ensinfo/config"
	"github.com/tranvictor/ensinfo/ens"
	"github.com/tranvictor/ensinfo/ui"
	"github.com/tranvictor/ensinfo/util"
)

type contentHashResult struct {
	Raw        string     `json:"raw"`
	Identifier string     `json:"identifier,omitempty"`
	Scheme     ens.Scheme `json:"scheme,omitempty"`
	URI        string     `json:"uri,omitempty"`
	CID        string     `json:"cid,omitempty"`
	Multihash  string     `json:"multihash,omitempty"`
	Error      string     `json:"error,omitempty"`
	Warning    string     `json:"warning,omitempty"`
}

func schemeSeverity(scheme ens.Scheme) ui.Severity {
	switch scheme {
	case ens.SchemeIPFS, ens.SchemeIPNS:
		return ui.SeveritySuccess
	case ens.SchemeSwarm:
		return ui.SeverityInfo
	default:
		return ui.SeverityWarn
	}
}

// analyzeContentHash decodes raw and, for content addressed schemes, the
// CID and multihash behind the identifier. A CID that doesn't parse is only
// a warning, the identifier itself was decoded fine.
func analyzeContentHash(raw string) (contentHashResult, error) {
	result := contentHashResult{Raw: raw}
	decoded, err := ens.DecodeContentHash(raw)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.Identifier = decoded.Identifier
	result.Scheme = decoded.Scheme
	result.URI = decoded.URI()
	if !decoded.Scheme.ContentAddressed() {
		return result, nil
	}

	id, err := decoded.CID()
	if err != nil {
		result.Warning = err.Error()
		return result, nil
	}
	result.CID = fmt.Sprintf("v%d, codec 0x%x", id.Version(), id.Type())
	mh, err := decoded.Multihash()
	if err != nil {
		result.Warning = err.Error()
		return result, nil
	}
	result.Multihash = fmt.Sprintf("%s, %d bytes", mh.Name, mh.Length)
	return result, nil
}

func showContentHash(r contentHashResult) {
	appUI.Section(r.Raw)
	block := appUI.Indent()
	if r.Error != "" {
		block.Error("%s", r.Error)
		return
	}
	rows := [][2]string{
		{"Decoded", r.Identifier},
		{"Type", appUI.Style(ui.StyledText{Text: r.Scheme.String(), Severity: schemeSeverity(r.Scheme)})},
		{"URI", r.URI},
	}
	if r.CID != "" {
		rows = append(rows, [2]string{"CID", r.CID})
	}
	if r.Multihash != "" {
		rows = append(rows, [2]string{"Multihash", r.Multihash})
	}
	block.KeyValue(rows)
	if r.Warning != "" {
		block.Warn("%s", r.Warning)
	} else if r.CID != "" {
		block.Success("valid %s CID", r.Scheme)
	}
}

var contenthashCmd = &cobra.Command{
	Use:   "contenthash [hex...]",
	Short: "Decode one or multiple raw ENS contenthash records",
	Long: `Decode the 0x prefixed hex form of ENS contenthash records (EIP-1577).

	0xe3... is shown as an ipfs-ns base58 identifier
	0xe4... is shown as swarm-ns text
	0xe5... is shown as an ipns-ns base58 identifier
	anything else is shown as utf-8 text (legacy records)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		para, err := readParams(cmd, args)
		if err != nil {
			return err
		}
		raws := util.ScanForContentHashes(para)
		if len(raws) == 0 {
			return fmt.Errorf("couldn't find any 0x prefixed content hash in the params")
		}

		results := []contentHashResult{}
		errs := []error{}
		for _, raw := range raws {
			result, err := analyzeContentHash(raw)
			if err != nil {
				errs = append(errs, err)
			}
			results = append(results, result)
		}

		if config.JSONOutput {
			if err := printJSON(results); err != nil {
				return err
			}
			return reported(errs)
		}
		for _, r := range results {
			showContentHash(r)
		}
		return reported(errs)
	},
}

func init() {
	rootCmd.AddCommand(contenthashCmd)
}
