package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/btccom/scattersigner/antelope"
	"github.com/spf13/cobra"
)

type chainOutput struct {
	Label string               `json:"label"`
	ID    antelope.Checksum256 `json:"id"`
	URL   string               `json:"url"`
}

// NewChainsCmd lists the chain table used to resolve
// wallet accounts without a chain id.
func NewChainsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "chains",
		Short: "List the known chains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chains := antelope.KnownChains()

			if asJSON {
				out := make([]chainOutput, 0, len(chains))
				for _, chain := range chains {
					out = append(out, chainOutput{Label: chain.Label, ID: chain.ID, URL: chain.URL})
				}
				return printJSON(cmd.OutOrStdout(), out)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tCHAIN ID\tURL")
			for _, chain := range chains {
				fmt.Fprintf(w, "%s\t%s\t%s\n", chain.Label, chain.ID, chain.URL)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
