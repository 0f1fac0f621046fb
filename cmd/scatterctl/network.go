package main

import (
	"github.com/btccom/scattersigner/scatter"
	"github.com/btccom/scattersigner/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewNetworkCmd prints the network descriptor the wallet
// is given for a chain.
func NewNetworkCmd() *cobra.Command {
	var chainFlag string

	cmd := &cobra.Command{
		Use:   "network [url]",
		Short: "Build the wallet network descriptor for a chain",
		Long: `Build the network descriptor offered to the wallet at login.

Examples:
  # Descriptor for a known chain, using its default endpoint
  scatterctl network --chain wax

  # Descriptor for a custom endpoint
  scatterctl network http://127.0.0.1:8888 --chain 1064487b3cd1a897ce03ae5b6a865651747e2e152090f99c1d19d44e01aea5a4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, chain, err := resolveChain(chainFlag)
			if err != nil {
				return err
			}

			var url string
			switch {
			case len(args) == 1:
				url = args[0]
			case chain != nil:
				url = chain.URL
			default:
				return errors.New("an url is required for unknown chains")
			}

			network, err := scatter.BuildNetwork(session.ChainDefinition{ID: id, URL: url})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), network)
		},
	}

	cmd.Flags().StringVar(&chainFlag, "chain", "", "Chain label or chain id")
	_ = cmd.MarkFlagRequired("chain")

	return cmd
}
