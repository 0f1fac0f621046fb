package main

import (
	"net/http"
	"time"

	"github.com/btccom/scattersigner/abicache"
	"github.com/btccom/scattersigner/antelope"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewABICmd fetches contract ABIs from a chain API node
func NewABICmd() *cobra.Command {
	var (
		chainFlag string
		url       string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "abi <account>...",
		Short: "Fetch contract ABIs from a chain API node",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				if chainFlag == "" {
					return errors.New("either --url or --chain is required")
				}
				_, chain, err := resolveChain(chainFlag)
				if err != nil {
					return err
				}
				if chain == nil {
					return errors.New("--url is required for unknown chains")
				}
				url = chain.URL
			}

			accounts := make([]antelope.Name, 0, len(args))
			for _, arg := range args {
				account, err := antelope.NewName(arg)
				if err != nil {
					return err
				}
				accounts = append(accounts, account)
			}

			fetcher := abicache.NewHTTPFetcher(url, abicache.WithHTTPClient(&http.Client{Timeout: timeout}))
			cache := abicache.New(fetcher)

			out := make(map[string]interface{}, len(accounts))
			for _, account := range accounts {
				abi, err := cache.GetABI(cmd.Context(), account)
				if err != nil {
					return errors.Wrapf(err, "fetching %s", account)
				}
				out[account.String()] = abi
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&chainFlag, "chain", "", "Chain label or chain id, selects the default endpoint")
	cmd.Flags().StringVar(&url, "url", "", "Chain API endpoint")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	return cmd
}
