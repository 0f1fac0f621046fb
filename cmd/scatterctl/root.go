package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/btccom/scattersigner/abicache"
	"github.com/btccom/scattersigner/antelope"
	"github.com/btccom/scattersigner/scatter"
	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the scatterctl command tree
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "scatterctl",
		Short: "Inspect what the scatter plugin sends to and gets from the wallet",
		Long: `scatterctl exercises the scatter plugin's building blocks offline.

It can list the known chains, build the network descriptor offered
to the wallet, compute transaction ids and signing digests, recover
the key behind a signature and fetch contract ABIs from a chain API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Logging level (trace, debug, info, warn, error, critical, off)")

	cmd.AddCommand(
		NewChainsCmd(),
		NewNetworkCmd(),
		NewDigestCmd(),
		NewVerifyCmd(),
		NewABICmd(),
	)

	return cmd
}

// setupLogging routes the library loggers to w
func setupLogging(w io.Writer, level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return errors.Errorf("invalid log level %q", level)
	}

	backend := btclog.NewBackend(w)

	scatterLog := backend.Logger("SCTR")
	scatterLog.SetLevel(lvl)
	scatter.UseLogger(scatterLog)

	abiLog := backend.Logger("ABIC")
	abiLog.SetLevel(lvl)
	abicache.UseLogger(abiLog)

	return nil
}

// resolveChain accepts a chain label or a hex chain id
func resolveChain(s string) (antelope.Checksum256, *antelope.Chain, error) {
	if chain, err := antelope.LookupChain(s); err == nil {
		return chain.ID, chain, nil
	}

	id, err := antelope.NewChecksum256(strings.ToLower(s))
	if err != nil {
		return antelope.Checksum256{}, nil, errors.Errorf("%q is neither a known chain nor a chain id", s)
	}

	chain, err := antelope.LookupChainByID(id)
	if err != nil {
		return id, nil, nil
	}
	return id, chain, nil
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
