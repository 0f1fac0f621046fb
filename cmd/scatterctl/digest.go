package main

import (
	"encoding/hex"
	"strings"

	"github.com/btccom/scattersigner/antelope"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type digestOutput struct {
	ChainID       antelope.Checksum256  `json:"chain_id"`
	TransactionID antelope.Checksum256  `json:"transaction_id"`
	SigningDigest antelope.HexBytes     `json:"signing_digest"`
	Transaction   *antelope.Transaction `json:"transaction"`
}

// decodeHex decodes s, which may carry a 0x prefix
func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
}

// computeDigest decodes the serialized transaction and
// computes what a wallet signs for it on chainID.
func computeDigest(chainID antelope.Checksum256, txHex string, cfdHex string) (*digestOutput, error) {
	raw, err := decodeHex(txHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid transaction hex")
	}
	tx, err := antelope.DecodeTransaction(raw)
	if err != nil {
		return nil, err
	}

	var cfd []byte
	if cfdHex != "" {
		cfd, err = decodeHex(cfdHex)
		if err != nil {
			return nil, errors.Wrap(err, "invalid context free data hex")
		}
	}

	return &digestOutput{
		ChainID:       chainID,
		TransactionID: antelope.TransactionID(raw),
		SigningDigest: antelope.SigningDigest(chainID, raw, cfd),
		Transaction:   tx,
	}, nil
}

// NewDigestCmd prints the id and signing digest of a
// serialized transaction.
func NewDigestCmd() *cobra.Command {
	var (
		chainFlag string
		cfdHex    string
	)

	cmd := &cobra.Command{
		Use:   "digest <transaction hex>",
		Short: "Compute the transaction id and signing digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chainID, _, err := resolveChain(chainFlag)
			if err != nil {
				return err
			}

			out, err := computeDigest(chainID, args[0], cfdHex)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&chainFlag, "chain", "", "Chain label or chain id")
	cmd.Flags().StringVar(&cfdHex, "context-free-data", "", "Packed context free data, in hex")
	_ = cmd.MarkFlagRequired("chain")

	return cmd
}
