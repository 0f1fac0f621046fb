package main

import (
	"github.com/btccom/scattersigner/antelope"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type verifyOutput struct {
	PublicKey       string            `json:"public_key"`
	LegacyPublicKey string            `json:"legacy_public_key"`
	SigningDigest   antelope.HexBytes `json:"signing_digest"`
	Matches         *bool             `json:"matches,omitempty"`
}

type verifyOptions struct {
	chain     string
	txHex     string
	digestHex string
	key       string
}

// verifySignature recovers the key behind sig, over either
// the digest given directly or the one computed from the
// transaction and chain.
func verifySignature(sig string, opts verifyOptions) (*verifyOutput, error) {
	signature, err := antelope.ParseSignature(sig)
	if err != nil {
		return nil, err
	}

	var digest []byte
	switch {
	case opts.digestHex != "" && opts.txHex != "":
		return nil, errors.New("--digest and --tx are mutually exclusive")
	case opts.digestHex != "":
		digest, err = decodeHex(opts.digestHex)
		if err != nil {
			return nil, errors.Wrap(err, "invalid digest hex")
		}
		if len(digest) != 32 {
			return nil, errors.Errorf("digest must be 32 bytes, got %d", len(digest))
		}
	case opts.txHex != "":
		if opts.chain == "" {
			return nil, errors.New("--chain is required with --tx")
		}
		chainID, _, err := resolveChain(opts.chain)
		if err != nil {
			return nil, err
		}
		computed, err := computeDigest(chainID, opts.txHex, "")
		if err != nil {
			return nil, err
		}
		digest = computed.SigningDigest
	default:
		return nil, errors.New("either --digest or --tx is required")
	}

	recovered, err := signature.Recover(digest)
	if err != nil {
		return nil, err
	}

	out := &verifyOutput{
		PublicKey:       recovered.String(),
		LegacyPublicKey: recovered.LegacyString(),
		SigningDigest:   digest,
	}
	if opts.key != "" {
		expected, err := antelope.ParsePublicKey(opts.key)
		if err != nil {
			return nil, err
		}
		matches := expected.Equal(recovered)
		out.Matches = &matches
	}
	return out, nil
}

// NewVerifyCmd recovers the public key behind a signature
func NewVerifyCmd() *cobra.Command {
	var opts verifyOptions

	cmd := &cobra.Command{
		Use:   "verify <signature>",
		Short: "Recover the public key behind a signature",
		Long: `Recover the public key behind a SIG_K1_ signature.

Examples:
  # Recover over a transaction on a known chain
  scatterctl verify SIG_K1_... --chain eos --tx 80ad2a5c...

  # Recover over a digest and check the expected key
  scatterctl verify SIG_K1_... --digest e28c4bfb... --key EOS6MRy...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := verifySignature(args[0], opts)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if out.Matches != nil && !*out.Matches {
				return errors.Errorf("signature was not made by %s", opts.key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.chain, "chain", "", "Chain label or chain id, used with --tx")
	cmd.Flags().StringVar(&opts.txHex, "tx", "", "Serialized transaction, in hex")
	cmd.Flags().StringVar(&opts.digestHex, "digest", "", "Signing digest, in hex")
	cmd.Flags().StringVar(&opts.key, "key", "", "Expected public key")

	return cmd
}
