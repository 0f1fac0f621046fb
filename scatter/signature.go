package scatter

import (
	"context"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/btccom/scattersigner/antelope"
	"github.com/btccom/scattersigner/session"
	"github.com/pkg/errors"
)

// signatureBlockchain is the blockchain label of
// signature requests.
const signatureBlockchain = "eos"

// signatureRoundTrip asks the wallet to sign the serialized
// transaction with the session account's key. The
// transaction can't be changed by the wallet.
type signatureRoundTrip struct {
	bridge *Bridge
	wallet SignatureWallet
	state  SessionState
}

func (s *signatureRoundTrip) exchange(ctx context.Context, id string, resolved *session.ResolvedSigningRequest, tctx *session.TransactContext) (*session.WalletPluginSignResponse, error) {
	const op = "request signature"

	key, keyString, err := s.sessionKey(resolved.Signer)
	if err != nil {
		return nil, newError(op, ErrSessionMismatch, err)
	}

	abis, err := s.abis(ctx, resolved, tctx)
	if err != nil {
		return nil, newError(op, ErrSigningFailed, err)
	}

	if err := s.bridge.Connect(ctx, tctx.AppName); err != nil {
		return nil, err
	}

	payload := SignaturePayload{
		Blockchain:            signatureBlockchain,
		ChainID:               resolved.ChainID,
		ABIs:                  abis,
		RequiredKeys:          []string{keyString},
		SerializedTransaction: hex.EncodeToString(resolved.SerializedTransaction),
	}
	log.Tracef("[%s] signature payload: %v", id, dump(payload))

	result, err := s.wallet.RequestSignature(ctx, payload)
	if err != nil {
		return nil, newError(op, ErrSigningFailed, err)
	}
	if result == nil {
		return nil, newError(op, ErrSigningFailed, errors.New("wallet returned no result"))
	}

	signatures, err := parseSignatures(result.Signatures)
	if err != nil {
		return nil, newError(op, ErrSigningFailed, err)
	}

	digest := resolved.SigningDigest()
	for i, sig := range signatures {
		recovered, err := sig.Recover(digest)
		if err != nil {
			return nil, newError(op, ErrSigningFailed, errors.Wrapf(err, "signature %d", i))
		}
		if !recovered.Equal(key) {
			return nil, newError(op, ErrSigningFailed, errors.Errorf("signature %d is by %s, not a required key", i, recovered))
		}
	}

	return &session.WalletPluginSignResponse{
		Signatures: signatures,
		Resolved:   resolved,
	}, nil
}

// sessionKey checks the wallet's current account is the
// signer and returns its key.
func (s *signatureRoundTrip) sessionKey(signer antelope.PermissionLevel) (antelope.PublicKey, string, error) {
	account, ok := s.state.Account()
	if !ok || account == nil {
		return antelope.PublicKey{}, "", errors.New("wallet has no active account")
	}

	level, err := antelope.NewPermissionLevel(account.Name, account.Authority)
	if err != nil {
		return antelope.PublicKey{}, "", errors.Wrap(err, "wallet account is malformed")
	}
	if level != signer {
		return antelope.PublicKey{}, "", errors.Errorf("wallet is logged in as %s, request is for %s", level, signer)
	}

	keyString := strings.TrimSpace(account.PublicKey)
	if keyString == "" {
		return antelope.PublicKey{}, "", errors.Errorf("wallet account %s has no public key", level)
	}
	key, err := antelope.ParsePublicKey(keyString)
	if err != nil {
		return antelope.PublicKey{}, "", errors.Wrapf(err, "wallet account %s", level)
	}

	return key, keyString, nil
}

// abis returns the ABIs the request was resolved with,
// fetching them through the host's cache if it has none.
func (s *signatureRoundTrip) abis(ctx context.Context, resolved *session.ResolvedSigningRequest, tctx *session.TransactContext) ([]ABIEntry, error) {
	set := resolved.ABIs
	if len(set) == 0 {
		if resolved.Request == nil {
			return nil, errors.New("resolved request has no abis and no origin request")
		}
		fetched, err := resolved.Request.FetchABIs(ctx, tctx.ABICache)
		if err != nil {
			return nil, err
		}
		set = fetched
	}

	entries := make([]ABIEntry, 0, len(set))
	for account, abi := range set {
		entries = append(entries, ABIEntry{AccountName: account, ABI: abi})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].AccountName < entries[j].AccountName
	})
	return entries, nil
}
