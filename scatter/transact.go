package scatter

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/btccom/scattersigner/antelope"
	"github.com/btccom/scattersigner/session"
	"github.com/pkg/errors"
)

// transactRoundTrip sends the plain transaction to the
// wallet's transact call. The wallet may return a
// different transaction than the one it was given.
type transactRoundTrip struct {
	bridge *Bridge
	wallet TransactWallet
}

func (t *transactRoundTrip) exchange(ctx context.Context, id string, resolved *session.ResolvedSigningRequest, tctx *session.TransactContext) (*session.WalletPluginSignResponse, error) {
	const op = "transact"

	if err := t.bridge.Connect(ctx, tctx.AppName); err != nil {
		return nil, err
	}

	if tctx.Chain == nil {
		return nil, newError(op, ErrInvalidChain, errors.New("transact context has no chain"))
	}
	if tctx.Chain.ID != resolved.ChainID {
		return nil, newError(op, ErrInvalidChain, errors.Errorf("request is for chain %s, session is on %s", resolved.ChainID, tctx.Chain.ID))
	}
	network, err := BuildNetwork(*tctx.Chain)
	if err != nil {
		return nil, err
	}

	plain, err := json.Marshal(resolved.Transaction)
	if err != nil {
		return nil, newError(op, ErrSigningFailed, errors.Wrap(err, "failed to encode transaction"))
	}

	result, err := t.wallet.Transact(ctx, TransactArgs{
		Network:     *network,
		Transaction: plain,
	}, TransactOptions{Broadcast: false})
	if err != nil {
		return nil, newError(op, ErrSigningFailed, err)
	}
	if result == nil {
		return nil, newError(op, ErrSigningFailed, errors.New("wallet returned no result"))
	}
	log.Tracef("[%s] transact result: %v", id, dump(result))

	signatures, err := parseSignatures(result.Signatures)
	if err != nil {
		return nil, newError(op, ErrSigningFailed, err)
	}

	returned, err := antelope.DecodeTransaction(result.SerializedTransaction)
	if err != nil {
		return nil, newError(op, ErrSigningFailed, errors.Wrap(err, "failed to decode wallet transaction"))
	}

	if returned.Equal(resolved.Transaction) && bytes.Equal(result.SerializedTransaction, resolved.SerializedTransaction) {
		return &session.WalletPluginSignResponse{
			Signatures: signatures,
			Resolved:   resolved,
		}, nil
	}

	log.Infof("[%s] wallet modified the transaction, resolving a new request", id)

	modified, err := t.resolveModified(ctx, returned, resolved, tctx)
	if err != nil {
		return nil, newError(op, ErrSigningFailed, err)
	}
	if !bytes.Equal(modified.SerializedTransaction, result.SerializedTransaction) {
		return nil, newError(op, ErrSigningFailed, errors.New("resolved transaction differs from the one the wallet signed"))
	}

	return &session.WalletPluginSignResponse{
		Signatures: signatures,
		Resolved:   modified,
	}, nil
}

// resolveModified builds and resolves a new request around
// the transaction the wallet returned.
func (t *transactRoundTrip) resolveModified(ctx context.Context, tx *antelope.Transaction, original *session.ResolvedSigningRequest, tctx *session.TransactContext) (*session.ResolvedSigningRequest, error) {
	chainID := tctx.ESROptions.ChainID
	if chainID.IsZero() {
		chainID = original.ChainID
	}

	request, err := session.NewSigningRequest(chainID, tx)
	if err != nil {
		return nil, err
	}

	abis, err := request.FetchABIs(ctx, tctx.ABICache)
	if err != nil {
		return nil, err
	}

	signer := tctx.PermissionLevel
	if signer.IsEmpty() {
		signer = original.Signer
	}

	return request.Resolve(abis, signer)
}

func parseSignatures(raw []string) ([]antelope.Signature, error) {
	if len(raw) == 0 {
		return nil, errors.New("wallet returned no signatures")
	}

	signatures := make([]antelope.Signature, len(raw))
	for i, s := range raw {
		sig, err := antelope.ParseSignature(s)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signatures[i] = sig
	}
	return signatures, nil
}
