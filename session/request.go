package session

import (
	"context"
	"encoding/json"

	"github.com/btccom/scattersigner/antelope"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRequest is returned when a signing request
	// can't be created from the provided values.
	ErrInvalidRequest = errors.New("invalid signing request")

	// ErrMissingABI is returned by Resolve when an action's
	// contract has no ABI in the provided set.
	ErrMissingABI = errors.New("missing abi")
)

// ABISet maps contract accounts to their raw ABI
type ABISet map[antelope.Name]json.RawMessage

// SigningRequest is an unresolved request to sign a
// transaction on a chain. Authorizations may still
// contain placeholder names.
type SigningRequest struct {
	ChainID     antelope.Checksum256
	Transaction *antelope.Transaction
}

// NewSigningRequest creates a request for tx on chainID.
// The transaction is copied.
func NewSigningRequest(chainID antelope.Checksum256, tx *antelope.Transaction) (*SigningRequest, error) {
	if chainID.IsZero() {
		return nil, errors.Wrap(ErrInvalidRequest, "chain id is required")
	}
	if tx == nil {
		return nil, errors.Wrap(ErrInvalidRequest, "transaction is required")
	}
	if len(tx.Actions) == 0 && len(tx.ContextFreeActions) == 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "transaction has no actions")
	}

	return &SigningRequest{
		ChainID:     chainID,
		Transaction: tx.Clone(),
	}, nil
}

// RequiredAccounts lists the contract of every action,
// in order of first appearance.
func (r *SigningRequest) RequiredAccounts() []antelope.Name {
	seen := make(map[antelope.Name]bool)
	var accounts []antelope.Name
	add := func(actions []antelope.Action) {
		for _, action := range actions {
			if !seen[action.Account] {
				seen[action.Account] = true
				accounts = append(accounts, action.Account)
			}
		}
	}
	add(r.Transaction.ContextFreeActions)
	add(r.Transaction.Actions)
	return accounts
}

// FetchABIs loads the ABI of every required account from
// provider.
func (r *SigningRequest) FetchABIs(ctx context.Context, provider ABIProvider) (ABISet, error) {
	if provider == nil {
		return nil, errors.New("no abi provider")
	}

	abis := make(ABISet)
	for _, account := range r.RequiredAccounts() {
		abi, err := provider.GetABI(ctx, account)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch abi for %s", account)
		}
		abis[account] = abi
	}
	return abis, nil
}

// Resolve binds the request to signer. Placeholder actors
// become signer.Actor and placeholder permissions become
// signer.Permission. Every action's contract must have
// an ABI in abis.
func (r *SigningRequest) Resolve(abis ABISet, signer antelope.PermissionLevel) (*ResolvedSigningRequest, error) {
	if signer.IsEmpty() {
		return nil, errors.Wrap(ErrInvalidRequest, "signer is required")
	}
	for _, account := range r.RequiredAccounts() {
		if _, ok := abis[account]; !ok {
			return nil, errors.Wrapf(ErrMissingABI, "no abi for %s", account)
		}
	}

	tx := r.Transaction.Clone()
	resolveAuthorizations(tx.ContextFreeActions, signer)
	resolveAuthorizations(tx.Actions, signer)

	serialized, err := tx.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize transaction")
	}

	return &ResolvedSigningRequest{
		Request:               r,
		Signer:                signer,
		Transaction:           tx,
		SerializedTransaction: serialized,
		ChainID:               r.ChainID,
		ABIs:                  abis,
	}, nil
}

func resolveAuthorizations(actions []antelope.Action, signer antelope.PermissionLevel) {
	for i := range actions {
		for j := range actions[i].Authorization {
			auth := &actions[i].Authorization[j]
			if auth.Actor == antelope.PlaceholderName {
				auth.Actor = signer.Actor
			}
			if auth.Permission == antelope.PlaceholderName || auth.Permission == antelope.PlaceholderPermission {
				auth.Permission = signer.Permission
			}
		}
	}
}

// ResolvedSigningRequest is a signing request bound to
// a signer, ready to be signed.
type ResolvedSigningRequest struct {
	Request               *SigningRequest
	Signer                antelope.PermissionLevel
	Transaction           *antelope.Transaction
	SerializedTransaction []byte
	ChainID               antelope.Checksum256
	ABIs                  ABISet
}

// TransactionID returns the id of the resolved transaction
func (r *ResolvedSigningRequest) TransactionID() antelope.Checksum256 {
	return antelope.TransactionID(r.SerializedTransaction)
}

// SigningDigest returns the digest each signature
// must be made over.
func (r *ResolvedSigningRequest) SigningDigest() []byte {
	return antelope.SigningDigest(r.ChainID, r.SerializedTransaction, nil)
}
