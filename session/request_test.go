package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/btccom/scattersigner/antelope"
	"github.com/pkg/errors"
	_assert "github.com/stretchr/testify/require"
)

type mapABIProvider struct {
	abis  map[antelope.Name]json.RawMessage
	calls []antelope.Name
}

func (p *mapABIProvider) GetABI(ctx context.Context, account antelope.Name) (json.RawMessage, error) {
	p.calls = append(p.calls, account)
	abi, ok := p.abis[account]
	if !ok {
		return nil, errors.Errorf("no abi for %s", account)
	}
	return abi, nil
}

func placeholderTx() *antelope.Transaction {
	return &antelope.Transaction{
		TransactionHeader: antelope.TransactionHeader{
			Expiration:     antelope.TimePointSec(1546300800),
			RefBlockNum:    1234,
			RefBlockPrefix: 5678,
		},
		Actions: []antelope.Action{
			{
				Account: antelope.MustName("eosio.token"),
				Name:    antelope.MustName("transfer"),
				Authorization: []antelope.PermissionLevel{
					{Actor: antelope.PlaceholderName, Permission: antelope.PlaceholderPermission},
				},
				Data: antelope.HexBytes{0x01, 0x02, 0x03, 0x04},
			},
			{
				Account: antelope.MustName("eosio.token"),
				Name:    antelope.MustName("transfer"),
				Authorization: []antelope.PermissionLevel{
					antelope.MustPermissionLevel("bob@owner"),
				},
			},
			{
				Account: antelope.MustName("eosio"),
				Name:    antelope.MustName("buyram"),
				Authorization: []antelope.PermissionLevel{
					{Actor: antelope.PlaceholderName, Permission: antelope.PlaceholderName},
				},
			},
		},
	}
}

func testABIs() *mapABIProvider {
	return &mapABIProvider{
		abis: map[antelope.Name]json.RawMessage{
			antelope.MustName("eosio.token"): json.RawMessage(`{"version":"eosio::abi/1.1"}`),
			antelope.MustName("eosio"):       json.RawMessage(`{"version":"eosio::abi/1.2"}`),
		},
	}
}

func TestNewSigningRequest(t *testing.T) {
	t.Run("copies the transaction", func(t *testing.T) {
		tx := placeholderTx()
		req, err := NewSigningRequest(antelope.EosChain.ID, tx)
		_assert.NoError(t, err)
		tx.RefBlockNum = 1
		_assert.Equal(t, uint16(1234), req.Transaction.RefBlockNum)
	})

	t.Run("requires a chain", func(t *testing.T) {
		_, err := NewSigningRequest(antelope.Checksum256{}, placeholderTx())
		_assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("requires a transaction", func(t *testing.T) {
		_, err := NewSigningRequest(antelope.EosChain.ID, nil)
		_assert.ErrorIs(t, err, ErrInvalidRequest)

		_, err = NewSigningRequest(antelope.EosChain.ID, &antelope.Transaction{})
		_assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestRequiredAccounts(t *testing.T) {
	req, err := NewSigningRequest(antelope.EosChain.ID, placeholderTx())
	_assert.NoError(t, err)
	_assert.Equal(t, []antelope.Name{
		antelope.MustName("eosio.token"),
		antelope.MustName("eosio"),
	}, req.RequiredAccounts())
}

func TestFetchABIs(t *testing.T) {
	req, err := NewSigningRequest(antelope.EosChain.ID, placeholderTx())
	_assert.NoError(t, err)

	provider := testABIs()
	abis, err := req.FetchABIs(context.Background(), provider)
	_assert.NoError(t, err)
	_assert.Len(t, abis, 2)
	_assert.Len(t, provider.calls, 2)

	t.Run("fails without a provider", func(t *testing.T) {
		_, err := req.FetchABIs(context.Background(), nil)
		_assert.Error(t, err)
	})

	t.Run("fails when an abi is missing", func(t *testing.T) {
		provider := testABIs()
		delete(provider.abis, antelope.MustName("eosio"))
		_, err := req.FetchABIs(context.Background(), provider)
		_assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	req, err := NewSigningRequest(antelope.EosChain.ID, placeholderTx())
	_assert.NoError(t, err)
	abis, err := req.FetchABIs(context.Background(), testABIs())
	_assert.NoError(t, err)

	signer := antelope.MustPermissionLevel("alice@active")
	resolved, err := req.Resolve(abis, signer)
	_assert.NoError(t, err)

	_assert.Equal(t, signer, resolved.Signer)
	_assert.Equal(t, antelope.EosChain.ID, resolved.ChainID)
	_assert.Equal(t, req, resolved.Request)
	_assert.Equal(t, "alice@active", resolved.Transaction.Actions[0].Authorization[0].String())
	_assert.Equal(t, "bob@owner", resolved.Transaction.Actions[1].Authorization[0].String())
	_assert.Equal(t, "alice@active", resolved.Transaction.Actions[2].Authorization[0].String())

	// the request itself keeps its placeholders
	_assert.Equal(t, antelope.PlaceholderName, req.Transaction.Actions[0].Authorization[0].Actor)

	raw, err := resolved.Transaction.MarshalBinary()
	_assert.NoError(t, err)
	_assert.Equal(t, raw, resolved.SerializedTransaction)
	_assert.Equal(t, antelope.TransactionID(raw), resolved.TransactionID())
	_assert.Equal(t, antelope.SigningDigest(antelope.EosChain.ID, raw, nil), resolved.SigningDigest())

	t.Run("requires every abi", func(t *testing.T) {
		partial := ABISet{antelope.MustName("eosio.token"): abis[antelope.MustName("eosio.token")]}
		_, err := req.Resolve(partial, signer)
		_assert.ErrorIs(t, err, ErrMissingABI)
	})

	t.Run("requires a signer", func(t *testing.T) {
		_, err := req.Resolve(abis, antelope.PermissionLevel{})
		_assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}
