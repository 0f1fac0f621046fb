package scatter

import (
	"context"
	"testing"

	"github.com/btccom/scattersigner/antelope"
	"github.com/btccom/scattersigner/session"
	_assert "github.com/stretchr/testify/require"
)

func TestNewAdapter(t *testing.T) {
	_, err := NewAdapter(nil, nil, ProtocolTransact)
	_assert.ErrorIs(t, err, ErrWalletUnavailable)

	_, err = NewAdapter(newDummyWallet(), nil, ProtocolSignature)
	_assert.ErrorIs(t, err, ErrProtocolUnsupported)

	adapter, err := NewAdapter(newDummyTransactWallet(t), nil, ProtocolTransact)
	_assert.NoError(t, err)
	_assert.NotNil(t, adapter)
}

func TestAdapterLoginNetworks(t *testing.T) {
	ctx := context.Background()

	t.Run("transact requires a selected chain", func(t *testing.T) {
		wallet := newDummyTransactWallet(t, Account{Name: "alice", Authority: "active", Blockchain: "eos"})
		adapter, err := NewAdapter(wallet, nil, ProtocolTransact)
		_assert.NoError(t, err)

		lctx := eosLoginContext()
		lctx.Chain = nil
		_, err = adapter.Login(ctx, lctx)
		_assert.ErrorIs(t, err, ErrInvalidChain)
		_assert.Equal(t, 0, wallet.connectCalls)

		_, err = adapter.Login(ctx, nil)
		_assert.ErrorIs(t, err, ErrMissingUI)
	})

	t.Run("signature offers every chain", func(t *testing.T) {
		wallet := newDummySignatureWallet(t, Account{Name: "alice", Authority: "active", Blockchain: "wax"})
		adapter, err := NewAdapter(wallet, &staticSession{}, ProtocolSignature)
		_assert.NoError(t, err)

		lctx := eosLoginContext()
		lctx.Chain = &session.ChainDefinition{ID: antelope.WaxChain.ID, URL: antelope.WaxChain.URL}
		login, err := adapter.Login(ctx, lctx)
		_assert.NoError(t, err)
		_assert.Equal(t, antelope.WaxChain.ID, login.Chain)

		_assert.Len(t, wallet.loginRequests, 1)
		offered := wallet.loginRequests[0].Accounts
		_assert.Len(t, offered, 2)
		_assert.Equal(t, antelope.WaxChain.ID, offered[0].ChainID)
		_assert.Equal(t, antelope.EosChain.ID, offered[1].ChainID)
	})

	t.Run("signature needs at least one chain", func(t *testing.T) {
		adapter, err := NewAdapter(newDummySignatureWallet(t), &staticSession{}, ProtocolSignature)
		_assert.NoError(t, err)

		_, err = adapter.Login(ctx, &session.LoginContext{AppName: "test app", UI: &dummyUI{}})
		_assert.ErrorIs(t, err, ErrInvalidChain)
	})
}

func TestAdapterSignatureProtocolEndToEnd(t *testing.T) {
	wallet := newDummySignatureWallet(t)
	account := aliceAccount(wallet.key)
	wallet.identity = &Identity{Accounts: []Account{account}}

	p := New(
		WithEnvironment(EnvBrowser),
		WithBackend(EnvBrowser, AdapterFactory(wallet, &staticSession{account: &account}, ProtocolSignature)),
	)
	ctx := context.Background()

	login, err := p.Login(ctx, eosLoginContext())
	_assert.NoError(t, err)

	resolved := testResolved(t, login.Chain, login.PermissionLevel.String())
	signed, err := p.Sign(ctx, resolved, testTransactContext())
	_assert.NoError(t, err)
	_assert.True(t, signed.Resolved == resolved)

	recovered, err := signed.Signatures[0].Recover(resolved.SigningDigest())
	_assert.NoError(t, err)
	expected, err := antelope.ParsePublicKey(account.PublicKey)
	_assert.NoError(t, err)
	_assert.True(t, expected.Equal(recovered))
}
