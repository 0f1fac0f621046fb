package scatter

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/btccom/scattersigner/abicache"
	"github.com/btccom/scattersigner/antelope"
	"github.com/btccom/scattersigner/session"
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
	_assert "github.com/stretchr/testify/require"
)

const waxURL = "https://wax.greymass.com"

// testKey returns a deterministic private key
func testKey(seed byte) *btcec.PrivateKey {
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), bytes.Repeat([]byte{seed}, 32))
	return priv
}

// legacyKeyString returns the EOS prefixed form of priv's public key
func legacyKeyString(priv *btcec.PrivateKey) string {
	return antelope.NewPublicKey(priv.PubKey()).LegacyString()
}

// dummyWallet implements Wallet, recording calls
type dummyWallet struct {
	connected  bool
	connectErr error
	identity   *Identity
	loginErr   error

	connectCalls  int
	loginRequests []IdentityRequest
}

func newDummyWallet(accounts ...Account) *dummyWallet {
	return &dummyWallet{
		connected: true,
		identity:  &Identity{Name: "test", Accounts: accounts},
	}
}

func (w *dummyWallet) Connect(ctx context.Context, appName string) (bool, error) {
	w.connectCalls++
	return w.connected, w.connectErr
}

func (w *dummyWallet) Login(ctx context.Context, req IdentityRequest) (*Identity, error) {
	w.loginRequests = append(w.loginRequests, req)
	return w.identity, w.loginErr
}

// signWith signs raw for chainID, returning the SIG_K1_ form
func signWith(t *testing.T, priv *btcec.PrivateKey, chainID antelope.Checksum256, raw []byte) string {
	sig, err := antelope.SignDigest(priv, antelope.SigningDigest(chainID, raw, nil))
	_assert.NoError(t, err)
	return sig.String()
}

// dummyTransactWallet implements TransactWallet. It decodes
// the plain transaction, applies mutate if set, and signs
// the result with key.
type dummyTransactWallet struct {
	*dummyWallet
	t   *testing.T
	key *btcec.PrivateKey

	mutate      func(tx *antelope.Transaction)
	transactErr error
	result      *TransactResult

	calls    int
	lastArgs TransactArgs
	lastOpts TransactOptions
}

func newDummyTransactWallet(t *testing.T, accounts ...Account) *dummyTransactWallet {
	return &dummyTransactWallet{
		dummyWallet: newDummyWallet(accounts...),
		t:           t,
		key:         testKey(0x01),
	}
}

func (w *dummyTransactWallet) Transact(ctx context.Context, args TransactArgs, opts TransactOptions) (*TransactResult, error) {
	w.calls++
	w.lastArgs = args
	w.lastOpts = opts

	if w.transactErr != nil {
		return nil, w.transactErr
	}
	if w.result != nil {
		return w.result, nil
	}

	tx := &antelope.Transaction{}
	_assert.NoError(w.t, json.Unmarshal(args.Transaction, tx))
	if w.mutate != nil {
		w.mutate(tx)
	}

	raw, err := tx.MarshalBinary()
	_assert.NoError(w.t, err)

	return &TransactResult{
		SerializedTransaction: raw,
		Signatures:            []string{signWith(w.t, w.key, args.Network.ChainID, raw)},
	}, nil
}

// dummySignatureWallet implements SignatureWallet, signing
// the serialized transaction with key.
type dummySignatureWallet struct {
	*dummyWallet
	t   *testing.T
	key *btcec.PrivateKey

	signErr error

	calls       int
	lastPayload SignaturePayload
}

func newDummySignatureWallet(t *testing.T, accounts ...Account) *dummySignatureWallet {
	return &dummySignatureWallet{
		dummyWallet: newDummyWallet(accounts...),
		t:           t,
		key:         testKey(0x01),
	}
}

func (w *dummySignatureWallet) RequestSignature(ctx context.Context, payload SignaturePayload) (*SignatureResult, error) {
	w.calls++
	w.lastPayload = payload

	if w.signErr != nil {
		return nil, w.signErr
	}

	raw, err := hex.DecodeString(payload.SerializedTransaction)
	_assert.NoError(w.t, err)

	return &SignatureResult{
		Signatures: []string{signWith(w.t, w.key, payload.ChainID, raw)},
	}, nil
}

// dummyLogoutWallet adds a logout call to dummyWallet
type dummyLogoutWallet struct {
	*dummyTransactWallet
	logoutErr   error
	logoutCalls int
}

func (w *dummyLogoutWallet) Logout(ctx context.Context) error {
	w.logoutCalls++
	return w.logoutErr
}

// staticSession implements SessionState
type staticSession struct {
	account *Account
}

func (s *staticSession) Account() (*Account, bool) {
	return s.account, s.account != nil
}

// dummyUI implements session.UserInterface
type dummyUI struct {
	noTranslator bool
	namespaces   []string
}

func (u *dummyUI) Translator(namespace string) session.Translator {
	u.namespaces = append(u.namespaces, namespace)
	if u.noTranslator {
		return nil
	}
	return func(key string, fallback string) string {
		return fallback
	}
}

// testABICache returns an abi cache seeded with the
// contracts used in tests, and no source.
func testABICache() *abicache.Cache {
	cache := abicache.New(nil)
	cache.Set(antelope.MustName("eosio.token"), json.RawMessage(`{"version":"eosio::abi/1.1"}`))
	cache.Set(antelope.MustName("eosio"), json.RawMessage(`{"version":"eosio::abi/1.2"}`))
	return cache
}

// testTransaction is a transfer authorized by the
// placeholder signer.
func testTransaction() *antelope.Transaction {
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
		},
	}
}

// testResolved resolves testTransaction on chainID for signer
func testResolved(t *testing.T, chainID antelope.Checksum256, signer string) *session.ResolvedSigningRequest {
	request, err := session.NewSigningRequest(chainID, testTransaction())
	_assert.NoError(t, err)

	abis, err := request.FetchABIs(context.Background(), testABICache())
	_assert.NoError(t, err)

	resolved, err := request.Resolve(abis, antelope.MustPermissionLevel(signer))
	_assert.NoError(t, err)
	return resolved
}

// testTransactContext is a context on the EOS chain for alice@active
func testTransactContext() *session.TransactContext {
	return &session.TransactContext{
		AppName:         "test app",
		Chain:           &session.ChainDefinition{ID: antelope.EosChain.ID, URL: antelope.EosChain.URL},
		ABICache:        testABICache(),
		PermissionLevel: antelope.MustPermissionLevel("alice@active"),
		UI:              &dummyUI{},
	}
}

func aliceAccount(priv *btcec.PrivateKey) Account {
	return Account{
		Name:      "alice",
		Authority: "active",
		ChainID:   antelope.EosChain.ID.String(),
		PublicKey: legacyKeyString(priv),
	}
}

var errWalletRejected = errors.New("user rejected the request")
