package scatter

import (
	"context"
	"encoding/json"

	"github.com/btccom/scattersigner/antelope"
)

// NetworkDescriptor is the wallet's description of a
// network. The wallet matches networks by chain id.
type NetworkDescriptor struct {
	Blockchain string               `json:"blockchain"`
	ChainID    antelope.Checksum256 `json:"chainId"`
	Host       string               `json:"host"`
	Port       int                  `json:"port"`
	Protocol   string               `json:"protocol"`
}

// Account is an account the wallet exposes for a network.
// ChainID may be empty, in which case Blockchain names
// the chain.
type Account struct {
	Name       string `json:"name"`
	Authority  string `json:"authority"`
	ChainID    string `json:"chainId,omitempty"`
	Blockchain string `json:"blockchain,omitempty"`
	PublicKey  string `json:"publicKey,omitempty"`
}

// Identity is what the wallet returns on login
type Identity struct {
	Name     string    `json:"name,omitempty"`
	Accounts []Account `json:"accounts"`
}

// IdentityRequest asks the wallet for an account on
// one of the networks.
type IdentityRequest struct {
	Accounts []NetworkDescriptor `json:"accounts"`
}

// Wallet is the connection to the external wallet
type Wallet interface {
	// Connect opens a connection for appName, returning
	// false if the wallet isn't available.
	Connect(ctx context.Context, appName string) (bool, error)

	// Login asks the user to pick an identity
	Login(ctx context.Context, req IdentityRequest) (*Identity, error)
}

// TransactArgs is the transaction sent to the wallet's
// transact call, in its plain JSON form.
type TransactArgs struct {
	Network     NetworkDescriptor
	Transaction json.RawMessage
}

// TransactOptions controls the wallet's transact call
type TransactOptions struct {
	Broadcast bool `json:"broadcast"`
}

// TransactResult is the transaction the wallet signed,
// which may differ from the one it was sent.
type TransactResult struct {
	SerializedTransaction antelope.HexBytes `json:"serializedTransaction"`
	Signatures            []string          `json:"signatures"`
}

// TransactWallet is a wallet that signs through a
// transact call.
type TransactWallet interface {
	Wallet
	Transact(ctx context.Context, args TransactArgs, opts TransactOptions) (*TransactResult, error)
}

// ABIEntry is a contract ABI sent with a signature request
type ABIEntry struct {
	AccountName antelope.Name   `json:"account_name"`
	ABI         json.RawMessage `json:"abi"`
}

// SignaturePayload is a request to sign a serialized
// transaction with specific keys.
type SignaturePayload struct {
	Blockchain            string               `json:"blockchain"`
	ChainID               antelope.Checksum256 `json:"chainId"`
	ABIs                  []ABIEntry           `json:"abis"`
	RequiredKeys          []string             `json:"requiredKeys"`
	SerializedTransaction string               `json:"serializedTransaction"`
}

// SignatureResult holds the signatures the wallet produced
type SignatureResult struct {
	Signatures []string `json:"signatures"`
}

// SignatureWallet is a wallet that signs serialized
// transactions without modifying them.
type SignatureWallet interface {
	Wallet
	RequestSignature(ctx context.Context, payload SignaturePayload) (*SignatureResult, error)
}

// LogoutWallet is implemented by wallets which can
// forget the current identity.
type LogoutWallet interface {
	Logout(ctx context.Context) error
}

// SessionState exposes the wallet's current account
type SessionState interface {
	// Account returns the wallet's logged in account,
	// if any.
	Account() (*Account, bool)
}
