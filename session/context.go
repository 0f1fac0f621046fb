package session

import (
	"context"
	"encoding/json"

	"github.com/btccom/scattersigner/antelope"
)

// ChainDefinition identifies a chain and an API
// endpoint for it.
type ChainDefinition struct {
	ID  antelope.Checksum256 `json:"id"`
	URL string               `json:"url"`
}

// Translator renders a user facing string, returning
// fallback when key has no translation.
type Translator func(key string, fallback string) string

// UserInterface is the host's UI hook. Plugins only use it
// to look up their translation function.
type UserInterface interface {
	// Translator returns the translation function for a
	// plugin, identified by its namespace.
	Translator(namespace string) Translator
}

// ABIProvider returns the raw ABI for a contract account
type ABIProvider interface {
	GetABI(ctx context.Context, account antelope.Name) (json.RawMessage, error)
}

// ESROptions are settings applied when the host creates
// signing requests.
type ESROptions struct {
	// ChainID overrides the chain of new requests when set
	ChainID antelope.Checksum256
}

// LoginContext is passed to a wallet plugin on login
type LoginContext struct {
	AppName string

	// Chain is the chain selected by the host, if any
	Chain *ChainDefinition

	// Chains is every chain the host supports
	Chains []ChainDefinition

	UI UserInterface
}

// TransactContext is passed to a wallet plugin on sign
type TransactContext struct {
	AppName string
	Chain   *ChainDefinition

	// ABICache provides ABIs when a request needs to be
	// rebuilt.
	ABICache ABIProvider

	ESROptions ESROptions

	// PermissionLevel is the session's signer
	PermissionLevel antelope.PermissionLevel

	UI UserInterface
}

// LogoutContext is passed to a wallet plugin on logout
type LogoutContext struct {
	AppName string
	UI      UserInterface
}
