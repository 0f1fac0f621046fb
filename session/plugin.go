package session

import (
	"context"

	"github.com/btccom/scattersigner/antelope"
)

// WalletPluginConfig tells the host what a plugin needs
// from the user before login.
type WalletPluginConfig struct {
	// RequiresChainSelect requires the user to pick a
	// chain before login.
	RequiresChainSelect bool

	// RequiresPermissionSelect requires the user to pick
	// a permission before login.
	RequiresPermissionSelect bool
}

// WalletPluginMetadata describes a plugin to users
type WalletPluginMetadata struct {
	Name        string
	Description string
	// Logo is an image url, usually a data uri
	Logo        string
	Homepage    string
	Download    string
}

// WalletPluginLoginResponse is the identity a plugin
// established.
type WalletPluginLoginResponse struct {
	Chain           antelope.Checksum256
	PermissionLevel antelope.PermissionLevel
}

// WalletPluginSignResponse carries signatures, and the
// request they were made over when the wallet changed it.
type WalletPluginSignResponse struct {
	Signatures []antelope.Signature

	// Resolved is the request the signatures belong to
	Resolved *ResolvedSigningRequest
}

// WalletPlugin is implemented by every wallet integration
type WalletPlugin interface {
	ID() string
	Config() WalletPluginConfig
	Metadata() WalletPluginMetadata

	Login(ctx context.Context, lctx *LoginContext) (*WalletPluginLoginResponse, error)
	Sign(ctx context.Context, resolved *ResolvedSigningRequest, tctx *TransactContext) (*WalletPluginSignResponse, error)
	Logout(ctx context.Context, lctx *LogoutContext) error
}
