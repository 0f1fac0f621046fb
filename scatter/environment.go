package scatter

import (
	"context"
	"runtime"

	"github.com/btccom/scattersigner/session"
)

// Environment is the runtime the plugin is running in
type Environment int

const (
	// EnvBrowser is a browser, where the wallet is reachable
	EnvBrowser Environment = iota

	// EnvNative is any other runtime
	EnvNative
)

// String returns the environment name
func (e Environment) String() string {
	switch e {
	case EnvBrowser:
		return "browser"
	case EnvNative:
		return "native"
	default:
		return "unknown"
	}
}

// DetectEnvironment reports EnvBrowser for js/wasm
// builds, and EnvNative otherwise.
func DetectEnvironment() Environment {
	if runtime.GOOS == "js" && runtime.GOARCH == "wasm" {
		return EnvBrowser
	}
	return EnvNative
}

// Backend performs the plugin's operations against
// a wallet.
type Backend interface {
	Login(ctx context.Context, lctx *session.LoginContext) (*session.WalletPluginLoginResponse, error)
	Sign(ctx context.Context, resolved *session.ResolvedSigningRequest, tctx *session.TransactContext) (*session.WalletPluginSignResponse, error)
	Logout(ctx context.Context, lctx *session.LogoutContext) error
}

// BackendFactory creates the Backend on first use
type BackendFactory func() (Backend, error)
