package scatter

import (
	"context"

	"github.com/btccom/scattersigner/session"
	"github.com/pkg/errors"
)

// Bridge establishes a session with the wallet
type Bridge struct {
	wallet Wallet
}

// NewBridge returns a Bridge for wallet
func NewBridge(wallet Wallet) *Bridge {
	return &Bridge{wallet: wallet}
}

// Connect opens the wallet connection for appName
func (b *Bridge) Connect(ctx context.Context, appName string) error {
	const op = "connect"

	connected, err := b.wallet.Connect(ctx, appName)
	if err != nil {
		return newError(op, ErrWalletUnavailable, err)
	}
	if !connected {
		return newError(op, ErrWalletUnavailable, nil)
	}
	return nil
}

// Establish connects, asks the wallet for an identity on
// one of networks, and normalizes the first account it
// returns.
func (b *Bridge) Establish(ctx context.Context, appName string, networks []NetworkDescriptor) (*ResolvedIdentity, *Account, error) {
	const op = "login"

	if err := b.Connect(ctx, appName); err != nil {
		return nil, nil, err
	}

	identity, err := b.wallet.Login(ctx, IdentityRequest{Accounts: networks})
	if err != nil {
		return nil, nil, newError(op, ErrAuthenticationFailed, err)
	}
	if identity == nil || len(identity.Accounts) == 0 {
		return nil, nil, newError(op, ErrAuthenticationFailed, errors.New("wallet returned no accounts"))
	}
	if len(identity.Accounts) > 1 {
		log.Debugf("wallet returned %d accounts, using the first", len(identity.Accounts))
	}
	log.Tracef("wallet identity: %v", dump(identity))

	account := identity.Accounts[0]

	requested := make([]session.ChainDefinition, len(networks))
	for i := range networks {
		requested[i] = networks[i].ChainDefinition()
	}

	resolved, err := Normalize(account, requested)
	if err != nil {
		return nil, nil, err
	}

	return resolved, &account, nil
}
