package scatter

import (
	"context"

	"github.com/btccom/scattersigner/session"
	"github.com/pkg/errors"
)

// Adapter is the wallet backend used by the plugin. It
// owns the bridge and the round trip for one wallet.
type Adapter struct {
	wallet    Wallet
	protocol  Protocol
	bridge    *Bridge
	roundTrip *RoundTrip
}

// NewAdapter returns an Adapter signing through protocol.
// state is only required by ProtocolSignature.
func NewAdapter(wallet Wallet, state SessionState, protocol Protocol) (*Adapter, error) {
	if wallet == nil {
		return nil, newError("new adapter", ErrWalletUnavailable, errors.New("no wallet"))
	}

	roundTrip, err := NewRoundTrip(protocol, wallet, state)
	if err != nil {
		return nil, err
	}

	return &Adapter{
		wallet:    wallet,
		protocol:  protocol,
		bridge:    NewBridge(wallet),
		roundTrip: roundTrip,
	}, nil
}

// AdapterFactory returns a BackendFactory building an
// Adapter from the provided values.
func AdapterFactory(wallet Wallet, state SessionState, protocol Protocol) BackendFactory {
	return func() (Backend, error) {
		return NewAdapter(wallet, state, protocol)
	}
}

// loginNetworks returns the networks offered to the wallet.
// The transact protocol offers only the selected chain, the
// signature protocol offers the selected chain followed by
// every other chain the host supports.
func (a *Adapter) loginNetworks(lctx *session.LoginContext) ([]NetworkDescriptor, error) {
	const op = "login"

	if a.protocol == ProtocolTransact {
		if lctx.Chain == nil {
			return nil, newError(op, ErrInvalidChain, errors.New("no chain selected"))
		}
		network, err := BuildNetwork(*lctx.Chain)
		if err != nil {
			return nil, err
		}
		return []NetworkDescriptor{*network}, nil
	}

	var chains []session.ChainDefinition
	if lctx.Chain != nil {
		chains = append(chains, *lctx.Chain)
	}
	chains = append(chains, lctx.Chains...)
	if len(chains) == 0 {
		return nil, newError(op, ErrInvalidChain, errors.New("no chains to offer"))
	}
	return BuildNetworks(chains)
}

// Login establishes the wallet identity
func (a *Adapter) Login(ctx context.Context, lctx *session.LoginContext) (*session.WalletPluginLoginResponse, error) {
	if lctx == nil {
		return nil, newError("login", ErrMissingUI, errors.New("no login context"))
	}

	networks, err := a.loginNetworks(lctx)
	if err != nil {
		return nil, err
	}

	identity, _, err := a.bridge.Establish(ctx, lctx.AppName, networks)
	if err != nil {
		return nil, err
	}

	return &session.WalletPluginLoginResponse{
		Chain:           identity.Chain,
		PermissionLevel: identity.PermissionLevel,
	}, nil
}

// Sign requests signatures for resolved
func (a *Adapter) Sign(ctx context.Context, resolved *session.ResolvedSigningRequest, tctx *session.TransactContext) (*session.WalletPluginSignResponse, error) {
	return a.roundTrip.RequestSignature(ctx, resolved, tctx)
}

// Logout asks the wallet to forget the identity, if it
// supports that.
func (a *Adapter) Logout(ctx context.Context, lctx *session.LogoutContext) error {
	lw, ok := a.wallet.(LogoutWallet)
	if !ok {
		log.Debugf("wallet has no logout call, nothing to do")
		return nil
	}
	if err := lw.Logout(ctx); err != nil {
		return newError("logout", ErrWalletUnavailable, err)
	}
	return nil
}
