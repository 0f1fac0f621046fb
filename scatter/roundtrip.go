package scatter

import (
	"context"

	"github.com/btccom/scattersigner/session"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Protocol selects how signatures are requested from
// the wallet.
type Protocol int

const (
	// ProtocolTransact sends the transaction to the wallet,
	// which may modify it before signing.
	ProtocolTransact Protocol = iota

	// ProtocolSignature asks the wallet to sign the
	// serialized transaction as is.
	ProtocolSignature
)

// String returns the protocol name
func (p Protocol) String() string {
	switch p {
	case ProtocolTransact:
		return "transact"
	case ProtocolSignature:
		return "signature"
	default:
		return "unknown"
	}
}

// exchanger performs a single signing exchange with
// the wallet.
type exchanger interface {
	exchange(ctx context.Context, id string, resolved *session.ResolvedSigningRequest, tctx *session.TransactContext) (*session.WalletPluginSignResponse, error)
}

// RoundTrip sends resolved requests to the wallet and
// reconciles what comes back.
type RoundTrip struct {
	protocol Protocol
	exchanger
}

// NewRoundTrip returns a RoundTrip for protocol. It fails
// with ErrProtocolUnsupported if the wallet doesn't
// implement the protocol's call.
func NewRoundTrip(protocol Protocol, wallet Wallet, state SessionState) (*RoundTrip, error) {
	const op = "new round trip"

	bridge := NewBridge(wallet)
	switch protocol {
	case ProtocolTransact:
		tw, ok := wallet.(TransactWallet)
		if !ok {
			return nil, newError(op, ErrProtocolUnsupported, errors.New("wallet has no transact call"))
		}
		return &RoundTrip{
			protocol:  protocol,
			exchanger: &transactRoundTrip{bridge: bridge, wallet: tw},
		}, nil

	case ProtocolSignature:
		sw, ok := wallet.(SignatureWallet)
		if !ok {
			return nil, newError(op, ErrProtocolUnsupported, errors.New("wallet has no signature call"))
		}
		if state == nil {
			return nil, newError(op, ErrProtocolUnsupported, errors.New("signature protocol needs session state"))
		}
		return &RoundTrip{
			protocol:  protocol,
			exchanger: &signatureRoundTrip{bridge: bridge, wallet: sw, state: state},
		}, nil
	}

	return nil, newError(op, ErrProtocolUnsupported, errors.Errorf("unknown protocol %d", protocol))
}

// Protocol returns the protocol the RoundTrip was built for
func (r *RoundTrip) Protocol() Protocol {
	return r.protocol
}

// RequestSignature obtains signatures for resolved. The
// response's Resolved is the request the signatures were
// made over.
func (r *RoundTrip) RequestSignature(ctx context.Context, resolved *session.ResolvedSigningRequest, tctx *session.TransactContext) (*session.WalletPluginSignResponse, error) {
	if resolved == nil || resolved.Transaction == nil {
		return nil, newError("sign", ErrSigningFailed, errors.New("no resolved transaction"))
	}
	if tctx == nil {
		return nil, newError("sign", ErrSigningFailed, errors.New("no transact context"))
	}

	id := uuid.New().String()
	log.Debugf("[%s] requesting %s signature for %s by %s", id, r.protocol, resolved.TransactionID(), resolved.Signer)

	response, err := r.exchange(ctx, id, resolved, tctx)
	if err != nil {
		log.Debugf("[%s] signature request failed: %v", id, err)
		return nil, err
	}

	log.Debugf("[%s] wallet returned %d signatures", id, len(response.Signatures))
	return response, nil
}
