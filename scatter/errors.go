package scatter

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds returned by the plugin. Every error returned
// by this package matches exactly one of them with errors.Is.
var (
	// ErrWalletUnavailable is returned when the wallet
	// can't be reached or refuses the connection.
	ErrWalletUnavailable = errors.New("no scatter wallet")

	// ErrAuthenticationFailed is returned when the wallet
	// doesn't produce an identity with at least one account.
	ErrAuthenticationFailed = errors.New("failed to login in scatter")

	// ErrUnknownChain is returned when the wallet's account
	// has no chain id and its blockchain label isn't known.
	ErrUnknownChain = errors.New("unknown chain")

	// ErrMalformedIdentity is returned when the wallet's
	// account can't be turned into a chain and permission.
	ErrMalformedIdentity = errors.New("malformed identity")

	// ErrSessionMismatch is returned when the wallet's
	// current account isn't the request's signer.
	ErrSessionMismatch = errors.New("wallet session does not match signer")

	// ErrSigningFailed is returned when the wallet rejects
	// a request, or returns something unusable.
	ErrSigningFailed = errors.New("signing failed")

	// ErrEnvironmentUnsupported is returned when no wallet
	// backend exists for the runtime environment.
	ErrEnvironmentUnsupported = errors.New("environment unsupported")

	// ErrMissingUI is returned when a context has no UI
	ErrMissingUI = errors.New("no UI available")

	// ErrInvalidChain is returned when the host's chain
	// definition is missing or malformed.
	ErrInvalidChain = errors.New("invalid chain definition")

	// ErrProtocolUnsupported is returned when the wallet
	// lacks the capability a protocol needs.
	ErrProtocolUnsupported = errors.New("protocol unsupported by wallet")
)

// Error carries the kind of failure, the operation that
// failed, and the underlying cause if there is one.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func newError(op string, kind error, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Is matches the error's kind
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.Err
}

// IsRecoverable returns whether the user can fix err
// without the host changing anything, eg by switching
// the wallet's account.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrSessionMismatch)
}
