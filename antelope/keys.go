package antelope

import (
	"bytes"
	"strings"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

const (
	// legacyKeyPrefix is the prefix used before key types
	// were introduced, eg EOS6MRy..
	legacyKeyPrefix = "EOS"

	// k1KeyPrefix is the prefix for secp256k1 public keys
	k1KeyPrefix = "PUB_K1_"

	// k1SigPrefix is the prefix for secp256k1 signatures
	k1SigPrefix = "SIG_K1_"

	// k1Suffix is mixed into the checksum of typed keys
	// and signatures
	k1Suffix = "K1"

	checksumLen      = 4
	compressedKeyLen = 33
	compactSigLen    = 65
)

var (
	// ErrInvalidPublicKey is returned for malformed public keys
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSignature is returned for malformed signatures
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrChecksumMismatch is returned when the base58 payload
	// doesn't match its checksum
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// ripemd160Checksum returns the first 4 bytes of
// ripemd160(data || suffix)
func ripemd160Checksum(data []byte, suffix string) []byte {
	h := ripemd160.New()
	h.Write(data)
	h.Write([]byte(suffix))
	return h.Sum(nil)[:checksumLen]
}

// decodeChecked base58 decodes s and verifies the
// trailing checksum, returning the payload.
func decodeChecked(s string, suffix string, payloadLen int) ([]byte, error) {
	raw := base58.Decode(s)
	if len(raw) != payloadLen+checksumLen {
		return nil, errors.Errorf("expected %d bytes, got %d", payloadLen+checksumLen, len(raw))
	}

	payload := raw[:payloadLen]
	if !bytes.Equal(raw[payloadLen:], ripemd160Checksum(payload, suffix)) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

func encodeChecked(payload []byte, suffix string) string {
	data := make([]byte, 0, len(payload)+checksumLen)
	data = append(data, payload...)
	data = append(data, ripemd160Checksum(payload, suffix)...)
	return base58.Encode(data)
}

// PublicKey wraps a secp256k1 public key
type PublicKey struct {
	Key *btcec.PublicKey
}

// NewPublicKey wraps key
func NewPublicKey(key *btcec.PublicKey) PublicKey {
	return PublicKey{Key: key}
}

// ParsePublicKey accepts both the PUB_K1_ form and the
// legacy EOS prefixed form.
func ParsePublicKey(s string) (PublicKey, error) {
	var payload []byte
	var err error

	switch {
	case strings.HasPrefix(s, k1KeyPrefix):
		payload, err = decodeChecked(strings.TrimPrefix(s, k1KeyPrefix), k1Suffix, compressedKeyLen)
	case strings.HasPrefix(s, legacyKeyPrefix):
		payload, err = decodeChecked(strings.TrimPrefix(s, legacyKeyPrefix), "", compressedKeyLen)
	default:
		return PublicKey{}, errors.Wrapf(ErrInvalidPublicKey, "unsupported key format %q", s)
	}
	if err != nil {
		return PublicKey{}, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}

	key, err := btcec.ParsePubKey(payload, btcec.S256())
	if err != nil {
		return PublicKey{}, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}

	return PublicKey{Key: key}, nil
}

// String returns the PUB_K1_ form
func (k PublicKey) String() string {
	if k.Key == nil {
		return ""
	}
	return k1KeyPrefix + encodeChecked(k.Key.SerializeCompressed(), k1Suffix)
}

// LegacyString returns the EOS prefixed form
func (k PublicKey) LegacyString() string {
	if k.Key == nil {
		return ""
	}
	return legacyKeyPrefix + encodeChecked(k.Key.SerializeCompressed(), "")
}

// Equal compares the compressed serialization of both keys
func (k PublicKey) Equal(other PublicKey) bool {
	if k.Key == nil || other.Key == nil {
		return k.Key == other.Key
	}
	return bytes.Equal(k.Key.SerializeCompressed(), other.Key.SerializeCompressed())
}

// MarshalText implements encoding.TextMarshaler
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Signature is a 65 byte compact recoverable signature,
// the first byte carrying the recovery id.
type Signature [compactSigLen]byte

// ParseSignature parses the SIG_K1_ form
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	if !strings.HasPrefix(s, k1SigPrefix) {
		return sig, errors.Wrapf(ErrInvalidSignature, "unsupported signature format %q", s)
	}

	payload, err := decodeChecked(strings.TrimPrefix(s, k1SigPrefix), k1Suffix, compactSigLen)
	if err != nil {
		return sig, errors.Wrap(ErrInvalidSignature, err.Error())
	}

	copy(sig[:], payload)
	return sig, nil
}

// SignDigest produces a compact signature over digest
// using a compressed key.
func SignDigest(key *btcec.PrivateKey, digest []byte) (Signature, error) {
	var sig Signature
	compact, err := btcec.SignCompact(btcec.S256(), key, digest, true)
	if err != nil {
		return sig, errors.Wrap(err, "failed to sign digest")
	}
	if len(compact) != compactSigLen {
		return sig, errors.Errorf("unexpected compact signature length %d", len(compact))
	}
	copy(sig[:], compact)
	return sig, nil
}

// Recover returns the public key which produced the
// signature over digest.
func (s Signature) Recover(digest []byte) (PublicKey, error) {
	key, _, err := btcec.RecoverCompact(btcec.S256(), s[:], digest)
	if err != nil {
		return PublicKey{}, errors.Wrap(ErrInvalidSignature, err.Error())
	}
	return PublicKey{Key: key}, nil
}

// String returns the SIG_K1_ form
func (s Signature) String() string {
	return k1SigPrefix + encodeChecked(s[:], k1Suffix)
}

// MarshalText implements encoding.TextMarshaler
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
