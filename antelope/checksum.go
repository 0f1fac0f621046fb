package antelope

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// Checksum256 is a 32 byte digest, used for chain ids
// and transaction ids.
type Checksum256 [32]byte

// ErrInvalidChecksum is returned when parsing a value
// which isn't 64 hex characters.
var ErrInvalidChecksum = errors.New("invalid checksum256")

// NewChecksum256 parses a hex encoded checksum
func NewChecksum256(s string) (Checksum256, error) {
	var c Checksum256
	if len(s) != hex.EncodedLen(len(c)) {
		return c, errors.Wrapf(ErrInvalidChecksum, "expected %d hex characters, got %d", hex.EncodedLen(len(c)), len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return c, errors.Wrap(ErrInvalidChecksum, err.Error())
	}

	copy(c[:], raw)
	return c, nil
}

// MustChecksum256 is NewChecksum256 for constants
func MustChecksum256(s string) Checksum256 {
	c, err := NewChecksum256(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the lowercase hex form
func (c Checksum256) String() string {
	return hex.EncodeToString(c[:])
}

// IsZero returns true if no byte is set
func (c Checksum256) IsZero() bool {
	return c == Checksum256{}
}

// MarshalText implements encoding.TextMarshaler
func (c Checksum256) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Checksum256) UnmarshalText(text []byte) error {
	parsed, err := NewChecksum256(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HexBytes is a byte slice which is hex encoded in text form.
type HexBytes []byte

// String returns the hex form
func (h HexBytes) String() string {
	return hex.EncodeToString(h)
}

// MarshalText implements encoding.TextMarshaler
func (h HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (h *HexBytes) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrap(err, "invalid hex")
	}
	*h = raw
	return nil
}
