package antelope

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// nameCharmap maps 5 bit symbols to characters. The
	// 13th character of a name only has 4 bits available.
	nameCharmap = ".12345abcdefghijklmnopqrstuvwxyz"

	// maxNameLength is the longest a name can be when
	// rendered as a string
	maxNameLength = 13
)

var (
	// ErrInvalidName is returned when a string cannot be
	// encoded as a name, or doesn't survive a round trip.
	ErrInvalidName = errors.New("invalid name")
)

// Name is an account, action, or permission name,
// stored as its 64 bit encoding.
type Name uint64

// Placeholder names used by signing requests. They are
// swapped for the signer's actor/permission on resolve.
const (
	PlaceholderName       Name = 1
	PlaceholderPermission Name = 2
)

// NewName encodes s, returning an error if it contains
// characters outside the charmap, is too long, or isn't
// in its canonical form (eg, trailing dots)
func NewName(s string) (Name, error) {
	if len(s) > maxNameLength {
		return 0, errors.Wrapf(ErrInvalidName, "%q is longer than %d characters", s, maxNameLength)
	}

	var value uint64
	for i := 0; i < maxNameLength; i++ {
		var c uint64
		if i < len(s) {
			idx := strings.IndexByte(nameCharmap, s[i])
			if idx < 0 {
				return 0, errors.Wrapf(ErrInvalidName, "%q contains invalid character %q", s, s[i])
			}
			c = uint64(idx)
		}

		if i < maxNameLength-1 {
			value |= (c & 0x1f) << uint(64-5*(i+1))
		} else {
			if c > 0x0f {
				return 0, errors.Wrapf(ErrInvalidName, "%q has an invalid 13th character", s)
			}
			value |= c
		}
	}

	name := Name(value)
	if name.String() != s {
		return 0, errors.Wrapf(ErrInvalidName, "%q is not a canonical name", s)
	}

	return name, nil
}

// MustName is NewName for constants, it panics on error.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String decodes the name into its text form
func (n Name) String() string {
	str := make([]byte, maxNameLength)
	tmp := uint64(n)
	for i := 0; i < maxNameLength; i++ {
		var c byte
		if i == 0 {
			c = nameCharmap[tmp&0x0f]
			tmp >>= 4
		} else {
			c = nameCharmap[tmp&0x1f]
			tmp >>= 5
		}
		str[maxNameLength-1-i] = c
	}

	return strings.TrimRight(string(str), ".")
}

// IsEmpty returns whether the name is the zero name.
func (n Name) IsEmpty() bool {
	return n == 0
}

// MarshalText implements encoding.TextMarshaler
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (n *Name) UnmarshalText(text []byte) error {
	name, err := NewName(string(text))
	if err != nil {
		return err
	}
	*n = name
	return nil
}
