package antelope

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidPermissionLevel is returned when a permission
// level string isn't of the form actor@permission
var ErrInvalidPermissionLevel = errors.New("invalid permission level")

// PermissionLevel is an actor and the permission it
// authorizes with.
type PermissionLevel struct {
	Actor      Name `json:"actor"`
	Permission Name `json:"permission"`
}

// NewPermissionLevel builds a PermissionLevel from an actor
// and permission string. Neither may be empty.
func NewPermissionLevel(actor, permission string) (PermissionLevel, error) {
	if actor == "" || permission == "" {
		return PermissionLevel{}, errors.Wrapf(ErrInvalidPermissionLevel, "actor %q and permission %q must be set", actor, permission)
	}

	a, err := NewName(actor)
	if err != nil {
		return PermissionLevel{}, errors.Wrap(err, "invalid actor")
	}

	p, err := NewName(permission)
	if err != nil {
		return PermissionLevel{}, errors.Wrap(err, "invalid permission")
	}

	return PermissionLevel{Actor: a, Permission: p}, nil
}

// ParsePermissionLevel parses the actor@permission form
func ParsePermissionLevel(s string) (PermissionLevel, error) {
	pieces := strings.Split(s, "@")
	if len(pieces) != 2 {
		return PermissionLevel{}, errors.Wrapf(ErrInvalidPermissionLevel, "%q is not actor@permission", s)
	}

	return NewPermissionLevel(pieces[0], pieces[1])
}

// MustPermissionLevel is ParsePermissionLevel for constants
func MustPermissionLevel(s string) PermissionLevel {
	level, err := ParsePermissionLevel(s)
	if err != nil {
		panic(err)
	}
	return level
}

// String returns actor@permission
func (p PermissionLevel) String() string {
	return p.Actor.String() + "@" + p.Permission.String()
}

// IsEmpty is true if either half is unset
func (p PermissionLevel) IsEmpty() bool {
	return p.Actor.IsEmpty() || p.Permission.IsEmpty()
}
