package antelope

import (
	"encoding/json"
	"testing"

	_assert "github.com/stretchr/testify/require"
)

func TestNameEncoding(t *testing.T) {
	fixtures := []struct {
		name  string
		value uint64
	}{
		{"eosio", 6138663577826885632},
		{"eosio.token", 6138663591592764928},
		{"transfer", 14829575313431724032},
		{"active", 3617214756542218240},
		{"owner", 12044502819693133824},
		{"alice", 3773036822876127232},
		{"............1", 1},
		{"............2", 2},
		{"", 0},
	}

	for _, fixture := range fixtures {
		fixture := fixture
		t.Run(fixture.name, func(t *testing.T) {
			n, err := NewName(fixture.name)
			_assert.NoError(t, err)
			_assert.Equal(t, fixture.value, uint64(n))
			_assert.Equal(t, fixture.name, n.String())
		})
	}
}

func TestPlaceholderNames(t *testing.T) {
	_assert.Equal(t, "............1", PlaceholderName.String())
	_assert.Equal(t, "............2", PlaceholderPermission.String())
}

func TestNewNameRejectsInvalid(t *testing.T) {
	fixtures := []string{
		"Alice",
		"alice6",
		"a-b",
		"abcdefghijklmn",
		"alice.",
		"abcdefghijklz",
	}

	for _, fixture := range fixtures {
		fixture := fixture
		t.Run(fixture, func(t *testing.T) {
			_, err := NewName(fixture)
			_assert.Error(t, err)
			_assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

func TestNameJSON(t *testing.T) {
	var out struct {
		Account Name `json:"account"`
	}
	err := json.Unmarshal([]byte(`{"account":"eosio.token"}`), &out)
	_assert.NoError(t, err)
	_assert.Equal(t, MustName("eosio.token"), out.Account)

	encoded, err := json.Marshal(out)
	_assert.NoError(t, err)
	_assert.JSONEq(t, `{"account":"eosio.token"}`, string(encoded))

	err = json.Unmarshal([]byte(`{"account":"NOPE"}`), &out)
	_assert.Error(t, err)
}

func TestPermissionLevel(t *testing.T) {
	t.Run("parses actor@permission", func(t *testing.T) {
		level, err := ParsePermissionLevel("alice@active")
		_assert.NoError(t, err)
		_assert.Equal(t, "alice", level.Actor.String())
		_assert.Equal(t, "active", level.Permission.String())
		_assert.Equal(t, "alice@active", level.String())
		_assert.False(t, level.IsEmpty())
	})

	t.Run("rejects empty halves", func(t *testing.T) {
		for _, s := range []string{"@active", "alice@", "@", "alice", "a@b@c"} {
			_, err := ParsePermissionLevel(s)
			_assert.ErrorIs(t, err, ErrInvalidPermissionLevel, s)
		}
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		_, err := NewPermissionLevel("Alice", "active")
		_assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("zero value is empty", func(t *testing.T) {
		_assert.True(t, PermissionLevel{}.IsEmpty())
	})
}

func TestChecksum256(t *testing.T) {
	id := "aca376f206b8fc25a6ed44dbdc66547c36c6c33e3a119ffbeaef943642f0e906"
	c, err := NewChecksum256(id)
	_assert.NoError(t, err)
	_assert.Equal(t, id, c.String())
	_assert.False(t, c.IsZero())

	_, err = NewChecksum256("abcd")
	_assert.ErrorIs(t, err, ErrInvalidChecksum)

	_, err = NewChecksum256("zz" + id[2:])
	_assert.ErrorIs(t, err, ErrInvalidChecksum)
}
