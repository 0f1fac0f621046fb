package abicache

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/btccom/scattersigner/antelope"
	"github.com/pkg/errors"
	_assert "github.com/stretchr/testify/require"
)

type countingSource struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *countingSource) GetABI(ctx context.Context, account antelope.Name) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(`{"account":"` + account.String() + `"}`), nil
}

func TestCacheHitsAndMisses(t *testing.T) {
	source := &countingSource{}
	cache := New(source)
	token := antelope.MustName("eosio.token")

	abi, err := cache.GetABI(context.Background(), token)
	_assert.NoError(t, err)
	_assert.JSONEq(t, `{"account":"eosio.token"}`, string(abi))
	_assert.Equal(t, 1, source.calls)

	abi, err = cache.GetABI(context.Background(), token)
	_assert.NoError(t, err)
	_assert.JSONEq(t, `{"account":"eosio.token"}`, string(abi))
	_assert.Equal(t, 1, source.calls)
	_assert.Equal(t, 1, cache.Len())

	cache.Invalidate(token)
	_assert.Equal(t, 0, cache.Len())
	_, err = cache.GetABI(context.Background(), token)
	_assert.NoError(t, err)
	_assert.Equal(t, 2, source.calls)
}

func TestCacheTTL(t *testing.T) {
	source := &countingSource{}
	cache := New(source, WithTTL(time.Minute))
	now := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	eosio := antelope.MustName("eosio")

	_, err := cache.GetABI(context.Background(), eosio)
	_assert.NoError(t, err)

	now = now.Add(59 * time.Second)
	_, err = cache.GetABI(context.Background(), eosio)
	_assert.NoError(t, err)
	_assert.Equal(t, 1, source.calls)

	now = now.Add(time.Second)
	_, err = cache.GetABI(context.Background(), eosio)
	_assert.NoError(t, err)
	_assert.Equal(t, 2, source.calls)
}

func TestCacheErrors(t *testing.T) {
	t.Run("source errors are not cached", func(t *testing.T) {
		source := &countingSource{err: errors.New("node down")}
		cache := New(source)
		_, err := cache.GetABI(context.Background(), antelope.MustName("eosio"))
		_assert.EqualError(t, err, "node down")
		_assert.Equal(t, 0, cache.Len())
	})

	t.Run("no source only serves seeded entries", func(t *testing.T) {
		cache := New(nil)
		_, err := cache.GetABI(context.Background(), antelope.MustName("eosio"))
		_assert.ErrorIs(t, err, ErrABINotFound)

		cache.Set(antelope.MustName("eosio"), json.RawMessage(`{}`))
		abi, err := cache.GetABI(context.Background(), antelope.MustName("eosio"))
		_assert.NoError(t, err)
		_assert.Equal(t, `{}`, string(abi))
	})
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := New(&countingSource{})
	names := []antelope.Name{
		antelope.MustName("eosio"),
		antelope.MustName("eosio.token"),
		antelope.MustName("alice"),
	}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := cache.GetABI(context.Background(), names[i%len(names)])
			_assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	_assert.Equal(t, len(names), cache.Len())
}
