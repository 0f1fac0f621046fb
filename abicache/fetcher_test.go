package abicache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btccom/scattersigner/antelope"
	_assert "github.com/stretchr/testify/require"
)

func newChainAPI(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chain/get_abi" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}

		var req struct {
			AccountName string `json:"account_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		switch req.AccountName {
		case "eosio.token":
			w.Write([]byte(`{"account_name":"eosio.token","abi":{"version":"eosio::abi/1.1","actions":[{"name":"transfer","type":"transfer"}]}}`))
		case "alice":
			w.Write([]byte(`{"account_name":"alice"}`))
		case "bob":
			w.Write([]byte(`{"account_name":"eosio"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"code":500,"message":"Internal Service Error"}`))
		}
	}))
}

func TestHTTPFetcher(t *testing.T) {
	server := newChainAPI(t)
	defer server.Close()

	fetcher := NewHTTPFetcher(server.URL+"/", WithHTTPClient(server.Client()))

	t.Run("returns the abi", func(t *testing.T) {
		abi, err := fetcher.GetABI(context.Background(), antelope.MustName("eosio.token"))
		_assert.NoError(t, err)
		_assert.JSONEq(t, `{"version":"eosio::abi/1.1","actions":[{"name":"transfer","type":"transfer"}]}`, string(abi))
	})

	t.Run("account without a contract", func(t *testing.T) {
		_, err := fetcher.GetABI(context.Background(), antelope.MustName("alice"))
		_assert.ErrorIs(t, err, ErrABINotFound)
	})

	t.Run("mismatched account", func(t *testing.T) {
		_, err := fetcher.GetABI(context.Background(), antelope.MustName("bob"))
		_assert.Error(t, err)
	})

	t.Run("node error", func(t *testing.T) {
		_, err := fetcher.GetABI(context.Background(), antelope.MustName("carol"))
		_assert.Error(t, err)
		_assert.Contains(t, err.Error(), "500")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := fetcher.GetABI(ctx, antelope.MustName("eosio.token"))
		_assert.Error(t, err)
	})
}

func TestCacheInFrontOfFetcher(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"account_name":"eosio.token","abi":{"version":"eosio::abi/1.1"}}`))
	}))
	defer server.Close()

	cache := New(NewHTTPFetcher(server.URL))
	for i := 0; i < 3; i++ {
		_, err := cache.GetABI(context.Background(), antelope.MustName("eosio.token"))
		_assert.NoError(t, err)
	}
	_assert.Equal(t, 1, hits)
}
