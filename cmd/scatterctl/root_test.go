package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btccom/scattersigner/antelope"
	"github.com/btcsuite/btcd/btcec"
	_assert "github.com/stretchr/testify/require"
)

const (
	transferTxHex     = "80ad2a5cd2042e160000000000000100a6823403ea3055000000572d3ccdcd010000000000855c3400000000a8ed3232040102030400"
	transferTxID      = "4450e5cf3ec082c801ffe4488a5a1d15029101c842e5637a40e4f8fb585cab0d"
	transferEosDigest = "e28c4bfb95864b018af3afb086e6ebbcf5d282daa92803211987c53b32424a08"
)

func execute(t *testing.T, args ...string) (string, error) {
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootLogLevel(t *testing.T) {
	_, err := execute(t, "chains", "--log-level", "debug")
	_assert.NoError(t, err)

	_, err = execute(t, "chains", "--log-level", "loud")
	_assert.EqualError(t, err, `invalid log level "loud"`)
}

func TestResolveChain(t *testing.T) {
	id, chain, err := resolveChain("wax")
	_assert.NoError(t, err)
	_assert.Equal(t, antelope.WaxChain, chain)
	_assert.Equal(t, antelope.WaxChain.ID, id)

	id, chain, err = resolveChain(antelope.EosChain.ID.String())
	_assert.NoError(t, err)
	_assert.Equal(t, antelope.EosChain, chain)
	_assert.Equal(t, antelope.EosChain.ID, id)

	custom := "00000000000000000000000000000000000000000000000000000000000000ff"
	id, chain, err = resolveChain(custom)
	_assert.NoError(t, err)
	_assert.Nil(t, chain)
	_assert.Equal(t, custom, id.String())

	_, _, err = resolveChain("mars")
	_assert.Error(t, err)
}

func TestChainsCmd(t *testing.T) {
	out, err := execute(t, "chains")
	_assert.NoError(t, err)
	_assert.Contains(t, out, "LABEL")
	_assert.Contains(t, out, antelope.WaxChain.ID.String())

	out, err = execute(t, "chains", "--json")
	_assert.NoError(t, err)
	var chains []chainOutput
	_assert.NoError(t, json.Unmarshal([]byte(out), &chains))
	_assert.Len(t, chains, len(antelope.KnownChains()))
}

func TestNetworkCmd(t *testing.T) {
	out, err := execute(t, "network", "--chain", "wax")
	_assert.NoError(t, err)
	_assert.JSONEq(t, `{
		"blockchain": "default",
		"chainId": "`+antelope.WaxChain.ID.String()+`",
		"host": "wax.greymass.com",
		"port": 443,
		"protocol": "https"
	}`, out)

	out, err = execute(t, "network", "http://127.0.0.1:8888", "--chain", "eos")
	_assert.NoError(t, err)
	_assert.Contains(t, out, `"port": 8888`)

	custom := "00000000000000000000000000000000000000000000000000000000000000ff"
	_, err = execute(t, "network", "--chain", custom)
	_assert.Error(t, err)

	_, err = execute(t, "network", "ftp://example.com", "--chain", "eos")
	_assert.Error(t, err)

	_, err = execute(t, "network")
	_assert.Error(t, err)
}

func TestDigestCmd(t *testing.T) {
	out, err := execute(t, "digest", transferTxHex, "--chain", "eos")
	_assert.NoError(t, err)

	var result struct {
		TransactionID string `json:"transaction_id"`
		SigningDigest string `json:"signing_digest"`
	}
	_assert.NoError(t, json.Unmarshal([]byte(out), &result))
	_assert.Equal(t, transferTxID, result.TransactionID)
	_assert.Equal(t, transferEosDigest, result.SigningDigest)

	_, err = execute(t, "digest", "0x"+transferTxHex, "--chain", "eos")
	_assert.NoError(t, err)

	_, err = execute(t, "digest", transferTxHex[:20], "--chain", "eos")
	_assert.Error(t, err)

	_, err = execute(t, "digest", "zz", "--chain", "eos")
	_assert.Error(t, err)
}

func TestVerifyCmd(t *testing.T) {
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), bytes.Repeat([]byte{0x01}, 32))
	pub := antelope.NewPublicKey(priv.PubKey())

	digest, err := hex.DecodeString(transferEosDigest)
	_assert.NoError(t, err)
	sig, err := antelope.SignDigest(priv, digest)
	_assert.NoError(t, err)

	t.Run("over a transaction", func(t *testing.T) {
		out, err := execute(t, "verify", sig.String(), "--chain", "eos", "--tx", transferTxHex, "--key", pub.LegacyString())
		_assert.NoError(t, err)

		var result verifyOutput
		_assert.NoError(t, json.Unmarshal([]byte(out), &result))
		_assert.Equal(t, pub.String(), result.PublicKey)
		_assert.Equal(t, pub.LegacyString(), result.LegacyPublicKey)
		_assert.True(t, *result.Matches)
	})

	t.Run("over a digest", func(t *testing.T) {
		out, err := execute(t, "verify", sig.String(), "--digest", transferEosDigest)
		_assert.NoError(t, err)
		_assert.Contains(t, out, pub.String())
		_assert.NotContains(t, out, "matches")
	})

	t.Run("other key", func(t *testing.T) {
		other, _ := btcec.PrivKeyFromBytes(btcec.S256(), bytes.Repeat([]byte{0x02}, 32))
		_, err := execute(t, "verify", sig.String(), "--digest", transferEosDigest, "--key", antelope.NewPublicKey(other.PubKey()).String())
		_assert.Error(t, err)
	})

	fixtures := []struct {
		name string
		args []string
	}{
		{"no digest", []string{"verify", sig.String()}},
		{"digest and tx", []string{"verify", sig.String(), "--digest", transferEosDigest, "--tx", transferTxHex}},
		{"tx without chain", []string{"verify", sig.String(), "--tx", transferTxHex}},
		{"short digest", []string{"verify", sig.String(), "--digest", "abcd"}},
		{"bad signature", []string{"verify", "SIG_K1_nope", "--digest", transferEosDigest}},
	}
	for _, fixture := range fixtures {
		fixture := fixture
		t.Run(fixture.name, func(t *testing.T) {
			_, err := execute(t, fixture.args...)
			_assert.Error(t, err)
		})
	}
}

func TestABICmd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountName string `json:"account_name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"account_name":"` + req.AccountName + `","abi":{"version":"eosio::abi/1.1"}}`))
	}))
	defer server.Close()

	out, err := execute(t, "abi", "eosio.token", "eosio", "--url", server.URL)
	_assert.NoError(t, err)
	_assert.JSONEq(t, `{
		"eosio.token": {"version": "eosio::abi/1.1"},
		"eosio": {"version": "eosio::abi/1.1"}
	}`, out)

	_, err = execute(t, "abi", "eosio.token")
	_assert.Error(t, err)

	_, err = execute(t, "abi", "Not A Name", "--url", server.URL)
	_assert.Error(t, err)
}
