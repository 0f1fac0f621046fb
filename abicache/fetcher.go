package abicache

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/btccom/scattersigner/antelope"
	"github.com/pkg/errors"
)

const getABIPath = "/v1/chain/get_abi"

// maxErrorBody bounds how much of an error response
// ends up in an error message.
const maxErrorBody = 512

// ErrABINotFound is returned when an account has no
// contract deployed.
var ErrABINotFound = errors.New("abi not found")

// FetcherOption configures an HTTPFetcher
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient replaces http.DefaultClient
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		f.client = client
	}
}

// HTTPFetcher loads ABIs from a chain API node
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher returns a fetcher for the node at baseURL
func NewHTTPFetcher(baseURL string, opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type getABIRequest struct {
	AccountName antelope.Name `json:"account_name"`
}

type getABIResponse struct {
	AccountName antelope.Name   `json:"account_name"`
	ABI         json.RawMessage `json:"abi"`
}

// GetABI calls get_abi for account
func (f *HTTPFetcher) GetABI(ctx context.Context, account antelope.Name) (json.RawMessage, error) {
	body, err := json.Marshal(getABIRequest{AccountName: account})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode get_abi request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+getABIPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create get_abi request")
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debugf("fetching abi for %s from %s", account, f.baseURL)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get_abi for %s failed", account)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.Errorf("get_abi for %s returned %s: %s", account, resp.Status, strings.TrimSpace(string(msg)))
	}

	var out getABIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrapf(err, "failed to decode get_abi response for %s", account)
	}

	if out.AccountName != account {
		return nil, errors.Errorf("get_abi returned account %s, expected %s", out.AccountName, account)
	}
	if len(out.ABI) == 0 || string(out.ABI) == "null" {
		return nil, errors.Wrapf(ErrABINotFound, "%s has no contract", account)
	}

	return out.ABI, nil
}
