package scatter

import (
	"net"
	"net/url"
	"strconv"

	"github.com/btccom/scattersigner/antelope"
	"github.com/btccom/scattersigner/session"
	"github.com/pkg/errors"
)

// DefaultNetworkLabel is the blockchain label of every
// network we build.
const DefaultNetworkLabel = "default"

var defaultPorts = map[string]int{
	"https": 443,
	"http":  80,
}

// BuildNetwork converts the host's chain definition into
// the wallet's network descriptor. The port is the one in
// the URL, or the scheme's default.
func BuildNetwork(chain session.ChainDefinition) (*NetworkDescriptor, error) {
	const op = "build network"

	if chain.ID.IsZero() {
		return nil, newError(op, ErrInvalidChain, errors.New("chain id is required"))
	}
	if chain.URL == "" {
		return nil, newError(op, ErrInvalidChain, errors.New("chain url is required"))
	}

	u, err := url.Parse(chain.URL)
	if err != nil {
		return nil, newError(op, ErrInvalidChain, err)
	}

	defaultPort, ok := defaultPorts[u.Scheme]
	if !ok {
		return nil, newError(op, ErrInvalidChain, errors.Errorf("unsupported scheme %q", u.Scheme))
	}
	if u.Hostname() == "" {
		return nil, newError(op, ErrInvalidChain, errors.Errorf("%q has no host", chain.URL))
	}

	port := defaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return nil, newError(op, ErrInvalidChain, errors.Errorf("invalid port %q", p))
		}
	}

	return &NetworkDescriptor{
		Blockchain: DefaultNetworkLabel,
		ChainID:    chain.ID,
		Host:       u.Hostname(),
		Port:       port,
		Protocol:   u.Scheme,
	}, nil
}

// BuildNetworks builds a descriptor for each chain,
// skipping repeated chain ids.
func BuildNetworks(chains []session.ChainDefinition) ([]NetworkDescriptor, error) {
	seen := make(map[antelope.Checksum256]bool)
	networks := make([]NetworkDescriptor, 0, len(chains))
	for _, chain := range chains {
		if seen[chain.ID] {
			continue
		}
		network, err := BuildNetwork(chain)
		if err != nil {
			return nil, err
		}
		seen[chain.ID] = true
		networks = append(networks, *network)
	}
	return networks, nil
}

// Fullhost returns host:port
func (n *NetworkDescriptor) Fullhost() string {
	return net.JoinHostPort(n.Host, strconv.Itoa(n.Port))
}

// URL returns the API endpoint the descriptor was
// built from.
func (n *NetworkDescriptor) URL() string {
	return n.Protocol + "://" + n.Fullhost()
}

// ChainDefinition converts the descriptor back to
// the host's form.
func (n *NetworkDescriptor) ChainDefinition() session.ChainDefinition {
	return session.ChainDefinition{ID: n.ChainID, URL: n.URL()}
}
