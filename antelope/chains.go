package antelope

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	// ChainEos is the label for the EOS mainnet
	ChainEos = "EOS"

	// ChainJungle4 is the label for the Jungle 4 testnet
	ChainJungle4 = "JUNGLE4"

	// ChainKylin is the label for the Kylin testnet
	ChainKylin = "KYLIN"

	// ChainTelos is the label for the Telos mainnet
	ChainTelos = "TELOS"

	// ChainTelosTest is the label for the Telos testnet
	ChainTelosTest = "TELOSTESTNET"

	// ChainWax is the label for the WAX mainnet
	ChainWax = "WAX"

	// ChainWaxTest is the label for the WAX testnet
	ChainWaxTest = "WAXTESTNET"

	// ChainFio is the label for the FIO mainnet
	ChainFio = "FIO"

	// ChainFioTest is the label for the FIO testnet
	ChainFioTest = "FIOTESTNET"

	// ChainProton is the label for the Proton mainnet
	ChainProton = "PROTON"

	// ChainProtonTest is the label for the Proton testnet
	ChainProtonTest = "PROTONTESTNET"

	// ChainUx is the label for the UX Network
	ChainUx = "UX"

	// ChainLibre is the label for the Libre mainnet
	ChainLibre = "LIBRE"
)

// ErrUnknownChain is returned when a label isn't
// in the known chain table.
var ErrUnknownChain = errors.New("unknown chain")

// Chain describes a well known network
type Chain struct {
	// Label is the upper case shortcode for the chain
	Label string

	// ID is the chain id, the hash of the genesis state
	ID Checksum256

	// URL is a public API endpoint for the chain
	URL string
}

var (
	EosChain = &Chain{
		Label: ChainEos,
		ID:    MustChecksum256("aca376f206b8fc25a6ed44dbdc66547c36c6c33e3a119ffbeaef943642f0e906"),
		URL:   "https://eos.greymass.com",
	}

	Jungle4Chain = &Chain{
		Label: ChainJungle4,
		ID:    MustChecksum256("73e4385a2708e6d7048834fbc1079f2fabb17b3c125b146af438971e90716c4d"),
		URL:   "https://jungle4.greymass.com",
	}

	KylinChain = &Chain{
		Label: ChainKylin,
		ID:    MustChecksum256("5fff1dae8dc8e2fc4d5b23b2c7665c97f9e9d8edf2b6485a86ba311c25639191"),
		URL:   "https://kylintestnet.greymass.com",
	}

	TelosChain = &Chain{
		Label: ChainTelos,
		ID:    MustChecksum256("4667b205c6838ef70ff7988f6e8257e8be0e1284a2f59699054a018f743b1d11"),
		URL:   "https://telos.greymass.com",
	}

	TelosTestChain = &Chain{
		Label: ChainTelosTest,
		ID:    MustChecksum256("1eaa0824707c8c16bd25145493bf062aecddfeb56c736f6ba6397f3195f33c9f"),
		URL:   "https://telostestnet.greymass.com",
	}

	WaxChain = &Chain{
		Label: ChainWax,
		ID:    MustChecksum256("1064487b3cd1a897ce03ae5b6a865651747e2e152090f99c1d19d44e01aea5a4"),
		URL:   "https://wax.greymass.com",
	}

	WaxTestChain = &Chain{
		Label: ChainWaxTest,
		ID:    MustChecksum256("f16b1833c747c43682f4386fca9cbb327929334a762755ebec17f6f23c9b8a12"),
		URL:   "https://waxtestnet.greymass.com",
	}

	FioChain = &Chain{
		Label: ChainFio,
		ID:    MustChecksum256("21dcae42c0182200e93f954a074011f9048a7624c6fe81d3c9541a614a88bd1c"),
		URL:   "https://fio.greymass.com",
	}

	FioTestChain = &Chain{
		Label: ChainFioTest,
		ID:    MustChecksum256("b20901380af44ef59c5918439a1f9a41d83669020319a80574b804a5f95cbd7e"),
		URL:   "https://fiotestnet.greymass.com",
	}

	ProtonChain = &Chain{
		Label: ChainProton,
		ID:    MustChecksum256("384da888112027f0321850a169f737c33e53b388aad48b5adace4bab97f437e0"),
		URL:   "https://proton.greymass.com",
	}

	ProtonTestChain = &Chain{
		Label: ChainProtonTest,
		ID:    MustChecksum256("71ee83bcf52142d61019d95f9cc5427ba6a0d7ff8accd9e2088ae2abeaf3d3dd"),
		URL:   "https://proton-testnet.greymass.com",
	}

	UxChain = &Chain{
		Label: ChainUx,
		ID:    MustChecksum256("8fc6dce7942189f842170de953932b1f66693ad3788f766e777b6f9d22335c02"),
		URL:   "https://api.uxnetwork.io",
	}

	LibreChain = &Chain{
		Label: ChainLibre,
		ID:    MustChecksum256("38b1d7815474d0c60683ecbea321d723e83f5da6ae5f1c1f9fecc69d9ba96465"),
		URL:   "https://libre.greymass.com",
	}
)

var knownChains = map[string]*Chain{
	ChainEos:        EosChain,
	ChainJungle4:    Jungle4Chain,
	ChainKylin:      KylinChain,
	ChainTelos:      TelosChain,
	ChainTelosTest:  TelosTestChain,
	ChainWax:        WaxChain,
	ChainWaxTest:    WaxTestChain,
	ChainFio:        FioChain,
	ChainFioTest:    FioTestChain,
	ChainProton:     ProtonChain,
	ChainProtonTest: ProtonTestChain,
	ChainUx:         UxChain,
	ChainLibre:      LibreChain,
}

// LookupChain finds a chain by label, ignoring case
func LookupChain(label string) (*Chain, error) {
	chain, ok := knownChains[strings.ToUpper(strings.TrimSpace(label))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownChain, "no chain with label %q", label)
	}
	return chain, nil
}

// LookupChainByID finds a chain by its id
func LookupChainByID(id Checksum256) (*Chain, error) {
	for _, chain := range knownChains {
		if chain.ID == id {
			return chain, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownChain, "no chain with id %s", id)
}

// KnownChains returns every chain in the table, sorted by label
func KnownChains() []*Chain {
	chains := make([]*Chain, 0, len(knownChains))
	for _, chain := range knownChains {
		chains = append(chains, chain)
	}
	sort.Slice(chains, func(i, j int) bool {
		return chains[i].Label < chains[j].Label
	})
	return chains
}
