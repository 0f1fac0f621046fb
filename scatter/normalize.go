package scatter

import (
	"strings"

	"github.com/btccom/scattersigner/antelope"
	"github.com/btccom/scattersigner/session"
)

// ResolvedIdentity is the chain and permission a login
// settled on.
type ResolvedIdentity struct {
	Chain           antelope.Checksum256
	PermissionLevel antelope.PermissionLevel
}

// Normalize converts the wallet's account into a chain id
// and permission level. An account chain id is used as is,
// otherwise the blockchain label is looked up in the known
// chain table. requested is only consulted for logging.
func Normalize(account Account, requested []session.ChainDefinition) (*ResolvedIdentity, error) {
	const op = "normalize"

	var chainID antelope.Checksum256
	if account.ChainID != "" {
		id, err := antelope.NewChecksum256(strings.ToLower(account.ChainID))
		if err != nil {
			return nil, newError(op, ErrMalformedIdentity, err)
		}
		chainID = id
	} else {
		chain, err := antelope.LookupChain(account.Blockchain)
		if err != nil {
			return nil, newError(op, ErrUnknownChain, err)
		}
		chainID = chain.ID
	}

	level, err := antelope.NewPermissionLevel(account.Name, account.Authority)
	if err != nil {
		return nil, newError(op, ErrMalformedIdentity, err)
	}

	if len(requested) > 0 && !containsChain(requested, chainID) {
		log.Warnf("wallet account %s is on chain %s, which wasn't requested", level, chainID)
	}

	return &ResolvedIdentity{
		Chain:           chainID,
		PermissionLevel: level,
	}, nil
}

func containsChain(chains []session.ChainDefinition, id antelope.Checksum256) bool {
	for _, chain := range chains {
		if chain.ID == id {
			return true
		}
	}
	return false
}
