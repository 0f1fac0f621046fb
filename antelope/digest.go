package antelope

import (
	"github.com/btcsuite/fastsha256"
)

// TransactionID is the sha256 of the serialized transaction
func TransactionID(serializedTx []byte) Checksum256 {
	return Checksum256(fastsha256.Sum256(serializedTx))
}

// SigningDigest computes the digest signed by each key:
// sha256(chainID || serializedTx || cfdHash), where cfdHash
// is 32 zero bytes when there is no context free data.
func SigningDigest(chainID Checksum256, serializedTx []byte, contextFreeData []byte) []byte {
	var cfdHash Checksum256
	if len(contextFreeData) > 0 {
		cfdHash = Checksum256(fastsha256.Sum256(contextFreeData))
	}

	data := make([]byte, 0, len(chainID)+len(serializedTx)+len(cfdHash))
	data = append(data, chainID[:]...)
	data = append(data, serializedTx...)
	data = append(data, cfdHash[:]...)

	digest := fastsha256.Sum256(data)
	return digest[:]
}
