package antelope

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
)

const timePointSecFormat = "2006-01-02T15:04:05"

// TimePointSec is a second resolution UTC timestamp.
type TimePointSec uint32

// NewTimePointSec truncates t to seconds
func NewTimePointSec(t time.Time) TimePointSec {
	return TimePointSec(uint32(t.Unix()))
}

// Time returns the timestamp as a time.Time in UTC
func (t TimePointSec) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// MarshalText implements encoding.TextMarshaler
func (t TimePointSec) MarshalText() ([]byte, error) {
	return []byte(t.Time().Format(timePointSecFormat)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimePointSec) UnmarshalText(text []byte) error {
	parsed, err := time.Parse(timePointSecFormat, string(text))
	if err != nil {
		return errors.Wrap(err, "invalid time_point_sec")
	}
	*t = NewTimePointSec(parsed)
	return nil
}

// Action is a contract call with its authorizations
// and serialized arguments.
type Action struct {
	Account       Name              `json:"account"`
	Name          Name              `json:"name"`
	Authorization []PermissionLevel `json:"authorization"`
	Data          HexBytes          `json:"data"`
}

// Extension is an opaque transaction extension
type Extension struct {
	Type uint16   `json:"type"`
	Data HexBytes `json:"data"`
}

// TransactionHeader holds the TaPoS and resource fields
type TransactionHeader struct {
	Expiration       TimePointSec `json:"expiration"`
	RefBlockNum      uint16       `json:"ref_block_num"`
	RefBlockPrefix   uint32       `json:"ref_block_prefix"`
	MaxNetUsageWords uint32       `json:"max_net_usage_words"`
	MaxCPUUsageMS    uint8        `json:"max_cpu_usage_ms"`
	DelaySec         uint32       `json:"delay_sec"`
}

// Transaction is an unsigned transaction
type Transaction struct {
	TransactionHeader
	ContextFreeActions []Action    `json:"context_free_actions"`
	Actions            []Action    `json:"actions"`
	Extensions         []Extension `json:"transaction_extensions"`
}

// MarshalBinary serializes the transaction to the
// wire format that is signed.
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	enc := NewEncoder()
	enc.WriteTransaction(tx)
	return enc.Bytes(), nil
}

// UnmarshalBinary decodes a serialized transaction,
// rejecting trailing bytes.
func (tx *Transaction) UnmarshalBinary(data []byte) error {
	dec := NewDecoder(data)
	decoded, err := dec.ReadTransaction()
	if err != nil {
		return err
	}
	if dec.Remaining() != 0 {
		return errors.Errorf("transaction has %d trailing bytes", dec.Remaining())
	}
	*tx = *decoded
	return nil
}

// DecodeTransaction is a convenience around UnmarshalBinary
func DecodeTransaction(data []byte) (*Transaction, error) {
	tx := &Transaction{}
	if err := tx.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return tx, nil
}

// Equal compares the canonical encoding of both
// transactions.
func (tx *Transaction) Equal(other *Transaction) bool {
	if tx == nil || other == nil {
		return tx == other
	}
	a, _ := tx.MarshalBinary()
	b, _ := other.MarshalBinary()
	return bytes.Equal(a, b)
}

// Clone returns a deep copy
func (tx *Transaction) Clone() *Transaction {
	clone := &Transaction{
		TransactionHeader:  tx.TransactionHeader,
		ContextFreeActions: cloneActions(tx.ContextFreeActions),
		Actions:            cloneActions(tx.Actions),
	}
	if tx.Extensions != nil {
		clone.Extensions = make([]Extension, len(tx.Extensions))
		for i, ext := range tx.Extensions {
			clone.Extensions[i] = Extension{
				Type: ext.Type,
				Data: append(HexBytes(nil), ext.Data...),
			}
		}
	}
	return clone
}

func cloneActions(actions []Action) []Action {
	if actions == nil {
		return nil
	}
	out := make([]Action, len(actions))
	for i, a := range actions {
		out[i] = Action{
			Account:       a.Account,
			Name:          a.Name,
			Authorization: append([]PermissionLevel(nil), a.Authorization...),
			Data:          append(HexBytes(nil), a.Data...),
		}
	}
	return out
}
