package antelope

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrUnexpectedEOF is returned by the Decoder when
// a read runs past the end of the input.
var ErrUnexpectedEOF = errors.New("unexpected end of data")

// Encoder writes the little endian wire format
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an empty Encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns everything written so far
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// WriteUint8 writes a single byte
func (e *Encoder) WriteUint8(v uint8) {
	e.buf.WriteByte(v)
}

// WriteUint16 writes v little endian
func (e *Encoder) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.buf.Write(b[:])
}

// WriteUint32 writes v little endian
func (e *Encoder) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

// WriteUint64 writes v little endian
func (e *Encoder) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

// WriteVarUint32 writes v as LEB128
func (e *Encoder) WriteVarUint32(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		e.buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// WriteBytes writes a length prefixed byte string
func (e *Encoder) WriteBytes(data []byte) {
	e.WriteVarUint32(uint32(len(data)))
	e.buf.Write(data)
}

// WriteName writes the name's uint64 value
func (e *Encoder) WriteName(n Name) {
	e.WriteUint64(uint64(n))
}

// WritePermissionLevel writes the actor then the permission
func (e *Encoder) WritePermissionLevel(p PermissionLevel) {
	e.WriteName(p.Actor)
	e.WriteName(p.Permission)
}

// WriteAction writes a single action
func (e *Encoder) WriteAction(a *Action) {
	e.WriteName(a.Account)
	e.WriteName(a.Name)
	e.WriteVarUint32(uint32(len(a.Authorization)))
	for _, auth := range a.Authorization {
		e.WritePermissionLevel(auth)
	}
	e.WriteBytes(a.Data)
}

// WriteTransaction writes the header, actions and extensions of tx
func (e *Encoder) WriteTransaction(tx *Transaction) {
	e.WriteUint32(uint32(tx.Expiration))
	e.WriteUint16(tx.RefBlockNum)
	e.WriteUint32(tx.RefBlockPrefix)
	e.WriteVarUint32(tx.MaxNetUsageWords)
	e.WriteUint8(tx.MaxCPUUsageMS)
	e.WriteVarUint32(tx.DelaySec)

	e.WriteVarUint32(uint32(len(tx.ContextFreeActions)))
	for i := range tx.ContextFreeActions {
		e.WriteAction(&tx.ContextFreeActions[i])
	}
	e.WriteVarUint32(uint32(len(tx.Actions)))
	for i := range tx.Actions {
		e.WriteAction(&tx.Actions[i])
	}
	e.WriteVarUint32(uint32(len(tx.Extensions)))
	for _, ext := range tx.Extensions {
		e.WriteUint16(ext.Type)
		e.WriteBytes(ext.Data)
	}
}

// Decoder reads the wire format from a byte slice
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder initializes a Decoder over data
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

func (d *Decoder) read(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "need %d bytes at offset %d", n, d.pos)
	}
	out := d.data[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

// ReadUint8 reads a single byte
func (d *Decoder) ReadUint8() (uint8, error) {
	b, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a little endian uint16
func (d *Decoder) ReadUint16() (uint16, error) {
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a little endian uint32
func (d *Decoder) ReadUint32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a little endian uint64
func (d *Decoder) ReadUint64() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadVarUint32 reads a LEB128 value of at most 5 bytes
func (d *Decoder) ReadVarUint32() (uint32, error) {
	var v uint64
	for shift := uint(0); shift < 35; shift += 7 {
		b, err := d.ReadUint8()
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			if v > 0xffffffff {
				return 0, errors.New("varuint32 overflows")
			}
			return uint32(v), nil
		}
	}
	return 0, errors.New("varuint32 is too long")
}

// ReadBytes reads a length prefixed byte string, the
// result is a copy.
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadVarUint32()
	if err != nil {
		return nil, err
	}
	b, err := d.read(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

// ReadName reads a name
func (d *Decoder) ReadName() (Name, error) {
	v, err := d.ReadUint64()
	return Name(v), err
}

// ReadPermissionLevel reads an actor and permission
func (d *Decoder) ReadPermissionLevel() (PermissionLevel, error) {
	actor, err := d.ReadName()
	if err != nil {
		return PermissionLevel{}, err
	}
	permission, err := d.ReadName()
	if err != nil {
		return PermissionLevel{}, err
	}
	return PermissionLevel{Actor: actor, Permission: permission}, nil
}

// readCount reads a collection length, and sanity checks
// it against the bytes left so a hostile length can't
// trigger a huge allocation.
func (d *Decoder) readCount(minElemSize int) (int, error) {
	n, err := d.ReadVarUint32()
	if err != nil {
		return 0, err
	}
	if int(n)*minElemSize > d.Remaining() {
		return 0, errors.Wrapf(ErrUnexpectedEOF, "collection of %d elements exceeds remaining data", n)
	}
	return int(n), nil
}

// ReadAction reads a single action
func (d *Decoder) ReadAction() (Action, error) {
	var a Action
	var err error
	if a.Account, err = d.ReadName(); err != nil {
		return a, errors.Wrap(err, "action account")
	}
	if a.Name, err = d.ReadName(); err != nil {
		return a, errors.Wrap(err, "action name")
	}

	n, err := d.readCount(16)
	if err != nil {
		return a, errors.Wrap(err, "action authorization")
	}
	a.Authorization = make([]PermissionLevel, n)
	for i := 0; i < n; i++ {
		if a.Authorization[i], err = d.ReadPermissionLevel(); err != nil {
			return a, errors.Wrap(err, "action authorization")
		}
	}

	data, err := d.ReadBytes()
	if err != nil {
		return a, errors.Wrap(err, "action data")
	}
	a.Data = data
	return a, nil
}

func (d *Decoder) readActions() ([]Action, error) {
	n, err := d.readCount(17)
	if err != nil {
		return nil, err
	}
	actions := make([]Action, n)
	for i := 0; i < n; i++ {
		if actions[i], err = d.ReadAction(); err != nil {
			return nil, errors.Wrapf(err, "action %d", i)
		}
	}
	return actions, nil
}

// ReadTransaction reads a transaction, leaving any
// trailing bytes unread
func (d *Decoder) ReadTransaction() (*Transaction, error) {
	tx := &Transaction{}
	var err error

	expiration, err := d.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "expiration")
	}
	tx.Expiration = TimePointSec(expiration)
	if tx.RefBlockNum, err = d.ReadUint16(); err != nil {
		return nil, errors.Wrap(err, "ref_block_num")
	}
	if tx.RefBlockPrefix, err = d.ReadUint32(); err != nil {
		return nil, errors.Wrap(err, "ref_block_prefix")
	}
	if tx.MaxNetUsageWords, err = d.ReadVarUint32(); err != nil {
		return nil, errors.Wrap(err, "max_net_usage_words")
	}
	if tx.MaxCPUUsageMS, err = d.ReadUint8(); err != nil {
		return nil, errors.Wrap(err, "max_cpu_usage_ms")
	}
	if tx.DelaySec, err = d.ReadVarUint32(); err != nil {
		return nil, errors.Wrap(err, "delay_sec")
	}

	if tx.ContextFreeActions, err = d.readActions(); err != nil {
		return nil, errors.Wrap(err, "context_free_actions")
	}
	if tx.Actions, err = d.readActions(); err != nil {
		return nil, errors.Wrap(err, "actions")
	}

	n, err := d.readCount(3)
	if err != nil {
		return nil, errors.Wrap(err, "transaction_extensions")
	}
	tx.Extensions = make([]Extension, n)
	for i := 0; i < n; i++ {
		if tx.Extensions[i].Type, err = d.ReadUint16(); err != nil {
			return nil, errors.Wrap(err, "transaction_extensions")
		}
		if tx.Extensions[i].Data, err = d.ReadBytes(); err != nil {
			return nil, errors.Wrap(err, "transaction_extensions")
		}
	}

	return tx, nil
}
