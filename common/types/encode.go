package types

import (
	"fmt"

	"github.com/slingshotlabs/go-slingshot/codec"
)

// TransactionToBytes serializes a Transaction.
func TransactionToBytes(t *Transaction) ([]byte, error) {
	buf, err := codec.Encode(t)
	if err != nil {
		return nil, fmt.Errorf("encode transaction: %w", err)
	}
	return buf, nil
}

// BytesToTransaction deserializes a Transaction and sets its cached ID.
func BytesToTransaction(buf []byte) (*Transaction, error) {
	t := Transaction{}
	if err := codec.Decode(buf, &t); err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	if err := t.CalcAndSetID(); err != nil {
		return nil, err
	}
	return &t, nil
}

// BlockToBytes serializes a Block. The cached hash is unexported and stays
// out of the encoding.
func BlockToBytes(b *Block) ([]byte, error) {
	buf, err := codec.Encode(b)
	if err != nil {
		return nil, fmt.Errorf("encode block: %w", err)
	}
	return buf, nil
}

// BytesToBlock deserializes a Block and initializes its cached hashes.
func BytesToBlock(buf []byte) (*Block, error) {
	b := Block{}
	if err := codec.Decode(buf, &b); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	if err := b.Initialize(); err != nil {
		return nil, err
	}
	return &b, nil
}

// RecordToBytes serializes a Record.
func RecordToBytes(r *Record) ([]byte, error) {
	buf, err := codec.Encode(r)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return buf, nil
}

// BytesToRecord deserializes a Record.
func BytesToRecord(buf []byte) (*Record, error) {
	r := Record{}
	if err := codec.Decode(buf, &r); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &r, nil
}

// ProgramToBytes serializes a Program.
func ProgramToBytes(p *Program) ([]byte, error) {
	buf, err := codec.Encode(p)
	if err != nil {
		return nil, fmt.Errorf("encode program: %w", err)
	}
	return buf, nil
}

// BytesToProgram deserializes a Program.
func BytesToProgram(buf []byte) (*Program, error) {
	p := Program{}
	if err := codec.Decode(buf, &p); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	return &p, nil
}

// RecordIDsToBytes serializes a slice of RecordIDs, sorted in lexicographic
// order so the encoding is canonical.
func RecordIDsToBytes(ids []RecordID) ([]byte, error) {
	SortRecordIDs(ids)
	buf, err := codec.EncodeSlice(ids)
	if err != nil {
		return nil, fmt.Errorf("encode record ids: %w", err)
	}
	return buf, nil
}

// BytesToRecordIDs deserializes a slice of RecordIDs.
func BytesToRecordIDs(buf []byte) ([]RecordID, error) {
	ids, err := codec.DecodeSlice[RecordID](buf)
	if err != nil {
		return nil, fmt.Errorf("decode record ids: %w", err)
	}
	return ids, nil
}

// TransactionIDsToBytes serializes a slice of TransactionIDs in the given
// order.
func TransactionIDsToBytes(ids []TransactionID) ([]byte, error) {
	buf, err := codec.EncodeSlice(ids)
	if err != nil {
		return nil, fmt.Errorf("encode transaction ids: %w", err)
	}
	return buf, nil
}

// BytesToTransactionIDs deserializes a slice of TransactionIDs.
func BytesToTransactionIDs(buf []byte) ([]TransactionID, error) {
	ids, err := codec.DecodeSlice[TransactionID](buf)
	if err != nil {
		return nil, fmt.Errorf("decode transaction ids: %w", err)
	}
	return ids, nil
}
