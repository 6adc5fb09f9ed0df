package types

import (
	"bytes"
	"sort"

	"github.com/spacemeshos/go-scale"

	"github.com/slingshotlabs/go-slingshot/common/util"
	"github.com/slingshotlabs/go-slingshot/hash"
	"github.com/slingshotlabs/go-slingshot/log"
)

// RecordID is the commitment of a record, a 32-byte blake3 sum of the record
// fields. It is the identifier the record is spent by.
type RecordID Hash32

// Hash32 returns the RecordID as a Hash32.
func (id RecordID) Hash32() Hash32 {
	return Hash32(id)
}

// String returns the commitment in hex, with "0x" prepended.
func (id RecordID) String() string {
	return id.Hash32().String()
}

// ShortString returns the first 10 characters of the ID, for logging purposes.
func (id RecordID) ShortString() string {
	return id.Hash32().ShortString()
}

// Bytes returns the RecordID as a byte slice.
func (id RecordID) Bytes() []byte {
	return id[:]
}

// Compare returns true if other is less than this RecordID, by lexicographic comparison.
func (id RecordID) Compare(other RecordID) bool {
	return bytes.Compare(id.Bytes(), other.Bytes()) < 0
}

// Field returns a log field. Implements the LoggableField interface.
func (id RecordID) Field() log.Field { return log.String("commitment", id.ShortString()) }

// EncodeScale implements scale codec interface.
func (id *RecordID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, id[:])
}

// DecodeScale implements scale codec interface.
func (id *RecordID) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, id[:])
}

// Record is a spendable value note. Records are created by transactions and
// consumed whole; a transfer that does not use up the full value of its input
// records produces a change record back to the owner.
type Record struct {
	Owner Address
	// Value in gates.
	Value uint64
	// Data is an opaque payload carried by the record.
	Data []byte
	// Nonce makes records with equal owner, value and data distinct.
	Nonce uint64
}

// EncodeScale implements scale codec interface.
func (r *Record) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := r.Owner.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact64(enc, r.Value)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, r.Data, 4096) // opaque payloads stay small
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact64(enc, r.Nonce)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (r *Record) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := r.Owner.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		r.Value = field
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, 4096) // opaque payloads stay small
		if err != nil {
			return total, err
		}
		total += n
		r.Data = field
	}
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		r.Nonce = field
	}
	return total, nil
}

// Commitment computes the RecordID of the record.
func (r *Record) Commitment() RecordID {
	hasher := hash.GetHasher()
	defer func() {
		hasher.Reset()
		hash.PutHasher(hasher)
	}()
	hasher.Write(r.Owner.Bytes())
	hasher.Write(util.Uint64ToBytes(r.Value))
	hasher.Write(r.Data)
	hasher.Write(util.Uint64ToBytes(r.Nonce))
	var id RecordID
	hasher.Sum(id[:0])
	return id
}

// ToRecordIDs returns the commitments of the given records.
func ToRecordIDs(records []*Record) []RecordID {
	ids := make([]RecordID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.Commitment())
	}
	return ids
}

// SortRecordIDs sorts a list of RecordID in their lexicographic order, in-place.
func SortRecordIDs(ids []RecordID) []RecordID {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) })
	return ids
}
