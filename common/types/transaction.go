package types

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/spacemeshos/go-scale"

	"github.com/slingshotlabs/go-slingshot/codec"
	"github.com/slingshotlabs/go-slingshot/log"
)

// TransactionID is a 32-byte hash of the serialized transaction, used as an
// identifier.
type TransactionID Hash32

const (
	// TransactionIDSize in bytes.
	TransactionIDSize = Hash32Length
)

// EmptyTransactionID is a canonical empty TransactionID.
var EmptyTransactionID = TransactionID{}

// Hash32 returns the TransactionID as a Hash32.
func (id TransactionID) Hash32() Hash32 {
	return Hash32(id)
}

// ShortString returns the first 10 characters of the ID, for logging purposes.
func (id TransactionID) ShortString() string {
	return id.Hash32().ShortString()
}

// String returns a hexadecimal representation of the TransactionID with "0x"
// prepended, for logging purposes. It implements the fmt.Stringer interface.
func (id TransactionID) String() string {
	return id.Hash32().String()
}

// Bytes returns the TransactionID as a byte slice.
func (id TransactionID) Bytes() []byte {
	return id[:]
}

// Compare returns true if other is less than this TransactionID, by lexicographic comparison.
func (id TransactionID) Compare(other TransactionID) bool {
	return bytes.Compare(id.Bytes(), other.Bytes()) < 0
}

// Field returns a log field. Implements the LoggableField interface.
func (id TransactionID) Field() log.Field { return log.String("tx_id", id.ShortString()) }

// EncodeScale implements scale codec interface.
func (id *TransactionID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, id[:])
}

// DecodeScale implements scale codec interface.
func (id *TransactionID) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, id[:])
}

// TransactionKind discriminates the transaction body.
type TransactionKind uint32

const (
	// TransferTransaction moves value between accounts.
	TransferTransaction TransactionKind = iota + 1
	// DeployTransaction registers a program on chain.
	DeployTransaction
	// ExecuteTransaction records a function call against a deployed program.
	ExecuteTransaction
)

// String implements fmt.Stringer.
func (k TransactionKind) String() string {
	switch k {
	case TransferTransaction:
		return "transfer"
	case DeployTransaction:
		return "deploy"
	case ExecuteTransaction:
		return "execute"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(k))
	}
}

// TransferBody consumes input records and mints output records. The sum of
// output values plus the fee must equal the sum of consumed values.
type TransferBody struct {
	// Inputs are the commitments of the consumed records.
	Inputs []RecordID
	// Outputs are the records minted by the transfer.
	Outputs []Record
}

// DeployBody registers a program on chain. Fee is the record spend paying
// the deployment fee, charged against the deployer's largest record; it is
// empty when Transaction.Fee is zero.
type DeployBody struct {
	Program Program
	Fee     TransferBody
}

// ExecuteBody records a function call against a deployed program. Inputs are
// carried verbatim as given on the command line. Fee is the record spend
// paying the execution fee, empty when Transaction.Fee is zero.
type ExecuteBody struct {
	ProgramID ProgramID
	Function  string
	Inputs    []string
	Fee       TransferBody
}

// Transaction is a single chain operation. Exactly one of the body pointers
// is set, selected by Kind.
type Transaction struct {
	Kind     TransactionKind
	Transfer *TransferBody
	Deploy   *DeployBody
	Execute  *ExecuteBody

	// Fee in gates. On a development chain it is burned, not collected.
	Fee uint64
	// Principal is the account that created and signed the transaction.
	Principal Address
	// PublicKey reveals the signing key. It must hash to Principal.
	PublicKey []byte
	// Nonce makes otherwise identical transactions distinct.
	Nonce     uint64
	Signature EdSignature

	id TransactionID // cached, not serialized
}

// ID returns the cached transaction ID. CalcAndSetID must have been called
// first, the decoding helpers do that.
func (t *Transaction) ID() TransactionID {
	return t.id
}

// Hash32 returns the TransactionID as a Hash32.
func (t *Transaction) Hash32() Hash32 {
	return t.id.Hash32()
}

// ShortString returns the first characters of the ID, for logging purposes.
func (t *Transaction) ShortString() string {
	return t.id.ShortString()
}

// CalcAndSetID computes the transaction ID from the serialized transaction
// and caches it.
func (t *Transaction) CalcAndSetID() error {
	raw, err := codec.Encode(t)
	if err != nil {
		return fmt.Errorf("serialize transaction: %w", err)
	}
	t.id = TransactionID(CalcHash32(raw))
	return nil
}

// SignedBytes returns the canonical bytes covered by the signature: the
// serialized transaction with the signature zeroed.
func (t *Transaction) SignedBytes() ([]byte, error) {
	unsigned := *t
	unsigned.Signature = EmptyEdSignature
	raw, err := codec.Encode(&unsigned)
	if err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}
	return raw, nil
}

// Spend returns the record flow of the transaction: the transfer itself for
// transfers, the fee spend for deploys and executes. It returns nil when the
// body selected by Kind is not set.
func (t *Transaction) Spend() *TransferBody {
	switch t.Kind {
	case TransferTransaction:
		return t.Transfer
	case DeployTransaction:
		if t.Deploy == nil {
			return nil
		}
		return &t.Deploy.Fee
	case ExecuteTransaction:
		if t.Execute == nil {
			return nil
		}
		return &t.Execute.Fee
	}
	return nil
}

// Consumed returns the ids of the records the transaction spends.
func (t *Transaction) Consumed() []RecordID {
	if spend := t.Spend(); spend != nil {
		return spend.Inputs
	}
	return nil
}

// Produced returns the records the transaction mints.
func (t *Transaction) Produced() []Record {
	if spend := t.Spend(); spend != nil {
		return spend.Outputs
	}
	return nil
}

// Field returns a log field. Implements the LoggableField interface.
func (t *Transaction) Field() log.Field { return t.id.Field() }

// ToTransactionIDs returns a slice of TransactionID corresponding to the given transactions.
func ToTransactionIDs(txs []*Transaction) []TransactionID {
	ids := make([]TransactionID, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID())
	}
	return ids
}

// TransactionIDsToHashes turns a list of TransactionID into their Hash32 representation.
func TransactionIDsToHashes(ids []TransactionID) []Hash32 {
	hashes := make([]Hash32, 0, len(ids))
	for _, id := range ids {
		hashes = append(hashes, id.Hash32())
	}
	return hashes
}

// SortTransactionIDs sorts a list of TransactionID in their lexicographic order, in-place.
func SortTransactionIDs(ids []TransactionID) []TransactionID {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) })
	return ids
}

const (
	// maxWireString bounds function names and execute inputs on the wire.
	maxWireString = 1024
	// maxWireList bounds the variable-length lists carried by a transaction.
	maxWireList = 256
)

// encodeStringSlice encodes strings as a compact count followed by
// length-prefixed byte slices.
func encodeStringSlice(enc *scale.Encoder, value []string) (total int, err error) {
	if len(value) > maxWireList {
		return 0, fmt.Errorf("%d strings exceed limit %d", len(value), maxWireList)
	}
	{
		n, err := scale.EncodeCompact32(enc, uint32(len(value)))
		if err != nil {
			return total, err
		}
		total += n
	}
	for _, s := range value {
		n, err := scale.EncodeByteSliceWithLimit(enc, []byte(s), maxWireString)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// decodeStringSlice is the inverse of encodeStringSlice.
func decodeStringSlice(dec *scale.Decoder) (value []string, total int, err error) {
	count, n, err := scale.DecodeCompact32(dec)
	if err != nil {
		return nil, total, err
	}
	total += n
	if count > maxWireList {
		return nil, total, fmt.Errorf("%d strings exceed limit %d", count, maxWireList)
	}
	value = make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		field, n, err := scale.DecodeByteSliceWithLimit(dec, maxWireString)
		if err != nil {
			return nil, total, err
		}
		total += n
		value = append(value, string(field))
	}
	return value, total, nil
}

// EncodeScale implements scale codec interface.
func (t *TransferBody) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeStructSlice(enc, t.Inputs)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStructSlice(enc, t.Outputs)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (t *TransferBody) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeStructSlice[RecordID](dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Inputs = field
	}
	{
		field, n, err := scale.DecodeStructSlice[Record](dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Outputs = field
	}
	return total, nil
}

// EncodeScale implements scale codec interface.
func (b *DeployBody) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := b.Program.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := b.Fee.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (b *DeployBody) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := b.Program.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := b.Fee.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// EncodeScale implements scale codec interface.
func (b *ExecuteBody) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, []byte(b.ProgramID), maxWireString)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, []byte(b.Function), maxWireString)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := encodeStringSlice(enc, b.Inputs)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := b.Fee.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (b *ExecuteBody) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, maxWireString)
		if err != nil {
			return total, err
		}
		total += n
		b.ProgramID = ProgramID(field)
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, maxWireString)
		if err != nil {
			return total, err
		}
		total += n
		b.Function = string(field)
	}
	{
		field, n, err := decodeStringSlice(dec)
		if err != nil {
			return total, err
		}
		total += n
		b.Inputs = field
	}
	{
		n, err := b.Fee.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// EncodeScale implements scale codec interface. The encoding covers the kind,
// the body selected by it and the common fields; unset bodies take no bytes.
func (t *Transaction) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		// not compact, as scale spec uses "full" uints for enums
		n, err := scale.EncodeUint32(enc, uint32(t.Kind))
		if err != nil {
			return total, err
		}
		total += n
	}
	switch t.Kind {
	case TransferTransaction:
		if t.Transfer == nil {
			return total, errors.New("transfer body missing")
		}
		n, err := t.Transfer.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	case DeployTransaction:
		if t.Deploy == nil {
			return total, errors.New("deploy body missing")
		}
		n, err := t.Deploy.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	case ExecuteTransaction:
		if t.Execute == nil {
			return total, errors.New("execute body missing")
		}
		n, err := t.Execute.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	default:
		return total, fmt.Errorf("unknown transaction kind %d", t.Kind)
	}
	{
		n, err := scale.EncodeCompact64(enc, t.Fee)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := t.Principal.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, t.PublicKey, 32) // ed25519 public key
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact64(enc, t.Nonce)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := t.Signature.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface. Only the body selected by the
// decoded kind is allocated.
func (t *Transaction) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeUint32(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Kind = TransactionKind(field)
	}
	switch t.Kind {
	case TransferTransaction:
		var body TransferBody
		n, err := body.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Transfer = &body
	case DeployTransaction:
		var body DeployBody
		n, err := body.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Deploy = &body
	case ExecuteTransaction:
		var body ExecuteBody
		n, err := body.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Execute = &body
	default:
		return total, fmt.Errorf("unknown transaction kind %d", t.Kind)
	}
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Fee = field
	}
	{
		n, err := t.Principal.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, 32) // ed25519 public key
		if err != nil {
			return total, err
		}
		total += n
		t.PublicKey = field
	}
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Nonce = field
	}
	{
		n, err := t.Signature.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
