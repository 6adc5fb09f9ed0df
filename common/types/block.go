// Package types defines the types moved through the chain: records,
// transactions, programs and blocks.
package types

import (
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/slingshotlabs/go-slingshot/codec"
	"github.com/slingshotlabs/go-slingshot/log"
)

// BlockHeader carries the part of a block that its hash is computed over.
type BlockHeader struct {
	Height           uint64
	PreviousHash     Hash32
	TransactionsRoot Hash32
	StateRoot        Hash32
	// Timestamp is the unix time the block was proposed at.
	Timestamp int64
}

// Block is a sealed set of transactions extending the chain.
type Block struct {
	BlockHeader
	Transactions []*Transaction

	hash Hash32 // cached, not serialized
}

// Initialize computes and caches the block hash and the IDs of all contained
// transactions. Must be called after decoding.
func (b *Block) Initialize() error {
	for _, tx := range b.Transactions {
		if err := tx.CalcAndSetID(); err != nil {
			return err
		}
	}
	raw, err := codec.Encode(&b.BlockHeader)
	if err != nil {
		return fmt.Errorf("serialize block header: %w", err)
	}
	b.hash = CalcHash32(raw)
	return nil
}

// Hash returns the cached block hash. Initialize must have been called first.
func (b *Block) Hash() Hash32 {
	return b.hash
}

// ShortString returns the first characters of the hash, for logging purposes.
func (b *Block) ShortString() string {
	return b.hash.ShortString()
}

// TransactionIDs returns the IDs of the transactions in the block, in block
// order.
func (b *Block) TransactionIDs() []TransactionID {
	return ToTransactionIDs(b.Transactions)
}

// Field returns a log field. Implements the LoggableField interface.
func (b *Block) Field() log.Field {
	return log.String("block", fmt.Sprintf("%d/%s", b.Height, b.hash.ShortString()))
}

// NewExistingBlock builds a block from its parts and initializes the cached
// hashes.
func NewExistingBlock(header BlockHeader, txs []*Transaction) (*Block, error) {
	b := &Block{BlockHeader: header, Transactions: txs}
	if err := b.Initialize(); err != nil {
		return nil, err
	}
	return b, nil
}

// maxBlockTransactions bounds the transactions decoded per block.
const maxBlockTransactions = 1 << 16

// EncodeScale implements scale codec interface.
func (h *BlockHeader) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeCompact64(enc, h.Height)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := h.PreviousHash.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := h.TransactionsRoot.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := h.StateRoot.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		// unix seconds fit unsigned
		n, err := scale.EncodeCompact64(enc, uint64(h.Timestamp))
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (h *BlockHeader) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		h.Height = field
	}
	{
		n, err := h.PreviousHash.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := h.TransactionsRoot.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := h.StateRoot.DecodeScale(dec)
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
		h.Timestamp = int64(field)
	}
	return total, nil
}

// EncodeScale implements scale codec interface.
func (b *Block) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := b.BlockHeader.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	if len(b.Transactions) > maxBlockTransactions {
		return total, fmt.Errorf("%d transactions exceed limit %d", len(b.Transactions), maxBlockTransactions)
	}
	{
		n, err := scale.EncodeCompact32(enc, uint32(len(b.Transactions)))
		if err != nil {
			return total, err
		}
		total += n
	}
	for _, tx := range b.Transactions {
		n, err := tx.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface. Initialize must be called on
// the decoded block to restore the cached hashes.
func (b *Block) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := b.BlockHeader.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	count, n, err := scale.DecodeCompact32(dec)
	if err != nil {
		return total, err
	}
	total += n
	if count > maxBlockTransactions {
		return total, fmt.Errorf("%d transactions exceed limit %d", count, maxBlockTransactions)
	}
	b.Transactions = make([]*Transaction, 0, count)
	for i := uint32(0); i < count; i++ {
		tx := &Transaction{}
		n, err := tx.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
		b.Transactions = append(b.Transactions, tx)
	}
	return total, nil
}
