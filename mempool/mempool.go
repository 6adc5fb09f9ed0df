// Package mempool holds transactions accepted by the node but not yet sealed
// into a block.
package mempool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/slingshotlabs/go-slingshot/common/types"
)

// TxMempool is the waiting room between the REST API and the block producer.
// Admission reserves the records a transaction consumes, so no two pooled
// transactions can spend the same record.
type TxMempool struct {
	mu       sync.RWMutex
	txs      map[types.TransactionID]*types.Transaction
	order    []types.TransactionID
	reserved map[types.RecordID]types.TransactionID
}

// NewTxMempool returns an empty pool.
func NewTxMempool() *TxMempool {
	return &TxMempool{
		txs:      make(map[types.TransactionID]*types.Transaction),
		reserved: make(map[types.RecordID]types.TransactionID),
	}
}

// Get returns transaction by provided id, it returns an error if transaction is not found.
func (t *TxMempool) Get(id types.TransactionID) (*types.Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tx, found := t.txs[id]; found {
		return tx, nil
	}
	return nil, errors.New("transaction not found in mempool")
}

// Add admits a transaction into the pool and reserves the records it
// consumes. It fails when the transaction is already pooled or when one of
// its records is held by another pooled transaction.
func (t *TxMempool) Add(tx *types.Transaction) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := tx.ID()
	if _, found := t.txs[id]; found {
		refusedDuplicate.Inc()
		return fmt.Errorf("transaction %s already in mempool", id.ShortString())
	}
	for _, rid := range tx.Consumed() {
		if holder, found := t.reserved[rid]; found {
			refusedConflict.Inc()
			return fmt.Errorf("record %s already reserved by pooled transaction %s",
				rid.ShortString(), holder.ShortString())
		}
	}
	t.txs[id] = tx
	t.order = append(t.order, id)
	for _, rid := range tx.Consumed() {
		t.reserved[rid] = id
	}
	pooledTxs.Set(float64(len(t.txs)))
	return nil
}

// Invalidate removes transaction from pool and frees its record reservations.
func (t *TxMempool) Invalidate(id types.TransactionID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tx, found := t.txs[id]
	if !found {
		return
	}
	delete(t.txs, id)
	for _, rid := range tx.Consumed() {
		delete(t.reserved, rid)
	}
	for i, ordered := range t.order {
		if ordered == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	pooledTxs.Set(float64(len(t.txs)))
}

// Transactions returns the pooled transactions in admission order.
func (t *TxMempool) Transactions() []*types.Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()

	txs := make([]*types.Transaction, 0, len(t.order))
	for _, id := range t.order {
		txs = append(txs, t.txs[id])
	}
	return txs
}

// Reserved returns a copy of the set of records held by pooled transactions.
// Transaction builders exclude these from record selection.
func (t *TxMempool) Reserved() map[types.RecordID]struct{} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	reserved := make(map[types.RecordID]struct{}, len(t.reserved))
	for rid := range t.reserved {
		reserved[rid] = struct{}{}
	}
	return reserved
}

// PendingBalance returns the total value of the records pooled transactions
// produce for the address. Records consumed by pooled transactions are still
// unspent on chain, so adding this to the chain balance projects the balance
// the address holds once the pool is sealed.
func (t *TxMempool) PendingBalance(addr types.Address) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var balance uint64
	for _, tx := range t.txs {
		for _, record := range tx.Produced() {
			if record.Owner == addr {
				balance += record.Value
			}
		}
	}
	return balance
}

// Len returns the number of pooled transactions.
func (t *TxMempool) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.txs)
}
