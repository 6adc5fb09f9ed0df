package node

import (
	"sync"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/ledger"
	"github.com/slingshotlabs/go-slingshot/log"
	"github.com/slingshotlabs/go-slingshot/mempool"
)

// txBuilder is the write side of the api: it turns accepted requests into
// node-signed transactions and admits them to the pool. One mutex serializes
// building, so two concurrent requests cannot reserve the same record.
type txBuilder struct {
	mu     sync.Mutex
	chain  *ledger.Ledger
	pool   *mempool.TxMempool
	logger log.Log
}

func newTxBuilder(chain *ledger.Ledger, pool *mempool.TxMempool, logger log.Log) *txBuilder {
	return &txBuilder{
		chain:  chain,
		pool:   pool,
		logger: logger,
	}
}

// Pour builds a faucet transfer to the given account and pools it.
func (b *txBuilder) Pour(to types.Address, amount uint64) (*types.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.chain.CreateTransfer(to, amount, 0, b.pool.Reserved())
	if err != nil {
		return nil, err
	}
	if err := b.pool.Add(tx); err != nil {
		return nil, err
	}
	b.logger.With().Info("pooled faucet transfer",
		log.Stringer("tx", tx.ID()),
		log.Stringer("to", to),
		log.Uint64("amount", amount))
	return tx, nil
}

// Deploy builds a deployment of the given program source and pools it.
func (b *txBuilder) Deploy(id types.ProgramID, source []byte, fee uint64) (*types.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.chain.CreateDeploy(id, source, fee, b.pool.Reserved())
	if err != nil {
		return nil, err
	}
	if err := b.pool.Add(tx); err != nil {
		return nil, err
	}
	b.logger.With().Info("pooled deployment",
		log.Stringer("tx", tx.ID()),
		log.String("program", string(id)))
	return tx, nil
}

// Execute builds an execution of a deployed program function and pools it.
func (b *txBuilder) Execute(id types.ProgramID, function string, inputs []string, fee uint64) (*types.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.chain.CreateExecute(id, function, inputs, fee, b.pool.Reserved())
	if err != nil {
		return nil, err
	}
	if err := b.pool.Add(tx); err != nil {
		return nil, err
	}
	b.logger.With().Info("pooled execution",
		log.Stringer("tx", tx.ID()),
		log.String("program", string(id)),
		log.String("function", function),
		log.Int("inputs", len(inputs)))
	return tx, nil
}
