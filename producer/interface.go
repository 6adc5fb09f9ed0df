package producer

import (
	"time"

	"github.com/slingshotlabs/go-slingshot/common/types"
)

//go:generate mockgen -typed -package=producer -destination=./mocks.go -source=./interface.go

// chain is the part of the ledger the producer drives.
type chain interface {
	ProposeBlock(txs []*types.Transaction, at time.Time) (*types.Block, []*types.Transaction, error)
	AddBlock(block *types.Block) error
}

// pool is the mempool view the producer seals from.
type pool interface {
	Len() int
	Transactions() []*types.Transaction
	Invalidate(id types.TransactionID)
}
