package server

import (
	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/ledger"
)

//go:generate mockgen -typed -package=server -destination=./mocks.go -source=./interface.go

// chain is the read side of the ledger the API serves.
type chain interface {
	LatestHeight() uint64
	LatestHash() types.Hash32
	LatestBlock() *types.Block
	StateRoot() types.Hash32
	GetBlock(height uint64) (*types.Block, error)
	GetBlockByHash(hash types.Hash32) (*types.Block, error)
	GetBlockHeight(hash types.Hash32) (uint64, error)
	Blocks(start, end uint64) ([]*types.Block, error)
	GetTransaction(id types.TransactionID) (*types.Transaction, error)
	GetTransactionBlockHash(id types.TransactionID) (types.Hash32, error)
	HasTransaction(id types.TransactionID) (bool, error)
	GetProgram(id types.ProgramID) (*types.Program, error)
	GetDeployment(id types.ProgramID) (types.TransactionID, error)
	Records(addr types.Address, filter ledger.RecordFilter) (map[types.RecordID]*types.Record, error)
	Balance(addr types.Address) (uint64, error)
}

// pool is the memory pool view the API serves.
type pool interface {
	Transactions() []*types.Transaction
	PendingBalance(addr types.Address) uint64
}

// builder creates node-signed transactions and admits them to the pool.
type builder interface {
	Pour(to types.Address, amount uint64) (*types.Transaction, error)
	Deploy(id types.ProgramID, source []byte, fee uint64) (*types.Transaction, error)
	Execute(id types.ProgramID, function string, inputs []string, fee uint64) (*types.Transaction, error)
}
