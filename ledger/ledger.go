// Package ledger keeps the chain state of a development node: blocks,
// transactions, spendable records and deployed programs. It is the single
// writer of the underlying store; the REST API and the block producer go
// through it.
package ledger

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/seehuhn/mt19937"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/common/util"
	"github.com/slingshotlabs/go-slingshot/database"
	"github.com/slingshotlabs/go-slingshot/log"
	"github.com/slingshotlabs/go-slingshot/signing"
)

const (
	blockCacheSize = 100

	// devRNGSeed seeds the record nonce generator. The fixed seed keeps
	// record commitments reproducible across runs of a development chain,
	// and makes the generator useless for anything but development.
	devRNGSeed int64 = 1234567890
)

var (
	// ErrBlockNotFound is returned when no block matches the requested height or hash.
	ErrBlockNotFound = errors.New("block not found")
	// ErrTransactionNotFound is returned when a transaction id is not on chain.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrRecordNotFound is returned when a record commitment is unknown.
	ErrRecordNotFound = errors.New("record not found")
	// ErrProgramNotFound is returned when a program id has not been deployed.
	ErrProgramNotFound = errors.New("program not found")
	// ErrFunctionNotFound is returned when a program does not declare the requested function.
	ErrFunctionNotFound = errors.New("function not found in program")
	// ErrNoSufficientRecord is returned when no unspent record covers the requested spend.
	ErrNoSufficientRecord = errors.New("no record with sufficient balance")
	// ErrProgramExists is returned when deploying a program id that is already on chain.
	ErrProgramExists = errors.New("program already deployed")
	// ErrInvalidRange is returned for block range queries with start past end.
	ErrInvalidRange = errors.New("invalid block range")
	// ErrWrongChain is returned when the store was created by a different genesis.
	ErrWrongChain = errors.New("store belongs to a different chain")
)

// Genesis describes the chain created on first start.
type Genesis struct {
	// ID anchors the chain: it becomes the previous hash of the genesis
	// block and the prefix of every signature.
	ID   types.Hash32
	Time time.Time
	// Records is the number of records minted for the node account.
	Records uint32
	// RecordValue is the value of each genesis record, in gates.
	RecordValue uint64
	// RecordData is an opaque payload carried by every genesis record.
	RecordData []byte
}

// RecordFilter selects which records a record query returns.
type RecordFilter int

const (
	// AllRecords returns spent and unspent records.
	AllRecords RecordFilter = iota
	// SpentRecords returns consumed records only.
	SpentRecords
	// UnspentRecords returns spendable records only.
	UnspentRecords
)

// Ledger is the chain state keeper. All mutation goes through AddBlock; the
// Create helpers build signed transactions against the current state without
// applying them.
type Ledger struct {
	logger   log.Log
	db       database.Database
	signer   *signing.EdSigner
	verifier *signing.EdVerifier
	genesis  Genesis

	mu    sync.RWMutex
	head  *types.Block
	rng   *rand.Rand
	draws uint64
	cache *lru.Cache[uint64, *types.Block]
}

// New opens the ledger on top of db. A fresh store is bootstrapped with the
// genesis block crediting the signer's account; an existing store is checked
// against the genesis id and recovered.
func New(db database.Database, signer *signing.EdSigner, genesis Genesis, logger log.Log) (*Ledger, error) {
	cache, err := lru.New[uint64, *types.Block](blockCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create block cache: %w", err)
	}
	verifier, err := signing.NewEdVerifier(signing.WithVerifierPrefix(genesis.ID.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("create verifier: %w", err)
	}
	l := &Ledger{
		logger:   logger,
		db:       db,
		signer:   signer,
		verifier: verifier,
		genesis:  genesis,
		rng:      rand.New(mt19937.New()),
		cache:    cache,
	}
	l.rng.Seed(devRNGSeed)

	raw, err := db.Get(latestKey)
	switch {
	case errors.Is(err, database.ErrNotFound):
		if err := l.bootstrap(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("get latest height: %w", err)
	default:
		if err := l.recover(util.BytesToUint64(raw)); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// bootstrap mints the genesis block on a fresh store. The manifest goes in
// first so a failed bootstrap is retried from scratch.
func (l *Ledger) bootstrap() error {
	if err := l.storeManifest(&manifest{
		GenesisID: l.genesis.ID,
		Created:   l.genesis.Time.Unix(),
		Version:   storeVersion,
	}); err != nil {
		return err
	}
	records := make([]types.Record, 0, l.genesis.Records)
	for i := uint32(0); i < l.genesis.Records; i++ {
		records = append(records, types.Record{
			Owner: l.signer.Address(),
			Value: l.genesis.RecordValue,
			Data:  l.genesis.RecordData,
			Nonce: l.drawNonce(),
		})
	}
	tx, err := l.signTransaction(&types.Transaction{
		Kind:     types.TransferTransaction,
		Transfer: &types.TransferBody{Outputs: records},
	})
	if err != nil {
		return fmt.Errorf("genesis transaction: %w", err)
	}
	txs := []*types.Transaction{tx}
	root, err := transactionsRoot(txs)
	if err != nil {
		return fmt.Errorf("genesis transactions root: %w", err)
	}
	block, err := types.NewExistingBlock(types.BlockHeader{
		Height:           0,
		PreviousHash:     l.genesis.ID,
		TransactionsRoot: root,
		StateRoot:        evolveStateRoot(types.EmptyHash32, txs),
		Timestamp:        l.genesis.Time.Unix(),
	}, txs)
	if err != nil {
		return fmt.Errorf("genesis block: %w", err)
	}
	if err := l.applyBlock(block); err != nil {
		return fmt.Errorf("apply genesis block: %w", err)
	}
	l.logger.With().Info("bootstrapped genesis chain",
		log.BlockHash(block.ShortString()),
		log.Address(l.signer.Address().String()),
		log.Int("records", len(records)),
		log.Uint64("record_value", l.genesis.RecordValue))
	return nil
}

// recover loads the head of an existing chain and replays the nonce draws so
// the deterministic generator continues where it stopped.
func (l *Ledger) recover(height uint64) error {
	m, err := l.loadManifest()
	if err != nil {
		return err
	}
	if m.GenesisID != l.genesis.ID {
		return fmt.Errorf("genesis id %s, store has %s: %w",
			l.genesis.ID.ShortString(), m.GenesisID.ShortString(), ErrWrongChain)
	}
	if m.Version != storeVersion {
		return fmt.Errorf("store version %d, this node writes %d", m.Version, storeVersion)
	}
	head, err := l.loadBlock(height)
	if err != nil {
		return fmt.Errorf("load head block: %w", err)
	}
	l.head = head

	raw, err := l.db.Get(nonceDrawsKey)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("get nonce draws: %w", err)
	}
	if err == nil {
		draws := util.BytesToUint64(raw)
		for ; l.draws < draws; l.draws++ {
			l.rng.Uint64()
		}
	}
	l.logger.With().Info("recovered ledger from store",
		log.Height(head.Height),
		log.BlockHash(head.ShortString()),
		log.Stringer("state_root", head.StateRoot))
	return nil
}

// drawNonce pulls the next deterministic record nonce and persists the draw
// count so recovery can replay the generator.
func (l *Ledger) drawNonce() uint64 {
	nonce := l.rng.Uint64()
	l.draws++
	if err := l.db.Put(nonceDrawsKey, util.Uint64ToBytes(l.draws)); err != nil {
		l.logger.With().Error("failed to persist nonce draws", log.Err(err))
	}
	return nonce
}

// signTransaction fills in the signer identity, signs and sets the id.
func (l *Ledger) signTransaction(tx *types.Transaction) (*types.Transaction, error) {
	tx.Principal = l.signer.Address()
	tx.PublicKey = l.signer.PublicKey().Bytes()
	tx.Nonce = l.drawNonce()
	signed, err := tx.SignedBytes()
	if err != nil {
		return nil, err
	}
	tx.Signature = l.signer.Sign(signing.TRANSACTION, signed)
	if err := tx.CalcAndSetID(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Close releases the underlying store.
func (l *Ledger) Close() {
	l.db.Close()
}

// GenesisID returns the id of the chain the ledger was created with.
func (l *Ledger) GenesisID() types.Hash32 {
	return l.genesis.ID
}

// LatestBlock returns the current head block.
func (l *Ledger) LatestBlock() *types.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.head
}

// LatestHeight returns the height of the head block.
func (l *Ledger) LatestHeight() uint64 {
	return l.LatestBlock().Height
}

// LatestHash returns the hash of the head block.
func (l *Ledger) LatestHash() types.Hash32 {
	return l.LatestBlock().Hash()
}

// StateRoot returns the state root after the head block.
func (l *Ledger) StateRoot() types.Hash32 {
	return l.LatestBlock().StateRoot
}

// GetBlock returns the block at the given height.
func (l *Ledger) GetBlock(height uint64) (*types.Block, error) {
	if block, ok := l.cache.Get(height); ok {
		return block, nil
	}
	block, err := l.loadBlock(height)
	if err != nil {
		return nil, err
	}
	l.cache.Add(height, block)
	return block, nil
}

// GetBlockByHash returns the block with the given hash.
func (l *Ledger) GetBlockByHash(hash types.Hash32) (*types.Block, error) {
	height, err := l.loadHeight(hash)
	if err != nil {
		return nil, err
	}
	return l.GetBlock(height)
}

// GetBlockHeight returns the height of the block with the given hash.
func (l *Ledger) GetBlockHeight(hash types.Hash32) (uint64, error) {
	return l.loadHeight(hash)
}

// Blocks returns the chain slice [start, end). The caller bounds the range;
// heights past the head are simply not returned.
func (l *Ledger) Blocks(start, end uint64) ([]*types.Block, error) {
	if start > end {
		return nil, fmt.Errorf("start %d past end %d: %w", start, end, ErrInvalidRange)
	}
	latest := l.LatestHeight()
	blocks := make([]*types.Block, 0, end-start)
	for height := start; height < end; height++ {
		if height > latest {
			break
		}
		block, err := l.GetBlock(height)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// GetTransaction returns a transaction that is on chain.
func (l *Ledger) GetTransaction(id types.TransactionID) (*types.Transaction, error) {
	height, err := l.loadTxHeight(id)
	if err != nil {
		return nil, err
	}
	block, err := l.GetBlock(height)
	if err != nil {
		return nil, err
	}
	for _, tx := range block.Transactions {
		if tx.ID() == id {
			return tx, nil
		}
	}
	return nil, fmt.Errorf("%s indexed but not in block %d: %w", id.ShortString(), height, ErrTransactionNotFound)
}

// GetTransactionBlockHash returns the hash of the block containing the
// transaction.
func (l *Ledger) GetTransactionBlockHash(id types.TransactionID) (types.Hash32, error) {
	height, err := l.loadTxHeight(id)
	if err != nil {
		return types.Hash32{}, err
	}
	block, err := l.GetBlock(height)
	if err != nil {
		return types.Hash32{}, err
	}
	return block.Hash(), nil
}

// HasTransaction reports whether the transaction is on chain.
func (l *Ledger) HasTransaction(id types.TransactionID) (bool, error) {
	has, err := l.db.Has(txKey(id))
	if err != nil {
		return false, fmt.Errorf("check transaction: %w", err)
	}
	return has, nil
}

// GetProgram returns a deployed program.
func (l *Ledger) GetProgram(id types.ProgramID) (*types.Program, error) {
	return l.loadProgram(id)
}

// GetDeployment returns the id of the transaction that deployed the program.
func (l *Ledger) GetDeployment(id types.ProgramID) (types.TransactionID, error) {
	raw, err := l.db.Get(deploymentKey(id))
	if errors.Is(err, database.ErrNotFound) {
		return types.EmptyTransactionID, fmt.Errorf("%s: %w", id, ErrProgramNotFound)
	}
	if err != nil {
		return types.EmptyTransactionID, fmt.Errorf("get deployment: %w", err)
	}
	return types.TransactionID(types.BytesToHash(raw)), nil
}

// Records returns the account's records keyed by commitment, restricted by
// the filter.
func (l *Ledger) Records(addr types.Address, filter RecordFilter) (map[types.RecordID]*types.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var ids []types.RecordID
	if filter == AllRecords || filter == UnspentRecords {
		unspent, err := l.loadIDSet(unspentKey(addr))
		if err != nil {
			return nil, err
		}
		ids = append(ids, unspent...)
	}
	if filter == AllRecords || filter == SpentRecords {
		spent, err := l.loadIDSet(spentKey(addr))
		if err != nil {
			return nil, err
		}
		ids = append(ids, spent...)
	}
	records := make(map[types.RecordID]*types.Record, len(ids))
	for _, id := range ids {
		record, err := l.loadRecord(id)
		if err != nil {
			return nil, err
		}
		records[id] = record
	}
	return records, nil
}

// Balance returns the sum of the account's unspent record values.
func (l *Ledger) Balance(addr types.Address) (uint64, error) {
	records, err := l.Records(addr, UnspentRecords)
	if err != nil {
		return 0, err
	}
	var balance uint64
	for _, record := range records {
		balance += record.Value
	}
	return balance, nil
}
