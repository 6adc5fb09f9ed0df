package ledger

import (
	"fmt"
	"time"

	"github.com/spacemeshos/merkle-tree"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/common/util"
	"github.com/slingshotlabs/go-slingshot/log"
)

// transactionsRoot computes the merkle root over the transaction ids in block
// order.
func transactionsRoot(txs []*types.Transaction) (types.Hash32, error) {
	tree, err := merkle.NewTree()
	if err != nil {
		return types.Hash32{}, fmt.Errorf("create merkle tree: %w", err)
	}
	for _, tx := range txs {
		if err := tree.AddLeaf(tx.ID().Bytes()); err != nil {
			return types.Hash32{}, fmt.Errorf("add leaf: %w", err)
		}
	}
	return types.BytesToHash(tree.Root()), nil
}

// evolveStateRoot folds the transaction ids into the previous state root, in
// block order.
func evolveStateRoot(prev types.Hash32, txs []*types.Transaction) types.Hash32 {
	root := prev
	for _, tx := range txs {
		root = types.CalcAggregateHash32(root, tx.ID().Bytes())
	}
	return root
}

// ProposeBlock seals the given transactions into a candidate block extending
// the current head. Transactions that no longer validate against the chain,
// or that conflict with an earlier transaction in the same candidate, are
// dropped rather than failing the proposal; they are returned so the caller
// can evict them from its pool. When no transaction survives, the block is
// nil.
func (l *Ledger) ProposeBlock(txs []*types.Transaction, at time.Time) (*types.Block, []*types.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ctx := newBlockContext()
	var included, dropped []*types.Transaction
	for _, tx := range txs {
		if err := l.validateTransaction(tx, ctx); err != nil {
			l.logger.With().Debug("dropping transaction from proposal",
				log.TxID(tx.ID().ShortString()),
				log.Err(err))
			dropped = append(dropped, tx)
			continue
		}
		included = append(included, tx)
	}
	if len(included) == 0 {
		return nil, dropped, nil
	}

	root, err := transactionsRoot(included)
	if err != nil {
		return nil, dropped, fmt.Errorf("transactions root: %w", err)
	}
	timestamp := at.Unix()
	if timestamp < l.head.Timestamp {
		timestamp = l.head.Timestamp
	}
	block, err := types.NewExistingBlock(types.BlockHeader{
		Height:           l.head.Height + 1,
		PreviousHash:     l.head.Hash(),
		TransactionsRoot: root,
		StateRoot:        evolveStateRoot(l.head.StateRoot, included),
		Timestamp:        timestamp,
	}, included)
	if err != nil {
		return nil, dropped, fmt.Errorf("seal block: %w", err)
	}
	return block, dropped, nil
}

// AddBlock validates the block against the current head and applies it. The
// two steps run under one lock so a block is never validated against a state
// it is not applied to.
func (l *Ledger) AddBlock(block *types.Block) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.validateBlock(block); err != nil {
		return fmt.Errorf("validate block %s: %w", block.ShortString(), err)
	}
	if err := l.applyBlock(block); err != nil {
		return fmt.Errorf("apply block %s: %w", block.ShortString(), err)
	}
	l.logger.With().Info("added block to chain",
		log.Height(block.Height),
		log.BlockHash(block.ShortString()),
		log.Int("transactions", len(block.Transactions)))
	return nil
}

// applyBlock writes the block and all of its effects in a single batch and
// advances the head. The block must have been validated by the caller;
// genesis bootstrap skips validation.
func (l *Ledger) applyBlock(block *types.Block) error {
	batch := l.db.NewBatch()

	// record set updates are accumulated per owner and flushed once, so
	// several transactions touching one account do not clobber each other.
	unspentSets := make(map[types.Address][]types.RecordID)
	spentSets := make(map[types.Address][]types.RecordID)
	loadSets := func(addr types.Address) error {
		if _, ok := unspentSets[addr]; ok {
			return nil
		}
		unspent, err := l.loadIDSet(unspentKey(addr))
		if err != nil {
			return err
		}
		spent, err := l.loadIDSet(spentKey(addr))
		if err != nil {
			return err
		}
		unspentSets[addr], spentSets[addr] = unspent, spent
		return nil
	}

	for _, tx := range block.Transactions {
		if err := batch.Put(txKey(tx.ID()), util.Uint64ToBytes(block.Height)); err != nil {
			return fmt.Errorf("index transaction: %w", err)
		}
		for _, id := range tx.Consumed() {
			record, err := l.loadRecord(id)
			if err != nil {
				return err
			}
			if err := loadSets(record.Owner); err != nil {
				return err
			}
			unspentSets[record.Owner] = removeID(unspentSets[record.Owner], id)
			spentSets[record.Owner] = append(spentSets[record.Owner], id)
		}
		produced := tx.Produced()
		for i := range produced {
			record := &produced[i]
			id := record.Commitment()
			raw, err := types.RecordToBytes(record)
			if err != nil {
				return err
			}
			if err := batch.Put(recordKey(id), raw); err != nil {
				return fmt.Errorf("store record: %w", err)
			}
			if err := loadSets(record.Owner); err != nil {
				return err
			}
			unspentSets[record.Owner] = append(unspentSets[record.Owner], id)
		}
		if tx.Kind == types.DeployTransaction {
			program := &tx.Deploy.Program
			raw, err := types.ProgramToBytes(program)
			if err != nil {
				return err
			}
			if err := batch.Put(programKey(program.ID), raw); err != nil {
				return fmt.Errorf("store program: %w", err)
			}
			if err := batch.Put(deploymentKey(program.ID), tx.ID().Bytes()); err != nil {
				return fmt.Errorf("index deployment: %w", err)
			}
		}
	}
	for addr, ids := range unspentSets {
		if err := storeIDSet(batch, unspentKey(addr), ids); err != nil {
			return err
		}
	}
	for addr, ids := range spentSets {
		if err := storeIDSet(batch, spentKey(addr), ids); err != nil {
			return err
		}
	}

	raw, err := types.BlockToBytes(block)
	if err != nil {
		return err
	}
	if err := batch.Put(blockKey(block.Height), raw); err != nil {
		return fmt.Errorf("store block: %w", err)
	}
	if err := batch.Put(blockHashKey(block.Hash()), util.Uint64ToBytes(block.Height)); err != nil {
		return fmt.Errorf("index block hash: %w", err)
	}
	if err := batch.Put(latestKey, util.Uint64ToBytes(block.Height)); err != nil {
		return fmt.Errorf("store latest height: %w", err)
	}
	if err := batch.Write(); err != nil {
		return err
	}
	l.head = block
	l.cache.Add(block.Height, block)
	return nil
}
