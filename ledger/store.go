package ledger

import (
	"errors"
	"fmt"

	"github.com/slingshotlabs/go-slingshot/codec"
	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/common/util"
	"github.com/slingshotlabs/go-slingshot/database"
)

// Store key prefixes. Block keys use big-endian heights so prefix scans walk
// the chain in order.
const (
	blockPrefix      = "b"
	blockHashPrefix  = "h"
	txPrefix         = "t"
	recordPrefix     = "r"
	unspentPrefix    = "u"
	spentPrefix      = "s"
	programPrefix    = "p"
	deploymentPrefix = "d"
)

var (
	latestKey     = []byte("latest")
	manifestKey   = []byte("manifest")
	nonceDrawsKey = []byte("noncedraws")
)

// storeVersion is bumped when the store layout changes incompatibly.
const storeVersion = 1

// manifest identifies the chain a store was created for. It never crosses a
// consensus boundary, so it goes through the reflection codec.
type manifest struct {
	GenesisID types.Hash32
	Created   int64
	Version   uint32
}

func (l *Ledger) storeManifest(m *manifest) error {
	raw, err := codec.Encode(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := l.db.Put(manifestKey, raw); err != nil {
		return fmt.Errorf("store manifest: %w", err)
	}
	return nil
}

func (l *Ledger) loadManifest() (*manifest, error) {
	raw, err := l.db.Get(manifestKey)
	if errors.Is(err, database.ErrNotFound) {
		return nil, errors.New("store manifest missing")
	}
	if err != nil {
		return nil, fmt.Errorf("get manifest: %w", err)
	}
	m := manifest{}
	if err := codec.Decode(raw, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

func blockKey(height uint64) []byte {
	return append([]byte(blockPrefix), util.Uint64ToBytes(height)...)
}

func blockHashKey(hash types.Hash32) []byte {
	return append([]byte(blockHashPrefix), hash.Bytes()...)
}

func txKey(id types.TransactionID) []byte {
	return append([]byte(txPrefix), id.Bytes()...)
}

func recordKey(id types.RecordID) []byte {
	return append([]byte(recordPrefix), id.Bytes()...)
}

func unspentKey(addr types.Address) []byte {
	return append([]byte(unspentPrefix), addr.Bytes()...)
}

func spentKey(addr types.Address) []byte {
	return append([]byte(spentPrefix), addr.Bytes()...)
}

func programKey(id types.ProgramID) []byte {
	return append([]byte(programPrefix), id.Bytes()...)
}

func deploymentKey(id types.ProgramID) []byte {
	return append([]byte(deploymentPrefix), id.Bytes()...)
}

// loadBlock reads a block straight from the store, bypassing the cache.
func (l *Ledger) loadBlock(height uint64) (*types.Block, error) {
	raw, err := l.db.Get(blockKey(height))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("height %d: %w", height, ErrBlockNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", height, err)
	}
	return types.BytesToBlock(raw)
}

func (l *Ledger) loadHeight(hash types.Hash32) (uint64, error) {
	raw, err := l.db.Get(blockHashKey(hash))
	if errors.Is(err, database.ErrNotFound) {
		return 0, fmt.Errorf("hash %s: %w", hash.ShortString(), ErrBlockNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("get block height: %w", err)
	}
	return util.BytesToUint64(raw), nil
}

func (l *Ledger) loadTxHeight(id types.TransactionID) (uint64, error) {
	raw, err := l.db.Get(txKey(id))
	if errors.Is(err, database.ErrNotFound) {
		return 0, fmt.Errorf("%s: %w", id.ShortString(), ErrTransactionNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("get transaction height: %w", err)
	}
	return util.BytesToUint64(raw), nil
}

func (l *Ledger) loadRecord(id types.RecordID) (*types.Record, error) {
	raw, err := l.db.Get(recordKey(id))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", id.ShortString(), ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return types.BytesToRecord(raw)
}

func (l *Ledger) hasRecord(id types.RecordID) (bool, error) {
	has, err := l.db.Has(recordKey(id))
	if err != nil {
		return false, fmt.Errorf("check record: %w", err)
	}
	return has, nil
}

func (l *Ledger) loadProgram(id types.ProgramID) (*types.Program, error) {
	raw, err := l.db.Get(programKey(id))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", id, ErrProgramNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}
	return types.BytesToProgram(raw)
}

// loadIDSet reads a record id set, returning an empty set for absent keys.
func (l *Ledger) loadIDSet(key []byte) ([]types.RecordID, error) {
	raw, err := l.db.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record set: %w", err)
	}
	return types.BytesToRecordIDs(raw)
}

func storeIDSet(batch database.Batch, key []byte, ids []types.RecordID) error {
	if len(ids) == 0 {
		return batch.Delete(key)
	}
	raw, err := types.RecordIDsToBytes(ids)
	if err != nil {
		return err
	}
	return batch.Put(key, raw)
}

func removeID(ids []types.RecordID, id types.RecordID) []types.RecordID {
	for i := range ids {
		if ids[i] == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
