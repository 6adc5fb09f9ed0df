// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package database wraps the key value store the ledger persists to.
package database

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/slingshotlabs/go-slingshot/log"
)

// ErrNotFound is special type error for not found in DB.
var ErrNotFound = errors.ErrNotFound

// LDBDatabase is a wrapper for leveldb database with concurrent access.
type LDBDatabase struct {
	fn string      // filename for reporting
	db *leveldb.DB // LevelDB instance

	log log.Log // Contextual logger tracking the database path
}

// NewLDBDatabase returns a LevelDB wrapped object.
func NewLDBDatabase(file string, cache int, handles int, logger log.Log) (*LDBDatabase, error) {
	// Ensure we have some minimal caching and file guarantees
	if cache < 16 {
		cache = 16
	}
	if handles < 16 {
		handles = 16
	}
	logger.With().Info("allocated cache and file handles",
		log.Int("cache_size", cache),
		log.Int("num_handles", handles))

	// Open the db and recover any potential corruptions
	db, err := leveldb.OpenFile(file, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB, // Two of these are used internally
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(file, nil)
	}
	// (Re)check for errors and abort if opening of the db failed
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return &LDBDatabase{
		fn:  file,
		db:  db,
		log: logger,
	}, nil
}

// NewMemDatabase returns a memory backed database instance. It is the
// default for a development chain.
func NewMemDatabase() *LDBDatabase {
	backend := storage.NewMemStorage()
	db, err := leveldb.Open(backend, nil)
	if err != nil {
		panic("can't open in-memory leveldb: " + err.Error())
	}
	return &LDBDatabase{db: db, log: log.NewNop()}
}

// Path returns the path to the database directory.
func (db *LDBDatabase) Path() string {
	return db.fn
}

// Put puts the given key / value to the queue.
func (db *LDBDatabase) Put(key []byte, value []byte) error {
	if err := db.db.Put(key, value, nil); err != nil {
		return fmt.Errorf("put value: %w", err)
	}

	return nil
}

// Has returns whether the db contains the key.
func (db *LDBDatabase) Has(key []byte) (bool, error) {
	has, err := db.db.Has(key, nil)
	if err != nil {
		return false, fmt.Errorf("check value: %w", err)
	}

	return has, nil
}

// Get returns the given key if it's present.
func (db *LDBDatabase) Get(key []byte) ([]byte, error) {
	dat, err := db.db.Get(key, nil)
	if err != nil {
		return nil, fmt.Errorf("get value: %w", err)
	}
	return dat, nil
}

// Delete deletes the key from the queue and database.
func (db *LDBDatabase) Delete(key []byte) error {
	if err := db.db.Delete(key, nil); err != nil {
		return fmt.Errorf("delete value: %w", err)
	}

	return nil
}

// Find returns an iterator over all keys with the given prefix.
func (db *LDBDatabase) Find(prefix []byte) Iterator {
	return db.db.NewIterator(util.BytesPrefix(prefix), nil)
}

// NewBatch starts a write batch against the database.
func (db *LDBDatabase) NewBatch() Batch {
	return &ldbBatch{db: db.db, b: new(leveldb.Batch)}
}

// Close closes database, flushing writes and denying all new write requests.
func (db *LDBDatabase) Close() {
	if err := db.db.Close(); err != nil {
		db.log.With().Error("failed to close database", log.String("file", db.fn), log.Err(err))
	} else {
		db.log.With().Debug("database closed", log.String("file", db.fn))
	}
}

type ldbBatch struct {
	db   *leveldb.DB
	b    *leveldb.Batch
	size int
}

func (b *ldbBatch) Put(key, value []byte) error {
	b.b.Put(key, value)
	b.size += len(value)
	return nil
}

func (b *ldbBatch) Delete(key []byte) error {
	b.b.Delete(key)
	b.size++
	return nil
}

func (b *ldbBatch) Write() error {
	if err := b.db.Write(b.b, nil); err != nil {
		return fmt.Errorf("write batch: %w", err)
	}

	return nil
}

func (b *ldbBatch) ValueSize() int {
	return b.size
}

func (b *ldbBatch) Reset() {
	b.b.Reset()
	b.size = 0
}
