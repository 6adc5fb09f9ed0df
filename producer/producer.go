// Package producer seals pooled transactions into blocks at a fixed cadence.
package producer

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/slingshotlabs/go-slingshot/log"
)

// Producer drives the chain forward: every round it takes the pooled
// transactions, seals them into a block and applies it. Rounds with an empty
// pool are skipped.
type Producer struct {
	cfg       Config
	logger    log.Log
	wallclock clockwork.Clock
	chain     chain
	pool      pool

	once sync.Once
	eg   errgroup.Group
}

// Opt modifies the Producer.
type Opt func(*Producer)

// WithConfig sets the producer configuration.
func WithConfig(cfg Config) Opt {
	return func(p *Producer) {
		p.cfg = cfg
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.Log) Opt {
	return func(p *Producer) {
		p.logger = logger
	}
}

// WithWallclock sets the clock, for tests.
func WithWallclock(clock clockwork.Clock) Opt {
	return func(p *Producer) {
		p.wallclock = clock
	}
}

// New builds a Producer sealing transactions from pool into chain.
func New(chain chain, pool pool, opts ...Opt) *Producer {
	p := &Producer{
		cfg:       DefaultConfig(),
		logger:    log.NewNop(),
		wallclock: clockwork.NewRealClock(),
		chain:     chain,
		pool:      pool,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the round loop. The loop stops when ctx is canceled; Close
// waits for it to exit.
func (p *Producer) Start(ctx context.Context) {
	p.once.Do(func() {
		p.eg.Go(func() error {
			p.logger.With().Info("starting block producer",
				log.Duration("round_time", p.cfg.RoundTime))
			wait := p.cfg.RoundTime
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-p.wallclock.After(wait):
					start := p.wallclock.Now()
					if err := p.Round(start); err != nil {
						p.logger.With().Error("failed to seal round", log.Err(err))
					}
					sealLatency.Observe(p.wallclock.Since(start).Seconds())
					// keep the cadence: the time a round took comes
					// out of the next wait
					wait = p.cfg.RoundTime - p.wallclock.Since(start)
					if wait < 0 {
						wait = 0
					}
				}
			}
		})
	})
}

// Close waits for the round loop to stop.
func (p *Producer) Close() {
	p.eg.Wait()
}

// Round seals the currently pooled transactions into one block. Transactions
// the chain refuses are evicted from the pool, sealed ones are evicted once
// the block is applied.
func (p *Producer) Round(at time.Time) error {
	if p.pool.Len() == 0 {
		return nil
	}
	block, dropped, err := p.chain.ProposeBlock(p.pool.Transactions(), at)
	for _, tx := range dropped {
		p.logger.With().Warning("evicting rejected transaction", log.TxID(tx.ID().ShortString()))
		p.pool.Invalidate(tx.ID())
		evictedTxs.Inc()
	}
	if err != nil {
		return err
	}
	if block == nil {
		return nil
	}
	if err := p.chain.AddBlock(block); err != nil {
		return err
	}
	for _, tx := range block.Transactions {
		p.pool.Invalidate(tx.ID())
	}
	sealedBlocks.Inc()
	sealedTxs.Add(float64(len(block.Transactions)))
	p.logger.With().Info("sealed block",
		log.Height(block.Height),
		log.BlockHash(block.ShortString()),
		log.Int("transactions", len(block.Transactions)),
		log.Int("dropped", len(dropped)))
	return nil
}
