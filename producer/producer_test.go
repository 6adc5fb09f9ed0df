package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/log/logtest"
)

func transfer(t *testing.T, seed string) *types.Transaction {
	t.Helper()
	tx := &types.Transaction{
		Kind: types.TransferTransaction,
		Transfer: &types.TransferBody{
			Inputs: []types.RecordID{types.RecordID(types.CalcHash32([]byte(seed)))},
		},
	}
	require.NoError(t, tx.CalcAndSetID())
	return tx
}

func TestRoundSealsPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockchain(ctrl)
	pool := NewMockpool(ctrl)
	p := New(chain, pool, WithLogger(logtest.New(t)))

	txs := []*types.Transaction{transfer(t, "a"), transfer(t, "b")}
	block, err := types.NewExistingBlock(types.BlockHeader{Height: 1}, txs)
	require.NoError(t, err)
	at := time.Unix(1700000000, 0)

	pool.EXPECT().Len().Return(2)
	pool.EXPECT().Transactions().Return(txs)
	chain.EXPECT().ProposeBlock(txs, at).Return(block, nil, nil)
	chain.EXPECT().AddBlock(block).Return(nil)
	pool.EXPECT().Invalidate(txs[0].ID())
	pool.EXPECT().Invalidate(txs[1].ID())

	require.NoError(t, p.Round(at))
}

func TestRoundSkipsEmptyPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockchain(ctrl)
	pool := NewMockpool(ctrl)
	p := New(chain, pool, WithLogger(logtest.New(t)))

	pool.EXPECT().Len().Return(0)
	require.NoError(t, p.Round(time.Now()))
}

func TestRoundEvictsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockchain(ctrl)
	pool := NewMockpool(ctrl)
	p := New(chain, pool, WithLogger(logtest.New(t)))

	good, bad := transfer(t, "good"), transfer(t, "bad")
	txs := []*types.Transaction{good, bad}
	block, err := types.NewExistingBlock(types.BlockHeader{Height: 1}, []*types.Transaction{good})
	require.NoError(t, err)
	at := time.Unix(1700000000, 0)

	pool.EXPECT().Len().Return(2)
	pool.EXPECT().Transactions().Return(txs)
	chain.EXPECT().ProposeBlock(txs, at).Return(block, []*types.Transaction{bad}, nil)
	pool.EXPECT().Invalidate(bad.ID())
	chain.EXPECT().AddBlock(block).Return(nil)
	pool.EXPECT().Invalidate(good.ID())

	require.NoError(t, p.Round(at))
}

func TestRoundAllRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockchain(ctrl)
	pool := NewMockpool(ctrl)
	p := New(chain, pool, WithLogger(logtest.New(t)))

	bad := transfer(t, "bad")
	at := time.Unix(1700000000, 0)

	pool.EXPECT().Len().Return(1)
	pool.EXPECT().Transactions().Return([]*types.Transaction{bad})
	chain.EXPECT().ProposeBlock(gomock.Any(), at).Return(nil, []*types.Transaction{bad}, nil)
	pool.EXPECT().Invalidate(bad.ID())

	require.NoError(t, p.Round(at))
}

func TestRoundKeepsPoolOnApplyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockchain(ctrl)
	pool := NewMockpool(ctrl)
	p := New(chain, pool, WithLogger(logtest.New(t)))

	tx := transfer(t, "a")
	block, err := types.NewExistingBlock(types.BlockHeader{Height: 1}, []*types.Transaction{tx})
	require.NoError(t, err)
	at := time.Unix(1700000000, 0)
	failed := errors.New("apply failed")

	pool.EXPECT().Len().Return(1)
	pool.EXPECT().Transactions().Return([]*types.Transaction{tx})
	chain.EXPECT().ProposeBlock(gomock.Any(), at).Return(block, nil, nil)
	chain.EXPECT().AddBlock(block).Return(failed)

	require.ErrorIs(t, p.Round(at), failed)
}

func TestStartRoundLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockchain(ctrl)
	pool := NewMockpool(ctrl)
	clock := clockwork.NewFakeClock()
	p := New(chain, pool,
		WithLogger(logtest.New(t)),
		WithConfig(Config{RoundTime: time.Second}),
		WithWallclock(clock),
	)

	ran := make(chan struct{}, 1)
	pool.EXPECT().Len().DoAndReturn(func() int {
		select {
		case ran <- struct{}{}:
		default:
		}
		return 0
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	p.Start(ctx) // second call is a no-op

	clock.BlockUntil(1)
	clock.Advance(time.Second)
	<-ran

	cancel()
	p.Close()
}
