package client_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/slingshotlabs/go-slingshot/api/node/client"
	"github.com/slingshotlabs/go-slingshot/api/node/server"
	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/ledger"
	"github.com/slingshotlabs/go-slingshot/log/logtest"
	"github.com/slingshotlabs/go-slingshot/signing"
)

const retries = 3

type backendMocks struct {
	chain   *server.Mockchain
	pool    *server.Mockpool
	builder *server.Mockbuilder
}

func setupE2E(t *testing.T) (*client.NodeClient, *backendMocks) {
	ctrl := gomock.NewController(t)
	mocks := &backendMocks{
		chain:   server.NewMockchain(ctrl),
		pool:    server.NewMockpool(ctrl),
		builder: server.NewMockbuilder(ctrl),
	}
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)

	srv := server.New(mocks.chain, mocks.pool, mocks.builder, signer,
		server.WithConfig(server.DefaultTestConfig()),
		server.WithLogger(logtest.New(t)))
	require.NoError(t, srv.Start())
	t.Cleanup(func() { srv.Close() })

	cfg := client.DefaultConfig()
	cfg.RetryMax = retries
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 10 * time.Millisecond
	c, err := client.New("http://"+srv.BoundAddress(), cfg)
	require.NoError(t, err)
	return c, mocks
}

func Test_BlockHeight(t *testing.T) {
	c, mocks := setupE2E(t)

	hash := types.CalcHash32([]byte("block"))

	t.Run("found", func(t *testing.T) {
		mocks.chain.EXPECT().GetBlockHeight(hash).Return(uint64(42), nil)
		height, err := c.BlockHeight(context.Background(), hash)
		require.NoError(t, err)
		require.Equal(t, uint64(42), height)
	})

	t.Run("not found", func(t *testing.T) {
		// a 404 is final, the lookup reaches the chain exactly once
		mocks.chain.EXPECT().GetBlockHeight(hash).Return(uint64(0), ledger.ErrBlockNotFound)
		_, err := c.BlockHeight(context.Background(), hash)
		require.ErrorIs(t, err, client.ErrNotFound)
	})

	t.Run("backend errors", func(t *testing.T) {
		mocks.chain.EXPECT().
			GetBlockHeight(hash).
			Times(retries+1).
			Return(uint64(0), errors.New("ops"))
		_, err := c.BlockHeight(context.Background(), hash)
		require.Error(t, err)
	})
}

func Test_FaucetPour(t *testing.T) {
	c, mocks := setupE2E(t)

	recipient, err := signing.NewEdSigner()
	require.NoError(t, err)
	to := recipient.Address()

	t.Run("accepted", func(t *testing.T) {
		tx := &types.Transaction{
			Kind: types.TransferTransaction,
			Transfer: &types.TransferBody{
				Outputs: []types.Record{{Owner: to, Value: 50, Nonce: 1}},
			},
			Principal: to,
			Nonce:     1,
		}
		require.NoError(t, tx.CalcAndSetID())

		mocks.builder.EXPECT().Pour(to, uint64(50)).Return(tx, nil)
		mocks.chain.EXPECT().Balance(to).Return(uint64(0), nil)
		mocks.pool.EXPECT().PendingBalance(to).Return(uint64(50))

		res, err := c.Pour(context.Background(), to.String(), 50)
		require.NoError(t, err)
		require.Equal(t, to.String(), res.Address)
		require.Equal(t, uint64(50), res.Balance)
		require.Equal(t, tx.ID().String(), res.TransactionID)
	})

	t.Run("refused", func(t *testing.T) {
		// a refused transfer is the caller's problem, not retried
		mocks.builder.EXPECT().Pour(to, uint64(900)).Return(nil, ledger.ErrNoSufficientRecord)
		_, err := c.Pour(context.Background(), to.String(), 900)
		require.ErrorIs(t, err, client.ErrInvalidRequest)
	})
}

func Test_Records(t *testing.T) {
	c, mocks := setupE2E(t)

	account, err := signing.NewEdSigner()
	require.NoError(t, err)
	viewKey := account.PublicKey().String()
	addr := account.Address()

	t.Run("found", func(t *testing.T) {
		id := types.RecordID(types.CalcHash32([]byte("record")))
		mocks.chain.EXPECT().
			Records(addr, ledger.UnspentRecords).
			Return(map[types.RecordID]*types.Record{id: {Owner: addr, Value: 700, Nonce: 3}}, nil)
		records, err := c.Records(context.Background(), viewKey, client.UnspentRecords)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, uint64(700), records[id.String()].Value)
	})

	t.Run("malformed view key", func(t *testing.T) {
		// rejected by the server before the chain is consulted
		_, err := c.Records(context.Background(), "zz", client.UnspentRecords)
		require.ErrorIs(t, err, client.ErrInvalidRequest)
	})

	t.Run("backend errors", func(t *testing.T) {
		mocks.chain.EXPECT().
			Records(addr, ledger.AllRecords).
			Times(retries+1).
			Return(nil, errors.New("ops"))
		_, err := c.Records(context.Background(), viewKey, client.AllRecords)
		require.Error(t, err)
	})
}
