package server

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/slingshotlabs/go-slingshot/api/node/client"
	"github.com/slingshotlabs/go-slingshot/api/node/models"
	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/ledger"
	"github.com/slingshotlabs/go-slingshot/log/logtest"
	"github.com/slingshotlabs/go-slingshot/signing"
)

type testAPI struct {
	*Server
	chain   *Mockchain
	pool    *Mockpool
	builder *Mockbuilder
	signer  *signing.EdSigner
	client  *client.NodeClient
}

// launchAPI starts the server on an ephemeral port and connects a real
// client to it. Trailing opts override the test defaults.
func launchAPI(tb testing.TB, opts ...Opt) *testAPI {
	ctrl := gomock.NewController(tb)
	signer, err := signing.NewEdSigner()
	require.NoError(tb, err)
	api := &testAPI{
		chain:   NewMockchain(ctrl),
		pool:    NewMockpool(ctrl),
		builder: NewMockbuilder(ctrl),
		signer:  signer,
	}
	opts = append([]Opt{WithConfig(DefaultTestConfig()), WithLogger(logtest.New(tb))}, opts...)
	api.Server = New(api.chain, api.pool, api.builder, signer, opts...)
	require.NoError(tb, api.Start())
	tb.Cleanup(func() { assert.NoError(tb, api.Close()) })

	api.client, err = client.New("http://"+api.BoundAddress(), client.DefaultConfig())
	require.NoError(tb, err)
	return api
}

func genTransfer(tb testing.TB, principal, to types.Address, amount uint64) *types.Transaction {
	tb.Helper()
	tx := &types.Transaction{
		Kind: types.TransferTransaction,
		Transfer: &types.TransferBody{
			Inputs:  []types.RecordID{types.RecordID(types.CalcHash32([]byte("consumed")))},
			Outputs: []types.Record{{Owner: to, Value: amount, Nonce: 1}},
		},
		Principal: principal,
		Nonce:     7,
	}
	require.NoError(tb, tx.CalcAndSetID())
	return tx
}

func genBlock(tb testing.TB, height uint64, txs ...*types.Transaction) *types.Block {
	tb.Helper()
	block, err := types.NewExistingBlock(types.BlockHeader{
		Height:       height,
		PreviousHash: types.CalcHash32([]byte("previous")),
		StateRoot:    types.CalcHash32([]byte("state")),
		Timestamp:    time.Now().Unix(),
	}, txs)
	require.NoError(tb, err)
	return block
}

func TestLatestViews(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()

	block := genBlock(t, 9, genTransfer(t, api.signer.Address(), api.signer.Address(), 100))

	api.chain.EXPECT().LatestHeight().Return(uint64(9))
	height, err := api.client.LatestHeight(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(9), height)

	api.chain.EXPECT().LatestHash().Return(block.Hash())
	hash, err := api.client.LatestHash(ctx)
	require.NoError(t, err)
	require.Equal(t, block.Hash(), hash)

	api.chain.EXPECT().LatestBlock().Return(block)
	latest, err := api.client.LatestBlock(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(9), latest.Height)
	require.Equal(t, block.Hash().String(), latest.Hash)
	require.Equal(t, block.PreviousHash.String(), latest.PreviousHash)
	require.Len(t, latest.Transactions, 1)
	require.Equal(t, block.Transactions[0].ID().String(), latest.Transactions[0].ID)
	require.Equal(t, "transfer", latest.Transactions[0].Kind)

	api.chain.EXPECT().StateRoot().Return(block.StateRoot)
	root, err := api.client.LatestStateRoot(ctx)
	require.NoError(t, err)
	require.Equal(t, block.StateRoot, root)
}

func TestGetBlock(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()
	block := genBlock(t, 3, genTransfer(t, api.signer.Address(), api.signer.Address(), 25))

	t.Run("by height", func(t *testing.T) {
		api.chain.EXPECT().GetBlock(uint64(3)).Return(block, nil)
		got, err := api.client.Block(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, block.Hash().String(), got.Hash)
	})
	t.Run("by hash", func(t *testing.T) {
		api.chain.EXPECT().GetBlockByHash(block.Hash()).Return(block, nil)
		got, err := api.client.BlockByHash(ctx, block.Hash())
		require.NoError(t, err)
		require.Equal(t, uint64(3), got.Height)
	})
	t.Run("unknown height", func(t *testing.T) {
		api.chain.EXPECT().GetBlock(uint64(99)).Return(nil, fmt.Errorf("99: %w", ledger.ErrBlockNotFound))
		_, err := api.client.Block(ctx, 99)
		require.ErrorIs(t, err, client.ErrNotFound)
	})
	t.Run("height of hash", func(t *testing.T) {
		api.chain.EXPECT().GetBlockHeight(block.Hash()).Return(uint64(3), nil)
		height, err := api.client.BlockHeight(ctx, block.Hash())
		require.NoError(t, err)
		require.Equal(t, uint64(3), height)
	})
	t.Run("block transactions", func(t *testing.T) {
		api.chain.EXPECT().GetBlock(uint64(3)).Return(block, nil)
		txs, err := api.client.BlockTransactions(ctx, 3)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		require.Equal(t, block.Transactions[0].ID().String(), txs[0].ID)
	})
}

func TestGetBlocks(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()

	t.Run("range", func(t *testing.T) {
		blocks := []*types.Block{genBlock(t, 1), genBlock(t, 2), genBlock(t, 3)}
		api.chain.EXPECT().Blocks(uint64(1), uint64(4)).Return(blocks, nil)
		got, err := api.client.Blocks(ctx, 1, 4)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, block := range blocks {
			require.Equal(t, block.Height, got[i].Height)
		}
	})
	t.Run("start past end", func(t *testing.T) {
		_, err := api.client.Blocks(ctx, 5, 1)
		require.ErrorIs(t, err, client.ErrInvalidRequest)
		require.ErrorContains(t, err, "invalid block range")
	})
	t.Run("oversized range", func(t *testing.T) {
		_, err := api.client.Blocks(ctx, 0, 1000)
		require.ErrorIs(t, err, client.ErrInvalidRequest)
		require.ErrorContains(t, err, "cannot request more than 50 blocks per call (requested 1000)")
	})
}

func TestGetTransaction(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()
	tx := genTransfer(t, api.signer.Address(), api.signer.Address(), 42)

	t.Run("sealed", func(t *testing.T) {
		api.chain.EXPECT().GetTransaction(tx.ID()).Return(tx, nil)
		got, err := api.client.Transaction(ctx, tx.ID().String())
		require.NoError(t, err)
		require.Equal(t, tx.ID().String(), got.ID)
		require.Equal(t, tx.Principal.String(), got.Principal)
		require.Len(t, got.Consumed, 1)
		require.Len(t, got.Produced, 1)
		require.Equal(t, uint64(42), got.Produced[0].Value)
	})
	t.Run("malformed id", func(t *testing.T) {
		_, err := api.client.Transaction(ctx, "nothex")
		require.ErrorIs(t, err, client.ErrInvalidRequest)
	})
	t.Run("memory pool", func(t *testing.T) {
		api.pool.EXPECT().Transactions().Return([]*types.Transaction{tx})
		txs, err := api.client.MemoryPoolTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		require.Equal(t, tx.ID().String(), txs[0].ID)
	})
}

func TestGetProgram(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()

	t.Run("deployed", func(t *testing.T) {
		program := &types.Program{
			ID:        "token.sling",
			Owner:     api.signer.Address(),
			Functions: []string{"mint", "transfer"},
			Source:    []byte("program token.sling;"),
		}
		program.Checksum = program.CalcChecksum()
		api.chain.EXPECT().GetProgram(types.ProgramID("token.sling")).Return(program, nil)
		got, err := api.client.Program(ctx, "token.sling")
		require.NoError(t, err)
		require.Equal(t, "token.sling", got.ID)
		require.Equal(t, []string{"mint", "transfer"}, got.Functions)
		require.Equal(t, "program token.sling;", got.Source)
		require.Equal(t, program.Checksum.String(), got.Checksum)
	})
	t.Run("invalid id", func(t *testing.T) {
		_, err := api.client.Program(ctx, "Not-Valid")
		require.ErrorIs(t, err, client.ErrInvalidRequest)
	})
	t.Run("not deployed", func(t *testing.T) {
		api.chain.EXPECT().GetProgram(types.ProgramID("ghost.sling")).
			Return(nil, fmt.Errorf("ghost.sling: %w", ledger.ErrProgramNotFound))
		_, err := api.client.Program(ctx, "ghost.sling")
		require.ErrorIs(t, err, client.ErrNotFound)
	})
}

func TestFindRoutes(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()
	tx := genTransfer(t, api.signer.Address(), api.signer.Address(), 5)
	block := genBlock(t, 2, tx)

	t.Run("block hash of transaction", func(t *testing.T) {
		api.chain.EXPECT().GetTransactionBlockHash(tx.ID()).Return(block.Hash(), nil)
		hash, err := api.client.FindBlockHash(ctx, tx.ID().String())
		require.NoError(t, err)
		require.Equal(t, block.Hash().String(), hash)
	})
	t.Run("transaction sealed", func(t *testing.T) {
		api.chain.EXPECT().HasTransaction(tx.ID()).Return(true, nil)
		id, err := api.client.FindTransactionID(ctx, tx.ID().String())
		require.NoError(t, err)
		require.Equal(t, tx.ID().String(), id)
	})
	t.Run("transaction unsealed", func(t *testing.T) {
		api.chain.EXPECT().HasTransaction(tx.ID()).Return(false, nil)
		_, err := api.client.FindTransactionID(ctx, tx.ID().String())
		require.ErrorIs(t, err, client.ErrNotFound)
	})
	t.Run("deployment of program", func(t *testing.T) {
		api.chain.EXPECT().GetDeployment(types.ProgramID("token.sling")).Return(tx.ID(), nil)
		id, err := api.client.FindDeploymentID(ctx, "token.sling")
		require.NoError(t, err)
		require.Equal(t, tx.ID().String(), id)
	})
}

func TestNodeAccountRoutes(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()

	address, err := api.client.NodeAddress(ctx)
	require.NoError(t, err)
	require.Equal(t, api.signer.Address().String(), address)

	devAddress, err := api.client.DevelopmentAddress(ctx)
	require.NoError(t, err)
	require.Equal(t, api.signer.Address().String(), devAddress)

	viewKey, err := api.client.DevelopmentViewKey(ctx)
	require.NoError(t, err)
	require.Equal(t, api.signer.PublicKey().String(), viewKey)

	privateKey, err := api.client.DevelopmentPrivateKey(ctx)
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(api.signer.PrivateKey()), privateKey)
}

func TestRecords(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()
	viewKey := api.signer.PublicKey().String()
	owner := api.signer.Address()

	t.Run("unspent", func(t *testing.T) {
		id := types.RecordID(types.CalcHash32([]byte("record")))
		api.chain.EXPECT().Records(owner, ledger.UnspentRecords).Return(
			map[types.RecordID]*types.Record{id: {Owner: owner, Value: 50, Nonce: 1}}, nil)
		records, err := api.client.Records(ctx, viewKey, client.UnspentRecords)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, owner.String(), records[id.String()].Owner)
		require.Equal(t, uint64(50), records[id.String()].Value)
	})
	t.Run("scope selects the filter", func(t *testing.T) {
		api.chain.EXPECT().Records(owner, ledger.AllRecords).Return(nil, nil)
		_, err := api.client.Records(ctx, viewKey, client.AllRecords)
		require.NoError(t, err)

		api.chain.EXPECT().Records(owner, ledger.SpentRecords).Return(nil, nil)
		_, err = api.client.Records(ctx, viewKey, client.SpentRecords)
		require.NoError(t, err)
	})
	t.Run("bad view key", func(t *testing.T) {
		_, err := api.client.Records(ctx, "zz", client.AllRecords)
		require.ErrorIs(t, err, client.ErrInvalidRequest)

		_, err = api.client.Records(ctx, "abcd", client.AllRecords)
		require.ErrorIs(t, err, client.ErrInvalidRequest)
	})
}

func TestFaucetPour(t *testing.T) {
	ctx := context.Background()

	t.Run("pour", func(t *testing.T) {
		api := launchAPI(t)
		recipient, err := signing.NewEdSigner()
		require.NoError(t, err)
		to := recipient.Address()

		tx := genTransfer(t, api.signer.Address(), to, 50)
		api.builder.EXPECT().Pour(to, uint64(50)).Return(tx, nil)
		api.chain.EXPECT().Balance(to).Return(uint64(40), nil)
		api.pool.EXPECT().PendingBalance(to).Return(uint64(60))

		resp, err := api.client.Pour(ctx, to.String(), 50)
		require.NoError(t, err)
		require.Equal(t, to.String(), resp.Address)
		require.Equal(t, uint64(100), resp.Balance)
		require.Equal(t, tx.ID().String(), resp.TransactionID)
	})
	t.Run("bad address", func(t *testing.T) {
		api := launchAPI(t)
		_, err := api.client.Pour(ctx, "notanaddress", 5)
		require.ErrorIs(t, err, client.ErrInvalidRequest)
	})
	t.Run("faucet empty", func(t *testing.T) {
		api := launchAPI(t)
		recipient, err := signing.NewEdSigner()
		require.NoError(t, err)
		api.builder.EXPECT().Pour(recipient.Address(), uint64(1<<40)).
			Return(nil, fmt.Errorf("pour: %w", ledger.ErrNoSufficientRecord))
		_, err = api.client.Pour(ctx, recipient.Address().String(), 1<<40)
		require.ErrorIs(t, err, client.ErrInvalidRequest)
		require.ErrorContains(t, err, "no record with sufficient balance")
	})
	t.Run("rate limited", func(t *testing.T) {
		cfg := DefaultTestConfig()
		cfg.PourInterval = time.Hour
		cfg.PourBurst = 1
		api := launchAPI(t, WithConfig(cfg))
		recipient, err := signing.NewEdSigner()
		require.NoError(t, err)
		to := recipient.Address()

		tx := genTransfer(t, api.signer.Address(), to, 5)
		api.builder.EXPECT().Pour(to, uint64(5)).Return(tx, nil)
		api.chain.EXPECT().Balance(to).Return(uint64(0), nil)
		api.pool.EXPECT().PendingBalance(to).Return(uint64(5))
		_, err = api.client.Pour(ctx, to.String(), 5)
		require.NoError(t, err)

		_, err = api.client.Pour(ctx, to.String(), 5)
		require.ErrorIs(t, err, client.ErrInvalidRequest)
		require.ErrorContains(t, err, "rate limit")
	})
}

func TestProgramDeploy(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()
	source := "program counter.sling;\n\nfunction increment;"

	t.Run("deploy", func(t *testing.T) {
		tx := &types.Transaction{
			Kind: types.DeployTransaction,
			Deploy: &types.DeployBody{
				Program: types.Program{ID: "counter.sling", Source: []byte(source)},
			},
			Principal: api.signer.Address(),
		}
		require.NoError(t, tx.CalcAndSetID())
		api.builder.EXPECT().Deploy(types.ProgramID("counter.sling"), []byte(source), uint64(3)).Return(tx, nil)

		resp, err := api.client.Deploy(ctx, models.Program{ID: "counter.sling", Source: source}, 3)
		require.NoError(t, err)
		require.Equal(t, tx.ID().String(), resp.TransactionID)
	})
	t.Run("already deployed", func(t *testing.T) {
		api.builder.EXPECT().Deploy(types.ProgramID("counter.sling"), []byte(source), uint64(0)).
			Return(nil, fmt.Errorf("counter.sling: %w", ledger.ErrProgramExists))
		_, err := api.client.Deploy(ctx, models.Program{ID: "counter.sling", Source: source}, 0)
		require.ErrorIs(t, err, client.ErrInvalidRequest)
		require.ErrorContains(t, err, "already deployed")
	})
}

func TestProgramExecute(t *testing.T) {
	api := launchAPI(t)
	ctx := context.Background()

	t.Run("execute", func(t *testing.T) {
		tx := &types.Transaction{
			Kind: types.ExecuteTransaction,
			Execute: &types.ExecuteBody{
				ProgramID: "counter.sling",
				Function:  "increment",
				Inputs:    []string{"1u8", "2u8"},
			},
			Principal: api.signer.Address(),
		}
		require.NoError(t, tx.CalcAndSetID())
		api.builder.EXPECT().
			Execute(types.ProgramID("counter.sling"), "increment", []string{"1u8", "2u8"}, uint64(0)).
			Return(tx, nil)

		resp, err := api.client.Execute(ctx, "counter.sling", "increment", []string{"1u8", "2u8"}, 0)
		require.NoError(t, err)
		require.Equal(t, tx.ID().String(), resp.TransactionID)
	})
	t.Run("unknown function", func(t *testing.T) {
		api.builder.EXPECT().
			Execute(types.ProgramID("counter.sling"), "missing", gomock.Any(), uint64(0)).
			Return(nil, fmt.Errorf("missing in counter.sling: %w", ledger.ErrFunctionNotFound))
		_, err := api.client.Execute(ctx, "counter.sling", "missing", nil, 0)
		require.ErrorIs(t, err, client.ErrNotFound)
	})
}
