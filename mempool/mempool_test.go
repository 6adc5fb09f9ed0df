package mempool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slingshotlabs/go-slingshot/common/types"
)

func rid(seed string) types.RecordID {
	return types.RecordID(types.CalcHash32([]byte(seed)))
}

func addr(b byte) types.Address {
	return types.GenerateAddress(bytes.Repeat([]byte{b}, 32))
}

func transfer(t *testing.T, inputs []types.RecordID, outputs []types.Record) *types.Transaction {
	t.Helper()
	tx := &types.Transaction{
		Kind:     types.TransferTransaction,
		Transfer: &types.TransferBody{Inputs: inputs, Outputs: outputs},
	}
	require.NoError(t, tx.CalcAndSetID())
	return tx
}

func TestAddGet(t *testing.T) {
	pool := NewTxMempool()
	tx := transfer(t, []types.RecordID{rid("a")}, nil)

	_, err := pool.Get(tx.ID())
	require.EqualError(t, err, "transaction not found in mempool")
	require.Zero(t, pool.Len())

	require.NoError(t, pool.Add(tx))
	got, err := pool.Get(tx.ID())
	require.NoError(t, err)
	require.Equal(t, tx, got)
	require.Equal(t, 1, pool.Len())
}

func TestAddDuplicate(t *testing.T) {
	pool := NewTxMempool()
	tx := transfer(t, []types.RecordID{rid("a")}, nil)

	require.NoError(t, pool.Add(tx))
	require.ErrorContains(t, pool.Add(tx), "already in mempool")
	require.Equal(t, 1, pool.Len())
}

func TestAddReservedRecord(t *testing.T) {
	pool := NewTxMempool()
	first := transfer(t, []types.RecordID{rid("a")}, []types.Record{{Owner: addr(1), Value: 10}})
	second := transfer(t, []types.RecordID{rid("a")}, []types.Record{{Owner: addr(2), Value: 10}})

	require.NoError(t, pool.Add(first))
	require.ErrorContains(t, pool.Add(second), "already reserved by pooled transaction")

	// the reservation is freed with the holder
	pool.Invalidate(first.ID())
	require.NoError(t, pool.Add(second))
}

func TestInvalidate(t *testing.T) {
	pool := NewTxMempool()
	tx := transfer(t, []types.RecordID{rid("a"), rid("b")}, nil)

	require.NoError(t, pool.Add(tx))
	pool.Invalidate(tx.ID())
	require.Zero(t, pool.Len())
	_, err := pool.Get(tx.ID())
	require.Error(t, err)
	require.Empty(t, pool.Reserved())

	// unknown ids are a no-op
	pool.Invalidate(tx.ID())
}

func TestTransactionsOrder(t *testing.T) {
	pool := NewTxMempool()
	first := transfer(t, []types.RecordID{rid("a")}, nil)
	second := transfer(t, []types.RecordID{rid("b")}, nil)
	third := transfer(t, []types.RecordID{rid("c")}, nil)

	require.NoError(t, pool.Add(first))
	require.NoError(t, pool.Add(second))
	require.NoError(t, pool.Add(third))
	require.Equal(t, []*types.Transaction{first, second, third}, pool.Transactions())

	pool.Invalidate(second.ID())
	require.Equal(t, []*types.Transaction{first, third}, pool.Transactions())
}

func TestReservedIsACopy(t *testing.T) {
	pool := NewTxMempool()
	tx := transfer(t, []types.RecordID{rid("a")}, nil)
	require.NoError(t, pool.Add(tx))

	reserved := pool.Reserved()
	require.Contains(t, reserved, rid("a"))
	delete(reserved, rid("a"))

	conflicting := transfer(t, []types.RecordID{rid("a")}, []types.Record{{Owner: addr(1), Value: 1}})
	require.Error(t, pool.Add(conflicting))
}

func TestPendingBalance(t *testing.T) {
	pool := NewTxMempool()
	alice, bob := addr(1), addr(2)

	require.NoError(t, pool.Add(transfer(t, []types.RecordID{rid("a")}, []types.Record{
		{Owner: alice, Value: 100, Nonce: 1},
		{Owner: bob, Value: 30, Nonce: 2},
	})))
	require.NoError(t, pool.Add(transfer(t, []types.RecordID{rid("b")}, []types.Record{
		{Owner: alice, Value: 50, Nonce: 3},
	})))

	require.EqualValues(t, 150, pool.PendingBalance(alice))
	require.EqualValues(t, 30, pool.PendingBalance(bob))
	require.Zero(t, pool.PendingBalance(addr(3)))
}
