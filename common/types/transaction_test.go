package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slingshotlabs/go-slingshot/codec"
)

func transferFixture(nonce uint64) *Transaction {
	owner := GenerateAddress([]byte("owner-key"))
	out := Record{Owner: owner, Value: 50, Nonce: 7}
	tx := &Transaction{
		Kind: TransferTransaction,
		Transfer: &TransferBody{
			Inputs:  []RecordID{out.Commitment()},
			Outputs: []Record{out},
		},
		Principal: owner,
		Nonce:     nonce,
	}
	if err := tx.CalcAndSetID(); err != nil {
		panic(err)
	}
	return tx
}

func TestTransactionID(t *testing.T) {
	tx := transferFixture(1)
	require.NotEqual(t, EmptyTransactionID, tx.ID())

	same := transferFixture(1)
	require.Equal(t, tx.ID(), same.ID(), "identical transactions share an id")

	other := transferFixture(2)
	require.NotEqual(t, tx.ID(), other.ID(), "nonce changes the id")
}

func TestTransactionRoundTrip(t *testing.T) {
	tx := transferFixture(3)
	raw, err := codec.Encode(tx)
	require.NoError(t, err)

	decoded, err := BytesToTransaction(raw)
	require.NoError(t, err)
	require.Equal(t, tx.ID(), decoded.ID())
	require.Equal(t, tx.Kind, decoded.Kind)
	require.NotNil(t, decoded.Transfer)
	require.Equal(t, tx.Transfer.Inputs, decoded.Transfer.Inputs)
	require.Nil(t, decoded.Deploy)
	require.Nil(t, decoded.Execute)
}

func TestSignedBytesExcludesSignature(t *testing.T) {
	tx := transferFixture(4)
	unsigned, err := tx.SignedBytes()
	require.NoError(t, err)

	tx.Signature = SignatureFromBytes([]byte("some signature bytes"))
	signedLater, err := tx.SignedBytes()
	require.NoError(t, err)
	require.Equal(t, unsigned, signedLater, "signature must not change the signed bytes")
}

func TestTransactionKindString(t *testing.T) {
	require.Equal(t, "transfer", TransferTransaction.String())
	require.Equal(t, "deploy", DeployTransaction.String())
	require.Equal(t, "execute", ExecuteTransaction.String())
	require.Contains(t, TransactionKind(9).String(), "unknown")
}

func TestSortTransactionIDs(t *testing.T) {
	a := TransactionID(CalcHash32([]byte("a")))
	b := TransactionID(CalcHash32([]byte("b")))
	c := TransactionID(CalcHash32([]byte("c")))
	ids := SortTransactionIDs([]TransactionID{c, a, b})
	for i := 0; i < len(ids)-1; i++ {
		require.True(t, ids[i].Compare(ids[i+1]))
	}
}
