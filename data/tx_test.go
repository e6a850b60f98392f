package data

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	genesisMessage = "Bitcoin Exchange BTCC Halts Fiat And Crypto Lending, by: JP Buntinx - January 13, 2017"

	genesisTxHex = "01000000f54a7858010000000000000000000000000000000000000000000000000000000000000000ffffffff5b00012a4c56426974636f696e2045786368616e676520425443432048616c7473204669617420416e642043727970746f204c656e64696e672c2062793a204a502042756e74696e78202d204a616e756172792031332c2032303137ffffffff0100000000000000000000000000"

	genesisTxID = "fb5c1cb95b2452f7d5b5c6837812349d681e073af9440438a32305ffed14518c"
)

func genesisTx(t *testing.T) *Tx {
	scriptSig := append([]byte{0x00, 0x01, 0x2a, 0x4c, byte(len(genesisMessage))}, genesisMessage...)
	tx := NewTx(1, 1484278517)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), scriptSig, nil))
	tx.AddTxOut(wire.NewTxOut(0, nil))
	return tx
}

func TestTxSerialize(t *testing.T) {
	tx := genesisTx(t)
	b, err := tx.Bytes()
	require.NoError(t, err)
	assert.Equal(t, genesisTxHex, hex.EncodeToString(b))
	hash, err := tx.TxHash()
	require.NoError(t, err)
	assert.Equal(t, genesisTxID, hash.String())
	assert.True(t, tx.IsCoinBase())
}

func TestReadTransaction(t *testing.T) {
	b, err := hex.DecodeString(genesisTxHex)
	require.NoError(t, err)
	tx, err := ReadTransaction(bytes.NewReader(b))
	require.NoError(t, err)

	assert.Equal(t, int32(1), tx.Version)
	assert.Equal(t, uint32(1484278517), tx.Time)
	require.Len(t, tx.TxIn, 1)
	require.Len(t, tx.TxOut, 1)
	assert.Equal(t, wire.MaxPrevOutIndex, tx.TxIn[0].Sequence)
	assert.Equal(t, int64(0), tx.TxOut[0].Value)
	assert.Empty(t, tx.TxOut[0].PkScript)
	got, err := tx.Bytes()
	require.NoError(t, err)
	assert.Equal(t, b, got)
	hash, err := tx.TxHash()
	require.NoError(t, err)
	assert.Equal(t, genesisTxID, hash.String())
}

func TestReadTransactionTruncated(t *testing.T) {
	b, err := hex.DecodeString(genesisTxHex)
	require.NoError(t, err)
	for _, n := range []int{0, 3, 7, 40, len(b) - 1} {
		_, err := ReadTransaction(bytes.NewReader(b[:n]))
		assert.Error(t, err, "length %d", n)
	}
}

func TestWriteScriptTooLong(t *testing.T) {
	tx := NewTx(1, 0)
	tx.AddTxOut(wire.NewTxOut(1, make([]byte, maxScriptLen+1)))
	assert.Equal(t, errScriptTooLong, tx.Serialize(&bytes.Buffer{}))

	b, err := tx.Bytes()
	assert.Equal(t, errScriptTooLong, err)
	assert.Nil(t, b)
	hash, err := tx.TxHash()
	assert.Equal(t, errScriptTooLong, err)
	assert.Equal(t, chainhash.Hash{}, hash)

	block := &Block{}
	block.AddTransaction(genesisTx(t))
	block.AddTransaction(tx)
	_, err = block.BuildMerkleRoot()
	assert.ErrorIs(t, err, errScriptTooLong)
	assert.Contains(t, err.Error(), "tx 1")
}

func TestIsCoinBase(t *testing.T) {
	tx := NewTx(1, 0)
	assert.False(t, tx.IsCoinBase())
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{1}, 0), nil, nil))
	assert.False(t, tx.IsCoinBase())
}
