// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/magic53/go-chainparams/data"
)

// genesisScriptNum is pushed between OP_0 and the message in the coinbase.
const genesisScriptNum = 42

// GenesisSpec holds the literal inputs of a genesis block and the hashes the
// resulting block must have.
type GenesisSpec struct {
	Message      string
	TxVersion    int32
	TxTime       uint32
	BlockVersion int32
	BlockTime    uint32
	Bits         uint32
	Nonce        uint32

	ExpectedHash       chainhash.Hash
	ExpectedMerkleRoot chainhash.Hash
}

// GenesisError reports a genesis block that does not hash to its hard-coded
// value. It means the binary's consensus constants are inconsistent and the
// process must not start.
type GenesisError struct {
	Network Network
	Field   string
	Want    chainhash.Hash
	Got     chainhash.Hash
	Header  wire.BlockHeader
}

func (e *GenesisError) Error() string {
	return fmt.Sprintf("%s genesis %s mismatch: want %v, got %v", e.Network, e.Field, e.Want, e.Got)
}

// IsFatal reports whether err is a startup invariant violation.
func IsFatal(err error) bool {
	var ge *GenesisError
	return errors.As(err, &ge)
}

// BuildGenesisBlock assembles the single transaction genesis block. The
// coinbase claims no reward and the block has no predecessor.
func BuildGenesisBlock(spec GenesisSpec) (*data.Block, error) {
	scriptSig, err := txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(genesisScriptNum).
		AddData([]byte(spec.Message)).
		Script()
	if err != nil {
		return nil, err
	}

	tx := data.NewTx(spec.TxVersion, spec.TxTime)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), scriptSig, nil))
	tx.AddTxOut(wire.NewTxOut(0, nil))

	block := &data.Block{
		Header: wire.BlockHeader{
			Version:   spec.BlockVersion,
			PrevBlock: chainhash.Hash{},
			Timestamp: time.Unix(int64(spec.BlockTime), 0),
			Bits:      spec.Bits,
			Nonce:     spec.Nonce,
		},
	}
	block.AddTransaction(tx)
	if block.Header.MerkleRoot, err = block.BuildMerkleRoot(); err != nil {
		return nil, err
	}
	return block, nil
}

// VerifyGenesis recomputes the merkle root and header hash of the profile's
// genesis block and compares them with the hard-coded values. A mismatch is
// returned as *GenesisError.
func VerifyGenesis(p *ChainParams) error {
	block := p.GenesisBlock
	if block == nil {
		return fmt.Errorf("%s genesis block not built", p.Net)
	}
	root, err := block.BuildMerkleRoot()
	if err != nil {
		return err
	}
	if root != p.Genesis.ExpectedMerkleRoot || root != block.Header.MerkleRoot {
		return &GenesisError{
			Network: p.Net,
			Field:   "merkle root",
			Want:    p.Genesis.ExpectedMerkleRoot,
			Got:     root,
			Header:  block.Header,
		}
	}
	hash := block.BlockHash()
	if hash != p.Genesis.ExpectedHash || hash != p.GenesisHash {
		return &GenesisError{
			Network: p.Net,
			Field:   "hash",
			Want:    p.Genesis.ExpectedHash,
			Got:     hash,
			Header:  block.Header,
		}
	}
	return nil
}

// buildGenesis populates the genesis fields of p from p.Genesis.
func (p *ChainParams) buildGenesis() error {
	block, err := BuildGenesisBlock(p.Genesis)
	if err != nil {
		return err
	}
	p.GenesisBlock = block
	p.GenesisHash = block.BlockHash()
	return nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It panics on error since it is only called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return *hash
}
