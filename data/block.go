// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package data

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/magic53/go-chainparams/powhash"
)

// maxBlockTxs bounds the tx count read from untrusted input.
const maxBlockTxs = 100000

// Block is a header plus its proof-of-stake era transactions.
type Block struct {
	Header       wire.BlockHeader
	Transactions []*Tx
}

// AddTransaction appends tx to the block.
func (b *Block) AddTransaction(tx *Tx) {
	b.Transactions = append(b.Transactions, tx)
}

// BuildMerkleRoot computes the merkle root over the block transactions.
func (b *Block) BuildMerkleRoot() (chainhash.Hash, error) {
	hashes := make([]chainhash.Hash, 0, len(b.Transactions))
	for i, tx := range b.Transactions {
		hash, err := tx.TxHash()
		if err != nil {
			return chainhash.Hash{}, fmt.Errorf("tx %d: %w", i, err)
		}
		hashes = append(hashes, hash)
	}
	return MerkleRoot(hashes), nil
}

// HeaderBytes returns the 80 byte serialized header.
func (b *Block) HeaderBytes() []byte {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)
	_ = b.Header.Serialize(&buf)
	return buf.Bytes()
}

// BlockHash is the NIST5 hash of the header.
func (b *Block) BlockHash() chainhash.Hash {
	return powhash.Sum(b.HeaderBytes())
}

// Serialize writes the header followed by the transactions.
func (b *Block) Serialize(w io.Writer) (err error) {
	if err = b.Header.Serialize(w); err != nil {
		return
	}
	if err = wire.WriteVarInt(w, 0, uint64(len(b.Transactions))); err != nil {
		return
	}
	for _, tx := range b.Transactions {
		if err = tx.Serialize(w); err != nil {
			return
		}
	}
	return
}

// ReadBlock reads a block written by Serialize.
func ReadBlock(buf io.Reader) (block *Block, err error) {
	block = &Block{}
	if err = block.Header.Deserialize(buf); err != nil {
		log.WithError(err).Debug("failed to read block header")
		return nil, err
	}
	var txLen uint64
	if txLen, err = wire.ReadVarInt(buf, 0); err != nil {
		log.WithError(err).Debug("failed to read tx count")
		return nil, err
	}
	if txLen > maxBlockTxs {
		return nil, errTooManyTxs
	}
	for i := 0; i < int(txLen); i++ {
		var tx *Tx
		if tx, err = ReadTransaction(buf); err != nil {
			return nil, err
		}
		block.AddTransaction(tx)
	}
	return
}

// MerkleRoot folds the hashes pairwise with double sha256, duplicating the
// last hash of an odd level. A single hash is its own root.
func MerkleRoot(hashes []chainhash.Hash) chainhash.Hash {
	if len(hashes) == 0 {
		return chainhash.Hash{}
	}
	level := make([]chainhash.Hash, len(hashes))
	copy(level, hashes)
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			var pair [chainhash.HashSize * 2]byte
			copy(pair[:chainhash.HashSize], level[i][:])
			copy(pair[chainhash.HashSize:], level[i+1][:])
			next = append(next, chainhash.DoubleHashH(pair[:]))
		}
		level = next
	}
	return level[0]
}
