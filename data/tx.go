// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package data

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// maxScriptLen bounds scripts read from untrusted input.
const maxScriptLen = 10000

var errScriptTooLong = errors.New("script exceeds maximum length")

// Tx is a proof-of-stake era transaction. It carries the wire transaction plus
// the timestamp serialized right after the version field.
type Tx struct {
	wire.MsgTx
	Time uint32
}

// NewTx returns an empty transaction with the given version and timestamp.
func NewTx(version int32, time uint32) *Tx {
	return &Tx{
		MsgTx: wire.MsgTx{
			Version:  version,
			TxIn:     []*wire.TxIn{},
			TxOut:    []*wire.TxOut{},
			LockTime: 0,
		},
		Time: time,
	}
}

// Serialize writes the transaction: version, time, vins, vouts, locktime.
func (tx *Tx) Serialize(w io.Writer) (err error) {
	if err = writeUint32(w, uint32(tx.Version)); err != nil {
		return
	}
	if err = writeUint32(w, tx.Time); err != nil {
		return
	}
	if err = WriteVins(w, tx.TxIn); err != nil {
		return
	}
	if err = WriteVouts(w, tx.TxOut); err != nil {
		return
	}
	err = writeUint32(w, tx.LockTime)
	return
}

// Bytes returns the serialized transaction.
func (tx *Tx) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TxHash returns the double sha256 of the serialized transaction.
func (tx *Tx) TxHash() (chainhash.Hash, error) {
	b, err := tx.Bytes()
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(b), nil
}

// IsCoinBase reports whether the tx spends the null outpoint.
func (tx *Tx) IsCoinBase() bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	prev := tx.TxIn[0].PreviousOutPoint
	return prev.Index == wire.MaxPrevOutIndex && prev.Hash == (chainhash.Hash{})
}

// WriteVins serializes tx vins.
func WriteVins(w io.Writer, vins []*wire.TxIn) (err error) {
	if err = wire.WriteVarInt(w, 0, uint64(len(vins))); err != nil {
		return
	}
	for _, in := range vins {
		if err = checkScriptLen(in.SignatureScript); err != nil {
			return
		}
		if _, err = w.Write(in.PreviousOutPoint.Hash[:]); err != nil {
			return
		}
		if err = writeUint32(w, in.PreviousOutPoint.Index); err != nil {
			return
		}
		if err = wire.WriteVarBytes(w, 0, in.SignatureScript); err != nil {
			return
		}
		if err = writeUint32(w, in.Sequence); err != nil {
			return
		}
	}
	return
}

// WriteVouts serializes tx vouts.
func WriteVouts(w io.Writer, vouts []*wire.TxOut) (err error) {
	if err = wire.WriteVarInt(w, 0, uint64(len(vouts))); err != nil {
		return
	}
	for _, out := range vouts {
		if err = checkScriptLen(out.PkScript); err != nil {
			return
		}
		var value [8]byte
		binary.LittleEndian.PutUint64(value[:], uint64(out.Value))
		if _, err = w.Write(value[:]); err != nil {
			return
		}
		if err = wire.WriteVarBytes(w, 0, out.PkScript); err != nil {
			return
		}
	}
	return
}

// ReadVins deserializes tx vins.
func ReadVins(buf io.Reader) (vins []*wire.TxIn, err error) {
	var txVinsLen uint64
	if txVinsLen, err = wire.ReadVarInt(buf, 0); err != nil {
		log.WithError(err).Debug("failed to read tx vin length")
		return
	}
	for i := 0; i < int(txVinsLen); i++ {
		var txHash chainhash.Hash
		if _, err = io.ReadFull(buf, txHash[:]); err != nil {
			log.WithError(err).Debug("failed to read tx vin prevout hash")
			return
		}
		var txN uint32
		if txN, err = readUint32(buf); err != nil {
			log.WithError(err).Debug("failed to read tx vin prevout n")
			return
		}
		var scriptSig []byte
		if scriptSig, err = wire.ReadVarBytes(buf, 0, maxScriptLen, "scriptSig"); err != nil {
			log.WithError(err).Debug("failed to read script sig")
			return
		}
		var sequence uint32
		if sequence, err = readUint32(buf); err != nil {
			log.WithError(err).Debug("failed to read tx vin sequence number")
			return
		}
		txIn := wire.NewTxIn(wire.NewOutPoint(&txHash, txN), scriptSig, nil)
		txIn.Sequence = sequence
		vins = append(vins, txIn)
	}
	return
}

// ReadVouts deserializes tx vouts.
func ReadVouts(buf io.Reader) (vouts []*wire.TxOut, err error) {
	var txVoutLen uint64
	if txVoutLen, err = wire.ReadVarInt(buf, 0); err != nil {
		return
	}
	for i := 0; i < int(txVoutLen); i++ {
		var value [8]byte
		if _, err = io.ReadFull(buf, value[:]); err != nil {
			return
		}
		var pkScript []byte
		if pkScript, err = wire.ReadVarBytes(buf, 0, maxScriptLen, "pkScript"); err != nil {
			return
		}
		vouts = append(vouts, wire.NewTxOut(int64(binary.LittleEndian.Uint64(value[:])), pkScript))
	}
	return
}

// ReadTransaction reads a proof-of-stake transaction.
func ReadTransaction(buf io.Reader) (tx *Tx, err error) {
	var version, txTime uint32
	if version, err = readUint32(buf); err != nil {
		log.WithError(err).Debug("failed to read tx version")
		return
	}
	if txTime, err = readUint32(buf); err != nil {
		log.WithError(err).Debug("failed to read tx time")
		return
	}
	tx = NewTx(int32(version), txTime)
	if tx.TxIn, err = ReadVins(buf); err != nil {
		return nil, err
	}
	if tx.TxOut, err = ReadVouts(buf); err != nil {
		return nil, err
	}
	if tx.LockTime, err = readUint32(buf); err != nil {
		log.WithError(err).Debug("failed to read tx locktime")
		return nil, err
	}
	return
}

func writeUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// checkScriptLen guards script sizes before serialization.
func checkScriptLen(script []byte) error {
	if len(script) > maxScriptLen {
		return errScriptTooLong
	}
	return nil
}
