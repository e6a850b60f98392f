// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package data

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
	"go.uber.org/atomic"
)

// maxFrameSize bounds a single framed payload.
const maxFrameSize = 32 * 1024 * 1024

var (
	errTooManyTxs   = errors.New("block tx count exceeds maximum")
	errBadMagicSize = errors.New("network magic must be 4 bytes")

	shutdownInProgress = atomic.NewBool(false)
)

// ShutdownNow starts the shutdown process. Thread safe.
func ShutdownNow() {
	shutdownInProgress.Store(true)
}

// IsShuttingDown returns true if shutdown was requested. Thread safe.
func IsShuttingDown() bool {
	return shutdownInProgress.Load()
}

// NetworkLE returns the little endian byte representation of the network magic number.
func NetworkLE(net wire.BitcoinNet) []byte {
	network := make([]byte, 4)
	binary.LittleEndian.PutUint32(network, uint32(net))
	return network
}

// WriteFrame writes magic, the little endian payload size and the payload,
// the layout used by blk*.dat files and the message stream.
func WriteFrame(w io.Writer, magic []byte, payload []byte) (err error) {
	if len(magic) != 4 {
		return errBadMagicSize
	}
	if len(payload) > maxFrameSize {
		return fmt.Errorf("frame of %d bytes exceeds maximum %d", len(payload), maxFrameSize)
	}
	if _, err = w.Write(magic); err != nil {
		return
	}
	if err = writeUint32(w, uint32(len(payload))); err != nil {
		return
	}
	_, err = w.Write(payload)
	return
}

// NextFrame finds all the frames in the buffer that start with the network
// magic and sends each payload to a delegate handler. Bytes that do not belong
// to a frame of this network are skipped. Checks for shutdown.
func NextFrame(sc *bufio.Reader, network []byte, handle func([]byte) bool) (ok bool, err error) {
	if len(network) != 4 {
		return false, errBadMagicSize
	}
	count := 0
	for {
		var b byte
		if b, err = sc.ReadByte(); err != nil {
			break
		}
		if b != network[0] { // check for network byte delim
			continue
		}
		var pb []byte
		if pb, err = sc.Peek(3); err != nil { // peek network bytes
			break
		}
		if !bytes.Equal(pb, network[1:]) { // check if network matches
			continue
		}

		// We're at the frame, discard network magic number bytes
		if _, err = sc.Discard(3); err != nil {
			break
		}
		var size uint32
		if size, err = readUint32(sc); err != nil {
			log.WithError(err).Debug("failed to read frame size")
			break
		}
		if size > maxFrameSize {
			log.WithField("size", size).Debug("skipping oversized frame")
			continue
		}

		payload := make([]byte, size)
		if _, err = io.ReadFull(sc, payload); err != nil {
			log.WithError(err).Debug("failed to copy frame bytes")
			break
		}

		if !handle(payload) { // ask delegate if we can proceed
			return false, nil
		}

		count++
		if count%10000 == 0 && IsShuttingDown() {
			return false, nil
		}
	}

	if err == io.EOF || err == io.ErrUnexpectedEOF { // not fatal
		if err == io.ErrUnexpectedEOF {
			log.Debug("truncated frame at end of stream")
		}
		err = nil
	}
	return err == nil, err
}

// ReadBlocks reads every block framed with the network magic.
func ReadBlocks(r io.Reader, network []byte) (blocks []*Block, err error) {
	_, err = NextFrame(bufio.NewReader(r), network, func(payload []byte) bool {
		block, err2 := ReadBlock(bytes.NewReader(payload))
		if err2 != nil {
			log.WithError(err2).Warn("failed to read block")
			return true
		}
		blocks = append(blocks, block)
		return true
	})
	return
}

// WriteBlock frames a serialized block with the network magic.
func WriteBlock(w io.Writer, network []byte, block *Block) error {
	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		return err
	}
	return WriteFrame(w, network, buf.Bytes())
}
