// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package chainparams defines the consensus profiles of the main, test and
// regression test networks and tracks which one the process runs on.
//
// Every profile is assembled once at package initialization. Main is the base
// definition, TestNet overrides selected Main fields and RegTest overrides
// selected TestNet fields. Callers read constants through Params(), never
// through a specific profile.
package chainparams

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/magic53/go-chainparams/data"
)

// Network identifies one of the consensus profiles.
type Network int32

const (
	MainNet Network = iota
	TestNet
	RegTest
)

var networkNames = map[Network]string{
	MainNet: "main",
	TestNet: "test",
	RegTest: "regtest",
}

// String returns the network name.
func (n Network) String() string {
	if s, ok := networkNames[n]; ok {
		return s
	}
	return "Unknown Network (" + strconv.Itoa(int(n)) + ")"
}

// Base58Type is the kind of data prefixed before base58 encoding.
type Base58Type int

const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey

	numBase58Types
)

// Magic prefixes every wire message and on disk block record.
type Magic [4]byte

// BitcoinNet returns the magic as the little endian number used by btcd.
func (m Magic) BitcoinNet() wire.BitcoinNet {
	return wire.BitcoinNet(binary.LittleEndian.Uint32(m[:]))
}

// String returns the magic as hex in wire order.
func (m Magic) String() string {
	return fmt.Sprintf("%x", m[:])
}

// DNSSeed names a host that resolves to peers of the network.
type DNSSeed struct {
	Name string
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// ChainParams holds the consensus constants of one network.
type ChainParams struct {
	Name string
	Net  Network

	// Message start bytes, unlikely to occur in normal data.
	Magic       Magic
	AlertPubKey []byte
	DefaultPort uint16
	RPCPort     uint16

	// Easiest allowed targets.
	PowLimit *big.Int
	PosLimit *big.Int

	Genesis      GenesisSpec
	GenesisBlock *data.Block
	GenesisHash  chainhash.Hash

	base58Prefixes [numBase58Types][]byte

	DNSSeeds   []DNSSeed
	FixedSeeds []*wire.NetAddress

	// Spacing is the height schedule, TargetSpacing and TargetTimespan its
	// value at the height the profile was built with.
	Spacing        SpacingSchedule
	TargetSpacing  int64
	TargetTimespan int64

	LastPoWBlock  int32
	StartPoSBlock int32

	// DataDir separates on disk storage between networks. Empty for main.
	DataDir string

	RequireRPCPassword bool

	btcd *chaincfg.Params
}

// Base58Prefix returns a copy of the prefix for the given kind.
func (p *ChainParams) Base58Prefix(t Base58Type) []byte {
	if t < 0 || t >= numBase58Types {
		return nil
	}
	prefix := make([]byte, len(p.base58Prefixes[t]))
	copy(prefix, p.base58Prefixes[t])
	return prefix
}

func (p *ChainParams) setBase58Prefix(t Base58Type, prefix ...byte) {
	p.base58Prefixes[t] = prefix
}

// SpacingAt evaluates the spacing schedule at height.
func (p *ChainParams) SpacingAt(height int32) int64 {
	return p.Spacing.At(height, p.LastPoWBlock, p.StartPoSBlock)
}

// TargetSpacingDuration returns TargetSpacing as a duration.
func (p *ChainParams) TargetSpacingDuration() time.Duration {
	return time.Duration(p.TargetSpacing) * time.Second
}

// TargetTimespanDuration returns TargetTimespan as a duration.
func (p *ChainParams) TargetTimespanDuration() time.Duration {
	return time.Duration(p.TargetTimespan) * time.Second
}

// DefaultPortString returns the p2p port in the string form btcd uses.
func (p *ChainParams) DefaultPortString() string {
	return strconv.Itoa(int(p.DefaultPort))
}
