package chainparams

import (
	"github.com/btcsuite/btcd/blockchain"
)

// NewRegTestParams builds the regression test profile: the test profile with
// trivial difficulty and no DNS seeds.
func NewRegTestParams(bestHeight int32) *ChainParams {
	p := NewTestNetParams(bestHeight)
	p.Name = "regtest"
	p.Net = RegTest
	p.Magic = Magic{0x22, 0xfe, 0x98, 0xca}
	p.PowLimit = targetLimit(1)
	p.DefaultPort = 39003
	p.DataDir = "regtest"

	p.Genesis.BlockTime = 1484279517
	p.Genesis.Bits = blockchain.BigToCompact(p.PowLimit)
	p.Genesis.Nonce = 8
	p.Genesis.ExpectedHash = newHashFromStr("02718c13e34c3a6e985f3282beae84bb9a2bdfc311376ac068c15b106c2151b1")

	p.DNSSeeds = nil // regtest mode doesn't have any DNS seeds
	p.RequireRPCPassword = false
	p.mustFinish()
	return p
}
