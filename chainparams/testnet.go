package chainparams

import (
	"time"

	"github.com/btcsuite/btcd/blockchain"
)

// NewTestNetParams builds the test network profile: the main profile with the
// overrides below.
func NewTestNetParams(bestHeight int32) *ChainParams {
	p := NewMainNetParams(bestHeight)
	p.Name = "test"
	p.Net = TestNet
	p.Magic = Magic{0x11, 0xb5, 0xef, 0xae}
	p.PowLimit = targetLimit(16)
	p.PosLimit = targetLimit(16)
	p.AlertPubKey = mustDecodeHex("03b47584b96e9056bc6b132a04b94baafeac5d5257fe028e80695c62f7c2f81f85d251a216df3af197653f454852a2d08c6314aad5ca3cbe5616262ca3e7a6faac")
	p.DefaultPort = 30026
	p.RPCPort = 30028
	p.DataDir = "testnet"

	// Modify the genesis block so the timestamp is valid for a later start.
	p.Genesis.Bits = blockchain.BigToCompact(p.PowLimit)
	p.Genesis.Nonce = 28000
	p.Genesis.ExpectedHash = newHashFromStr("00008937cc00a2a00ad8f4a2be7ac30fb54a3335443f82e6f4c976128b18f686")

	p.DNSSeeds = nil

	p.setBase58Prefix(PubKeyAddress, 29)
	p.setBase58Prefix(ScriptAddress, 56)
	p.setBase58Prefix(SecretKey, 23)
	p.setBase58Prefix(ExtPublicKey, 0x04, 0x88, 0xB2, 0x1E)
	p.setBase58Prefix(ExtSecretKey, 0x04, 0x88, 0xAD, 0xE4)

	p.FixedSeeds = ConvertSeed6(testSeeds, time.Now(), newSeedRand())

	p.Spacing = FlatSpacing(200)
	p.LastPoWBlock = 0x7fffffff
	p.StartPoSBlock = 4500
	p.resolveSpacing(bestHeight)
	p.mustFinish()
	return p
}
