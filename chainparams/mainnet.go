// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"encoding/hex"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
)

const genesisMessage = "Bitcoin Exchange BTCC Halts Fiat And Crypto Lending, by: JP Buntinx - January 13, 2017"

var (
	bigOne = big.NewInt(1)

	// maxUint256 is ~uint256(0), the base of every target limit.
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// targetLimit returns ~uint256(0) >> shift.
func targetLimit(shift uint) *big.Int {
	return new(big.Int).Rsh(maxUint256, shift)
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// NewMainNetParams builds the main network profile, the base of every other
// profile. bestHeight is the chain height the spacing schedule is frozen at.
func NewMainNetParams(bestHeight int32) *ChainParams {
	p := &ChainParams{
		Name:        "main",
		Net:         MainNet,
		Magic:       Magic{0xab, 0xe1, 0x87, 0xa6},
		AlertPubKey: mustDecodeHex("04a36564b96a4756bc6b132a04b94baafeac5d5257fe028e80695c62f7c2f81f85d251a216df3be197653f454852a2d08c6314aad5ca3cbe5616262ca3e7a6feef"),
		DefaultPort: 30031,
		RPCPort:     30033,
		PowLimit:    targetLimit(20),
		PosLimit:    targetLimit(20),

		Genesis: GenesisSpec{
			Message:      genesisMessage,
			TxVersion:    1,
			TxTime:       1484278517, // Fri, 13 Jan 2017 03:35:17 GMT
			BlockVersion: 1,
			BlockTime:    1484278517,
			Nonce:        1015460,

			ExpectedHash:       newHashFromStr("000009382cda8c797a597f8d08cbfbaae134d34bc072c4e3a1b0fa68f5ca660e"),
			ExpectedMerkleRoot: newHashFromStr("fb5c1cb95b2452f7d5b5c6837812349d681e073af9440438a32305ffed14518c"),
		},

		DNSSeeds: []DNSSeed{
			{"Seed01", "199.26.184.214"},
		},

		// ~240 sec during PoW, slower while PoW and PoS blocks overlap.
		Spacing:       SpacingSchedule{Base: 240, PostPoW: 240, DualPhase: 720},
		LastPoWBlock:  440005, // 224840000 total PoW coins
		StartPoSBlock: 5000,

		RequireRPCPassword: true,
	}
	p.Genesis.Bits = blockchain.BigToCompact(p.PowLimit)

	p.setBase58Prefix(PubKeyAddress, 28)
	p.setBase58Prefix(ScriptAddress, 48)
	p.setBase58Prefix(SecretKey, 53)
	p.setBase58Prefix(ExtPublicKey, 0x04, 0x88, 0xB2, 0x1E)
	p.setBase58Prefix(ExtSecretKey, 0x04, 0x88, 0xAD, 0xE4)

	p.FixedSeeds = ConvertSeed6(mainSeeds, time.Now(), newSeedRand())
	p.resolveSpacing(bestHeight)
	p.mustFinish()
	return p
}

// mustFinish builds the genesis block and the btcd view of the profile. It
// only fails on a broken hard-coded definition.
func (p *ChainParams) mustFinish() {
	if err := p.buildGenesis(); err != nil {
		panic("failed to build " + p.Name + " genesis block: " + err.Error())
	}
	p.btcd = p.newBtcdParams()
}
