package chainparams

import (
	"bytes"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainNetParams(t *testing.T) {
	p := MainNetParams
	assert.Equal(t, Magic{0xab, 0xe1, 0x87, 0xa6}, p.Magic)
	assert.Equal(t, wire.BitcoinNet(0xa687e1ab), p.Magic.BitcoinNet())
	assert.Equal(t, "abe187a6", p.Magic.String())
	assert.Equal(t, uint16(30031), p.DefaultPort)
	assert.Equal(t, uint16(30033), p.RPCPort)
	assert.Equal(t, targetLimit(20), p.PowLimit)
	assert.Equal(t, targetLimit(20), p.PosLimit)
	assert.Equal(t, uint32(0x1e0fffff), p.Genesis.Bits)
	assert.Equal(t, []DNSSeed{{"Seed01", "199.26.184.214"}}, p.DNSSeeds)
	assert.Equal(t, int32(440005), p.LastPoWBlock)
	assert.Equal(t, int32(5000), p.StartPoSBlock)
	assert.Equal(t, "", p.DataDir)
	assert.True(t, p.RequireRPCPassword)
	assert.Len(t, p.AlertPubKey, 65)
	assert.Equal(t, 4*time.Minute, p.TargetSpacingDuration())
}

func TestTestNetOverrides(t *testing.T) {
	m, p := MainNetParams, TestNetParams
	assert.Equal(t, Magic{0x11, 0xb5, 0xef, 0xae}, p.Magic)
	assert.Equal(t, targetLimit(16), p.PowLimit)
	assert.Equal(t, targetLimit(16), p.PosLimit)
	assert.Equal(t, uint32(0x1f00ffff), p.Genesis.Bits)
	assert.Len(t, p.AlertPubKey, 65)
	assert.NotEqual(t, m.AlertPubKey, p.AlertPubKey)
	assert.Equal(t, uint16(30026), p.DefaultPort)
	assert.Equal(t, uint16(30028), p.RPCPort)
	assert.Equal(t, "testnet", p.DataDir)
	assert.Empty(t, p.DNSSeeds)
	assert.Equal(t, int32(0x7fffffff), p.LastPoWBlock)
	assert.Equal(t, int32(4500), p.StartPoSBlock)

	// Inherited from main.
	assert.Equal(t, m.Genesis.Message, p.Genesis.Message)
	assert.Equal(t, m.Genesis.TxTime, p.Genesis.TxTime)
	assert.Equal(t, m.Genesis.BlockTime, p.Genesis.BlockTime)
	assert.True(t, p.RequireRPCPassword)
	assert.Equal(t, m.Base58Prefix(ExtPublicKey), p.Base58Prefix(ExtPublicKey))
	assert.Equal(t, m.Base58Prefix(ExtSecretKey), p.Base58Prefix(ExtSecretKey))

	// Building testnet leaves main untouched.
	assert.Equal(t, targetLimit(20), m.PowLimit)
	assert.Equal(t, uint16(30031), m.DefaultPort)
}

func TestRegTestOverrides(t *testing.T) {
	tn, p := TestNetParams, RegTestParams
	assert.Equal(t, Magic{0x22, 0xfe, 0x98, 0xca}, p.Magic)
	assert.Equal(t, targetLimit(1), p.PowLimit)
	assert.Equal(t, uint32(0x207fffff), p.Genesis.Bits)
	assert.Equal(t, uint32(1484279517), p.Genesis.BlockTime)
	assert.Equal(t, uint32(8), p.Genesis.Nonce)
	assert.Equal(t, uint16(39003), p.DefaultPort)
	assert.Equal(t, "regtest", p.DataDir)
	assert.Empty(t, p.DNSSeeds)
	assert.False(t, p.RequireRPCPassword)

	// Inherited from testnet.
	assert.Equal(t, tn.PosLimit, p.PosLimit)
	assert.Equal(t, tn.RPCPort, p.RPCPort)
	assert.Equal(t, tn.AlertPubKey, p.AlertPubKey)
	assert.Equal(t, tn.LastPoWBlock, p.LastPoWBlock)
	assert.Equal(t, tn.StartPoSBlock, p.StartPoSBlock)
	assert.Equal(t, tn.Genesis.TxTime, p.Genesis.TxTime)
	for kind := PubKeyAddress; kind < numBase58Types; kind++ {
		assert.Equal(t, tn.Base58Prefix(kind), p.Base58Prefix(kind))
	}
}

func TestProfilesDistinct(t *testing.T) {
	seen := map[Magic]string{}
	hashes := map[chainhash.Hash]string{}
	for _, p := range profiles() {
		_, dup := seen[p.Magic]
		assert.False(t, dup, p.Name)
		seen[p.Magic] = p.Name
		_, dup = hashes[p.GenesisHash]
		assert.False(t, dup, p.Name)
		hashes[p.GenesisHash] = p.Name
	}
}

func TestBase58Prefix(t *testing.T) {
	assert.Equal(t, []byte{28}, MainNetParams.Base58Prefix(PubKeyAddress))
	assert.Equal(t, []byte{48}, MainNetParams.Base58Prefix(ScriptAddress))
	assert.Equal(t, []byte{53}, MainNetParams.Base58Prefix(SecretKey))
	assert.Equal(t, []byte{0x04, 0x88, 0xB2, 0x1E}, MainNetParams.Base58Prefix(ExtPublicKey))
	assert.Equal(t, []byte{0x04, 0x88, 0xAD, 0xE4}, MainNetParams.Base58Prefix(ExtSecretKey))
	assert.Equal(t, []byte{29}, TestNetParams.Base58Prefix(PubKeyAddress))
	assert.Equal(t, []byte{56}, TestNetParams.Base58Prefix(ScriptAddress))
	assert.Equal(t, []byte{23}, TestNetParams.Base58Prefix(SecretKey))
	assert.Nil(t, MainNetParams.Base58Prefix(numBase58Types))

	prefix := MainNetParams.Base58Prefix(PubKeyAddress)
	prefix[0] = 0
	assert.Equal(t, []byte{28}, MainNetParams.Base58Prefix(PubKeyAddress))
}

func TestEncodeAddress(t *testing.T) {
	zero := make([]byte, 20)
	seq := make([]byte, 20)
	for i := range seq {
		seq[i] = byte(i)
	}
	for _, tt := range []struct {
		p      *ChainParams
		hash   []byte
		pubKey string
		script string
	}{
		{MainNetParams, zero, "CGTta3M4t3yXu8uRgkKvaWd2d8DQvDPnpL", "LKDxGDJq5fF4FohAB8zJH24mDDNHDNtqsE"},
		{TestNetParams, zero, "CfoVZ9eMbESQia3WiAfF4dtpFdUMf7KWzm", "PXvn95h8m6x4oGorNVerA2F4FFRpqMqwAM"},
		{MainNetParams, seq, "CGTun4vhDQ21E6xykS3MAwGSiowvr8QjBH", ""},
		{TestNetParams, seq, "CfoWmBDyvaUt3Y74mrNff4YEMKCsWCLa1e", ""},
	} {
		addr, err := tt.p.EncodeAddress(tt.hash)
		require.NoError(t, err)
		assert.Equal(t, tt.pubKey, addr, tt.p.Name)

		decoded, err := tt.p.DecodeAddress(addr)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(tt.hash, decoded.ScriptAddress()))

		if tt.script == "" {
			continue
		}
		addr, err = tt.p.EncodeScriptAddress(tt.hash)
		require.NoError(t, err)
		assert.Equal(t, tt.script, addr, tt.p.Name)
	}

	_, err := MainNetParams.EncodeAddress(make([]byte, 19))
	assert.Error(t, err)

	main, err := MainNetParams.EncodeAddress(zero)
	require.NoError(t, err)
	_, err = TestNetParams.DecodeAddress(main)
	assert.Error(t, err)
}

func TestBtcdParams(t *testing.T) {
	for _, p := range profiles() {
		b := p.BtcdParams()
		require.NotNil(t, b, p.Name)
		assert.Equal(t, p.Name, b.Name)
		assert.Equal(t, p.Magic.BitcoinNet(), b.Net)
		assert.Equal(t, p.DefaultPortString(), b.DefaultPort)
		assert.Equal(t, p.GenesisHash, *b.GenesisHash)
		assert.Equal(t, p.Genesis.Bits, b.PowLimitBits)
		assert.Equal(t, p.TargetSpacingDuration(), b.TargetTimePerBlock)
		assert.Equal(t, p.TargetTimespanDuration(), b.TargetTimespan)
		assert.Equal(t, p.Base58Prefix(PubKeyAddress)[0], b.PubKeyHashAddrID)
		assert.Equal(t, p.Base58Prefix(ExtPublicKey), b.HDPublicKeyID[:])
		assert.Len(t, b.DNSSeeds, len(p.DNSSeeds))
	}
	assert.Equal(t, "30031", MainNetParams.BtcdParams().DefaultPort)
}

func TestCheckProofOfWork(t *testing.T) {
	p := RegTestParams
	assert.True(t, p.CheckProofOfWork(chainhash.Hash{}, p.Genesis.Bits))

	var high chainhash.Hash
	high[31] = 0xff
	assert.False(t, p.CheckProofOfWork(high, p.Genesis.Bits))

	// A target above the profile limit is rejected.
	assert.False(t, MainNetParams.CheckProofOfWork(chainhash.Hash{}, RegTestParams.Genesis.Bits))
	assert.False(t, MainNetParams.CheckProofOfWork(chainhash.Hash{}, 0))
}
