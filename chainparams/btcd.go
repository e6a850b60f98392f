package chainparams

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
)

// ErrBadPrefix is returned when a profile prefix cannot be used by the btcd
// address encoders.
var ErrBadPrefix = errors.New("base58 prefix is not a single byte")

// BtcdParams returns the profile in the form btcd and btcutil encoders take.
// Only the fields those encoders read are populated.
func (p *ChainParams) BtcdParams() *chaincfg.Params {
	return p.btcd
}

func (p *ChainParams) newBtcdParams() *chaincfg.Params {
	genesisHash := p.GenesisHash
	params := &chaincfg.Params{
		Name:               p.Name,
		Net:                p.Magic.BitcoinNet(),
		DefaultPort:        p.DefaultPortString(),
		GenesisHash:        &genesisHash,
		PowLimit:           p.PowLimit,
		PowLimitBits:       blockchain.BigToCompact(p.PowLimit),
		TargetTimespan:     p.TargetTimespanDuration(),
		TargetTimePerBlock: p.TargetSpacingDuration(),
		PubKeyHashAddrID:   firstByte(p.base58Prefixes[PubKeyAddress]),
		ScriptHashAddrID:   firstByte(p.base58Prefixes[ScriptAddress]),
		PrivateKeyID:       firstByte(p.base58Prefixes[SecretKey]),
	}
	copy(params.HDPublicKeyID[:], p.base58Prefixes[ExtPublicKey])
	copy(params.HDPrivateKeyID[:], p.base58Prefixes[ExtSecretKey])
	for _, seed := range p.DNSSeeds {
		params.DNSSeeds = append(params.DNSSeeds, chaincfg.DNSSeed{Host: seed.Host})
	}
	return params
}

func firstByte(b []byte) byte {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

// EncodeAddress returns the pay-to-pubkey-hash address of a 20 byte hash.
func (p *ChainParams) EncodeAddress(pubKeyHash []byte) (string, error) {
	if len(p.base58Prefixes[PubKeyAddress]) != 1 {
		return "", ErrBadPrefix
	}
	addr, err := btcutil.NewAddressPubKeyHash(pubKeyHash, p.btcd)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// EncodeScriptAddress returns the pay-to-script-hash address of a 20 byte hash.
func (p *ChainParams) EncodeScriptAddress(scriptHash []byte) (string, error) {
	if len(p.base58Prefixes[ScriptAddress]) != 1 {
		return "", ErrBadPrefix
	}
	addr, err := btcutil.NewAddressScriptHashFromHash(scriptHash, p.btcd)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// DecodeAddress parses an address and checks it belongs to this profile.
func (p *ChainParams) DecodeAddress(addr string) (btcutil.Address, error) {
	decoded, err := btcutil.DecodeAddress(addr, p.btcd)
	if err != nil {
		return nil, err
	}
	if !decoded.IsForNet(p.btcd) {
		return nil, fmt.Errorf("address %s is not for the %s network", addr, p.Name)
	}
	return decoded, nil
}

// CheckProofOfWork reports whether hash is at or below the compact target
// bits and the target does not exceed the profile's PoW limit.
func (p *ChainParams) CheckProofOfWork(hash chainhash.Hash, bits uint32) bool {
	target := blockchain.CompactToBig(bits)
	if target.Sign() <= 0 || target.Cmp(p.PowLimit) > 0 {
		return false
	}
	return blockchain.HashToBig(&hash).Cmp(target) <= 0
}

// registerBtcdNets makes btcutil recognize the prefixes of every profile.
func registerBtcdNets(profiles ...*ChainParams) error {
	for _, p := range profiles {
		if err := chaincfg.Register(p.btcd); err != nil && err != chaincfg.ErrDuplicateNet {
			return err
		}
	}
	return nil
}
