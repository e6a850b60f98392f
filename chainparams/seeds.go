package chainparams

import (
	"fmt"
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
	ma "github.com/multiformats/go-multiaddr"
)

const oneWeek = int64(7 * 24 * 60 * 60)

// SeedSpec6 is a compact fixed seed: an IPv6 address, IPv4 in mapped form,
// and a port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// ipv4Seed returns the mapped form of a dotted quad.
func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec6 {
	return SeedSpec6{
		Addr: [16]byte{10: 0xff, 11: 0xff, 12: a, 13: b, 14: c, 15: d},
		Port: port,
	}
}

var (
	mainSeeds = []SeedSpec6{
		ipv4Seed(199, 26, 184, 214, 30031),
	}
	testSeeds []SeedSpec6
)

// ConvertSeed6 turns compact seeds into address records. A node will only
// connect to one or two seed nodes because once it connects it gets a pile
// of addresses with newer timestamps, so seeds are given a random last seen
// time between one and two weeks before now.
func ConvertSeed6(specs []SeedSpec6, now time.Time, rng *rand.Rand) []*wire.NetAddress {
	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])
		lastSeen := now.Unix() - rng.Int63n(oneWeek) - oneWeek
		addrs = append(addrs, &wire.NetAddress{
			Timestamp: time.Unix(lastSeen, 0),
			Services:  wire.SFNodeNetwork,
			IP:        ip,
			Port:      spec.Port,
		})
	}
	return addrs
}

// newSeedRand returns the generator used for seed ages. Seed ages are
// liveness hints, not consensus data.
func newSeedRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// SeedMultiaddr renders a seed address as a tcp multiaddr.
func SeedMultiaddr(addr *wire.NetAddress) (ma.Multiaddr, error) {
	if ip4 := addr.IP.To4(); ip4 != nil {
		return ma.NewMultiaddr(fmt.Sprintf("/ip4/%s/tcp/%d", ip4, addr.Port))
	}
	return ma.NewMultiaddr(fmt.Sprintf("/ip6/%s/tcp/%d", addr.IP, addr.Port))
}
