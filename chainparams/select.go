// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package chainparams

import (
	"errors"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Profiles built at startup height zero. They are never modified after init.
var (
	MainNetParams = NewMainNetParams(0)
	TestNetParams = NewTestNetParams(0)
	RegTestParams = NewRegTestParams(0)
)

var (
	active = atomic.NewInt32(int32(MainNet))

	loadOnce sync.Once
	loadErr  error
)

// ParamsFor returns the profile of a network kind.
func ParamsFor(n Network) (*ChainParams, bool) {
	switch n {
	case MainNet:
		return MainNetParams, true
	case TestNet:
		return TestNetParams, true
	case RegTest:
		return RegTestParams, true
	}
	return nil, false
}

// Params returns the active profile. Main is active until a selection is
// made.
func Params() *ChainParams {
	p, _ := ParamsFor(Network(active.Load()))
	return p
}

// SelectParams makes n the active profile. An unknown kind is a programming
// error and panics.
func SelectParams(n Network) {
	p, ok := ParamsFor(n)
	if !ok {
		panic("chainparams: unknown network " + n.String())
	}
	active.Store(int32(n))
	log.WithField("network", p.Name).Info("selected chain params")
}

// BoolArgs is a source of named boolean settings such as parsed command line
// flags.
type BoolArgs interface {
	GetBool(name string) bool
}

// SelectParamsFromCommandLine selects a profile from the testnet and regtest
// flags. It returns false without changing the selection when both are set.
func SelectParamsFromCommandLine(args BoolArgs) bool {
	regTest := args.GetBool("regtest")
	testNet := args.GetBool("testnet")

	if testNet && regTest {
		log.Debug("testnet and regtest are mutually exclusive")
		return false
	}

	switch {
	case regTest:
		SelectParams(RegTest)
	case testNet:
		SelectParams(TestNet)
	default:
		SelectParams(MainNet)
	}
	return true
}

// Load verifies the genesis block of every profile and registers the
// profiles with btcd. Only the first call does any work.
func Load() error {
	loadOnce.Do(func() {
		loadErr = load(MainNetParams, TestNetParams, RegTestParams)
	})
	return loadErr
}

func load(profiles ...*ChainParams) error {
	for _, p := range profiles {
		if err := VerifyGenesis(p); err != nil {
			return err
		}
		log.WithField("network", p.Name).
			WithField("hash", p.GenesisHash).
			Debug("genesis block verified")
	}
	return registerBtcdNets(profiles...)
}

// MustLoad is Load for process startup. A broken genesis block terminates
// the process.
func MustLoad() {
	mustLoad(Load())
}

func mustLoad(err error) {
	if err == nil {
		return
	}
	fields := logrus.Fields{}
	var ge *GenesisError
	if errors.As(err, &ge) {
		fields["network"] = ge.Network
		fields["want"] = ge.Want
		fields["got"] = ge.Got
		fields["header"] = spew.Sdump(ge.Header)
	}
	log.WithFields(fields).WithError(err).Fatal("failed to load chain params")
}
