// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/magic53/go-chainparams/chainparams"
	"github.com/magic53/go-chainparams/config"
	"github.com/magic53/go-chainparams/data"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"
)

var log = logrus.WithField("pkg", "main")

func main() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	shutdownOnSignal(sig)

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.WithError(err).Error("failed")
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "chainparams"
	app.Usage = "Select and inspect the network consensus profile"
	app.Version = "0.1.0"
	app.Writer = out
	app.Flags = config.Flags()
	app.Action = func(c *cli.Context) error {
		p, err := startup(c)
		if err != nil {
			return err
		}
		printParams(out, p)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "seeds",
			Usage: "Print the fixed seeds of the active network as multiaddrs",
			Flags: config.Flags(),
			Action: func(c *cli.Context) error {
				p, err := startup(c)
				if err != nil {
					return err
				}
				for _, addr := range p.FixedSeeds {
					m, err := chainparams.SeedMultiaddr(addr)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s last seen %s\n", m, addr.Timestamp.UTC().Format("2006-01-02 15:04:05"))
				}
				return nil
			},
		},
		{
			Name:  "genesis",
			Usage: "Write the genesis block of the active network as a framed block record",
			Flags: config.Flags(),
			Action: func(c *cli.Context) error {
				p, err := startup(c)
				if err != nil {
					return err
				}
				return data.WriteBlock(out, p.Magic[:], p.GenesisBlock)
			},
		},
		{
			Name:      "blocks",
			Usage:     "Print the hash of every block of the active network found in framed block files",
			ArgsUsage: "<blk0001.dat> ...",
			Flags:     config.Flags(),
			Action: func(c *cli.Context) error {
				p, err := startup(c)
				if err != nil {
					return err
				}
				for _, path := range c.Args() {
					if data.IsShuttingDown() {
						break
					}
					if err := printBlocks(out, p, path); err != nil {
						return cli.NewExitError(err.Error(), 1)
					}
				}
				return nil
			},
		},
	}
	return app
}

// shutdownOnSignal requests a data shutdown once sig delivers, so a running
// block scan stops at its next checkpoint.
func shutdownOnSignal(sig <-chan os.Signal) {
	go func() {
		s, ok := <-sig
		if !ok {
			return
		}
		log.WithField("signal", s).Info("shutting down")
		data.ShutdownNow()
	}()
}

func printBlocks(out io.Writer, p *chainparams.ChainParams, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	count := 0
	_, err = data.NextFrame(bufio.NewReader(f), p.Magic[:], func(payload []byte) bool {
		block, err := data.ReadBlock(bytes.NewReader(payload))
		if err != nil {
			log.WithError(err).WithField("file", path).Warn("skipping unreadable block")
			return true
		}
		fmt.Fprintf(out, "%d %s\n", count, block.BlockHash())
		count++
		return true
	})
	log.WithFields(logrus.Fields{"file": path, "blocks": count}).Debug("scanned block file")
	return err
}

// startup applies the config, selects the network and runs the genesis
// barrier. Nothing reads consensus constants before it returns.
func startup(c *cli.Context) (*chainparams.ChainParams, error) {
	var file *config.Config
	if path := c.String(config.ConfFlag); path != "" {
		var err error
		if file, err = config.Load(path); err != nil {
			return nil, cli.NewExitError("failed to load config: "+err.Error(), 1)
		}
	}
	settings := config.NewSettings(c, file)

	level, err := logrus.ParseLevel(settings.GetString(config.LogLevelFlag))
	if err != nil {
		return nil, cli.NewExitError(err.Error(), 1)
	}
	logrus.SetLevel(level)

	if !chainparams.SelectParamsFromCommandLine(settings) {
		return nil, cli.NewExitError("invalid combination of -regtest and -testnet", 1)
	}
	chainparams.MustLoad()

	p := chainparams.Params()
	if p.RequireRPCPassword && settings.GetString(config.RPCPasswordFlag) == "" {
		log.WithField("network", p.Name).Warn("rpcpassword is not set, RPC will refuse connections")
	}
	log.WithField("datadir", config.NetDataDir(settings.GetString(config.DataDirFlag), p.DataDir)).
		Debug("using data directory")
	return p, nil
}

func printParams(out io.Writer, p *chainparams.ChainParams) {
	field := func(name string, v interface{}) {
		fmt.Fprintf(out, "%-16s %v\n", color.Bold.Sprint(name), v)
	}
	fmt.Fprintln(out, color.Green.Sprintf("%s network", p.Name))
	field("magic", p.Magic)
	field("port", p.DefaultPort)
	field("rpcport", p.RPCPort)
	field("genesis", p.GenesisHash)
	field("merkleroot", p.GenesisBlock.Header.MerkleRoot)
	field("powlimit", fmt.Sprintf("%064x", p.PowLimit))
	field("poslimit", fmt.Sprintf("%064x", p.PosLimit))
	field("spacing", p.TargetSpacingDuration())
	field("timespan", p.TargetTimespanDuration())
	field("lastpow", p.LastPoWBlock)
	field("startpos", p.StartPoSBlock)
	field("datadir", p.DataDir)
	for _, seed := range p.DNSSeeds {
		field("dnsseed", seed)
	}
	for _, t := range []struct {
		name string
		kind chainparams.Base58Type
	}{
		{"pubkey", chainparams.PubKeyAddress},
		{"script", chainparams.ScriptAddress},
		{"secret", chainparams.SecretKey},
		{"extpub", chainparams.ExtPublicKey},
		{"extsecret", chainparams.ExtSecretKey},
	} {
		field(t.name, fmt.Sprintf("%x", p.Base58Prefix(t.kind)))
	}
}
