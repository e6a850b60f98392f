package config

import (
	"gopkg.in/urfave/cli.v1"
)

// Flag names shared by the command line and the config file.
const (
	TestNetFlag     = "testnet"
	RegTestFlag     = "regtest"
	ConfFlag        = "conf"
	DataDirFlag     = "datadir"
	RPCPasswordFlag = "rpcpassword"
	LogLevelFlag    = "loglevel"
)

// Flags returns the command line flags backed by Settings.
func Flags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  TestNetFlag,
			Usage: "Use the test network",
		},
		cli.BoolFlag{
			Name:  RegTestFlag,
			Usage: "Use the regression test network",
		},
		cli.StringFlag{
			Name:  ConfFlag,
			Usage: "Config file or directory holding config.yml",
		},
		cli.StringFlag{
			Name:  DataDirFlag,
			Usage: "Base data directory",
			Value: ".",
		},
		cli.StringFlag{
			Name:  RPCPasswordFlag,
			Usage: "Password for JSON-RPC connections",
		},
		cli.StringFlag{
			Name:  LogLevelFlag,
			Usage: "Log level (panic|fatal|error|warn|info|debug|trace)",
			Value: "info",
		},
	}
}

// FlagSource is the part of *cli.Context Settings reads.
type FlagSource interface {
	IsSet(name string) bool
	Bool(name string) bool
	String(name string) string
}

// Settings resolves named settings. A flag given on the command line wins
// over the config file, the config file wins over the flag default.
type Settings struct {
	flags FlagSource
	file  *Config
}

// NewSettings merges flags with an optional config file.
func NewSettings(flags FlagSource, file *Config) *Settings {
	if file == nil {
		file = &Config{}
	}
	return &Settings{flags: flags, file: file}
}

// GetBool returns a boolean setting, false when unknown.
func (s *Settings) GetBool(name string) bool {
	if s.flags != nil && s.flags.IsSet(name) {
		return s.flags.Bool(name)
	}
	switch name {
	case TestNetFlag:
		return s.file.TestNet
	case RegTestFlag:
		return s.file.RegTest
	}
	return false
}

// GetString returns a string setting, empty when unknown.
func (s *Settings) GetString(name string) string {
	if s.flags != nil && s.flags.IsSet(name) {
		return s.flags.String(name)
	}
	var v string
	switch name {
	case DataDirFlag:
		v = s.file.DataDir
	case RPCPasswordFlag:
		v = s.file.RPCPassword
	case LogLevelFlag:
		v = s.file.LogLevel
	}
	if v == "" && s.flags != nil {
		v = s.flags.String(name)
	}
	return v
}
