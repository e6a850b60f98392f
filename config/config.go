// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.
package config

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// ErrNotFound is returned when no config file exists at the path.
var ErrNotFound = errors.New("config file not found")

// Config describes the default configuration file format.
type Config struct {
	TestNet     bool   `yaml:"testnet"`
	RegTest     bool   `yaml:"regtest"`
	DataDir     string `yaml:"datadir"`
	RPCPassword string `yaml:"rpcpassword"`
	LogLevel    string `yaml:"loglevel"`
}

// Parse decodes a yaml config.
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the config file at path. A directory is searched for config.yml
// then config.yaml.
func Load(path string) (*Config, error) {
	if base := filepath.Base(path); base != "config.yml" && base != "config.yaml" {
		found := ""
		for _, name := range []string{"config.yml", "config.yaml"} {
			candidate := filepath.Join(path, name)
			if ok, err := FileExists(candidate); ok && err == nil {
				found = candidate
				break
			}
		}
		if found == "" {
			return nil, ErrNotFound
		}
		path = found
	} else if ok, err := FileExists(path); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrNotFound
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		log.WithField("path", path).WithError(err).Error("failed to read config file")
		return nil, err
	}
	cfg, err := Parse(b)
	if err != nil {
		log.WithField("path", path).WithError(err).Error("failed to read config file, bad format")
		return nil, err
	}
	log.WithField("path", path).Debug("loaded config file")
	return cfg, nil
}

// FileExists returns whether the given file or directory exists.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// NetDataDir appends the network data directory tag to base. Main has an
// empty tag and uses base as is.
func NetDataDir(base, tag string) string {
	if tag == "" {
		return base
	}
	return filepath.Join(base, tag)
}
