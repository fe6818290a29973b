package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

type Config struct {
	Server ServerConfig `yaml:"server"`
	Graph  GraphConfig  `yaml:"graph"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type GraphConfig struct {
	File string `yaml:"file"`
}

type SearchConfig struct {
	// MaxExpansions caps node expansions per search, 0 means unbounded.
	MaxExpansions int              `yaml:"max-expansions"`
	Coordinates   CoordinateSystem `yaml:"coordinates"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig is used for every key the config file leaves out
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Graph:  GraphConfig{File: "graph.json"},
		Search: SearchConfig{Coordinates: Percent},
		Log:    LogConfig{Level: "info"},
	}
}

// ReadConfig decodes a YAML config file on top of DefaultConfig
func ReadConfig(file string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(file)
	if err != nil {
		return config, errors.Wrap(err, "failed to read config file")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrap(err, "failed to parse config file")
	}
	if err := config.validate(); err != nil {
		return config, errors.Wrapf(err, "invalid config file %s", file)
	}
	return config, nil
}

func (c Config) validate() error {
	if c.Search.MaxExpansions < 0 {
		return errors.New("search.max-expansions must not be negative")
	}
	return nil
}

func (cs *CoordinateSystem) UnmarshalYAML(value *yaml.Node) error {
	typ, err := ParseCoordinateSystem(value.Value)
	if err != nil {
		return err
	}
	*cs = typ
	return nil
}

func (cs CoordinateSystem) MarshalYAML() (any, error) {
	return string(cs), nil
}
