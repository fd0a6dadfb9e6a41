package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/worddef"
)

// CLI defines the command-line interface structure for Kong. Flags that
// mirror config file keys carry no Kong defaults so an unset flag can be
// told apart from an explicit zero.
type CLI struct {
	Host       string        `help:"Dictionary server host"`
	Port       int           `help:"Dictionary server port"`
	Database   string        `short:"d" help:"Database to search (\"*\" searches all)"`
	Match      bool          `short:"m" help:"List matching headwords instead of definitions"`
	Strategy   string        `short:"s" help:"Match strategy for --match (\".\" is the server default)"`
	Databases  bool          `short:"D" help:"List the server's databases and exit"`
	Strategies bool          `short:"S" help:"List the server's match strategies and exit"`
	Timeout    time.Duration `short:"t" help:"Network timeout for dial and every read or write"`
	Format     string        `short:"f" help:"Output format: launcher, json, or text"`
	Icon       string        `help:"Icon name attached to launcher results"`
	Config     string        `type:"path" env:"WORDDEF_CONFIG" help:"Config file path"`
	Verbose    bool          `short:"v" help:"Enable debug logging on stderr"`
	Words      []string      `arg:"" optional:"" help:"Words to look up"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Config  worddef.Config
	Service worddef.DictionaryService
}

// LookupCmd handles one invocation: a listing, a match, or a definition
// lookup for each word.
type LookupCmd struct {
	Words      []string
	Match      bool
	Databases  bool
	Strategies bool
}

// mergeFlags overlays explicitly set flag values onto the loaded
// configuration. Flags win over environment and file values.
func mergeFlags(cfg worddef.Config, cli *CLI) worddef.Config {
	if cli.Host != "" {
		cfg.Host = cli.Host
	}
	if cli.Port != 0 {
		cfg.Port = cli.Port
	}
	if cli.Database != "" {
		cfg.Database = cli.Database
	}
	if cli.Strategy != "" {
		cfg.Strategy = cli.Strategy
	}
	if cli.Timeout != 0 {
		cfg.Timeout = cli.Timeout
	}
	if cli.Format != "" {
		cfg.Format = cli.Format
	}
	if cli.Icon != "" {
		cfg.Icon = cli.Icon
	}
	return cfg
}
