package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/worddef"
	"github.com/fwojciec/worddef/dict"
	wdslog "github.com/fwojciec/worddef/slog"
	wdviper "github.com/fwojciec/worddef/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service overrides the dictionary connection. Set before calling
	// Run() for end-to-end testing without a server.
	Service worddef.DictionaryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("worddef"),
		kong.Description("Look up word definitions on DICT servers for launcher menus"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := wdviper.Load(cli.Config)
	if err != nil {
		return err
	}
	cfg = mergeFlags(cfg, cli)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Listing modes need no words; lookups do.
	if len(cli.Words) == 0 && !cli.Databases && !cli.Strategies {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("at least one word required")
	}

	logger := newLogger(stderr, cli.Verbose)

	service := m.Service
	if service == nil {
		client, err := dict.Dial(ctx, cfg.Address(),
			dict.WithTimeout(cfg.Timeout),
			dict.WithRate(cfg.Rate),
			dict.WithLogger(logger),
		)
		if err != nil {
			return writeError(stdout, cfg, err)
		}
		service = client
	}
	service = wdslog.NewLoggingService(service, logger)
	defer service.Close()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Config:  cfg,
		Service: service,
	}

	cmd := &LookupCmd{
		Words:      cli.Words,
		Match:      cli.Match,
		Databases:  cli.Databases,
		Strategies: cli.Strategies,
	}
	return cmd.Run(deps)
}
