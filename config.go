package worddef

import (
	"net"
	"strconv"
	"time"
)

// Default connection settings. The public dict.org server is the
// conventional fallback when no server is configured.
const (
	DefaultHost     = "dict.org"
	DefaultPort     = 2628
	DefaultDatabase = "*"
	DefaultStrategy = "."
	DefaultTimeout  = 10 * time.Second
	DefaultRate     = 8.0
	DefaultIcon     = "accessories-dictionary"
)

// Output formats.
const (
	FormatLauncher = "launcher"
	FormatJSON     = "json"
	FormatText     = "text"
)

// Config holds the resolved settings for a lookup run. Values are merged
// from the config file, environment, and command-line flags before use.
type Config struct {
	Host     string        `json:"host"`
	Port     int           `json:"port"`
	Database string        `json:"database"`
	Strategy string        `json:"strategy"`
	Timeout  time.Duration `json:"timeout"`
	Format   string        `json:"format"`
	Icon     string        `json:"icon"`
	Rate     float64       `json:"rate"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Database: DefaultDatabase,
		Strategy: DefaultStrategy,
		Timeout:  DefaultTimeout,
		Format:   FormatLauncher,
		Icon:     DefaultIcon,
		Rate:     DefaultRate,
	}
}

// Address returns the host:port dial address for the configured server.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate returns an error if the configuration cannot be used for a
// lookup.
func (c Config) Validate() error {
	if c.Host == "" {
		return Errorf(EINVALID, "server host required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return Errorf(EINVALID, "server port must be between 1 and 65535")
	}
	if c.Database == "" {
		return Errorf(EINVALID, "database required")
	}
	if c.Strategy == "" {
		return Errorf(EINVALID, "match strategy required")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	switch c.Format {
	case FormatLauncher, FormatJSON, FormatText:
	default:
		return Errorf(EINVALID, "unknown output format %q", c.Format)
	}
	if c.Rate <= 0 {
		return Errorf(EINVALID, "command rate must be positive")
	}
	return nil
}
