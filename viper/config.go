// Package viper loads worddef configuration from a config file and
// WORDDEF_* environment variables.
package viper

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/worddef"
	"github.com/spf13/viper"
)

// Load resolves configuration from defaults, the config file, and the
// environment, lowest to highest precedence. An empty path consults the
// default location (worddef/config.yaml under the user config
// directory), which may be absent; a path given explicitly must exist.
func Load(path string) (worddef.Config, error) {
	def := worddef.DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("WORDDEF")
	v.AutomaticEnv()
	v.SetDefault("host", def.Host)
	v.SetDefault("port", def.Port)
	v.SetDefault("database", def.Database)
	v.SetDefault("strategy", def.Strategy)
	v.SetDefault("timeout", def.Timeout)
	v.SetDefault("format", def.Format)
	v.SetDefault("icon", def.Icon)
	v.SetDefault("rate", def.Rate)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return worddef.Config{}, worddef.Errorf(worddef.EINVALID, "read config %s: %v", path, err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "worddef"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return worddef.Config{}, worddef.Errorf(worddef.EINVALID, "read config: %v", err)
			}
		}
	}

	return worddef.Config{
		Host:     v.GetString("host"),
		Port:     v.GetInt("port"),
		Database: v.GetString("database"),
		Strategy: v.GetString("strategy"),
		Timeout:  v.GetDuration("timeout"),
		Format:   v.GetString("format"),
		Icon:     v.GetString("icon"),
		Rate:     v.GetFloat64("rate"),
	}, nil
}
