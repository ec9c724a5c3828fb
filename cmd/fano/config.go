package main

import (
	"bufio"
	"fmt"
	"os"
	"reflect"

	"github.com/mattn/go-isatty"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

// Config holds the tool's settings. Values resolve in three layers:
// defaults, then the --config TOML file, then explicit command line flags.
type Config struct {
	Format    string // code table output format: table, tsv or json
	Stats     bool   // append entropy and code length statistics
	CodesFile string // codeword table file for encode and decode
}

// tomlSettings ensures TOML keys match the Config field names exactly and
// that unknown keys in a config file fail loudly instead of being dropped.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// defaultConfig picks the human table format on a terminal and the
// machine-friendly TSV form when stdout is piped elsewhere.
func defaultConfig() Config {
	format := "table"
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		format = "tsv"
	}
	return Config{Format: format}
}

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg); err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	return nil
}

func loadConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(formatFlag.Name) {
		cfg.Format = ctx.String(formatFlag.Name)
	}
	if ctx.IsSet(statsFlag.Name) {
		cfg.Stats = ctx.Bool(statsFlag.Name)
	}
	if ctx.IsSet(codesFlag.Name) {
		cfg.CodesFile = ctx.String(codesFlag.Name)
	}
	switch cfg.Format {
	case "table", "tsv", "json":
	default:
		return cfg, fmt.Errorf("unknown format %q, want table, tsv or json", cfg.Format)
	}
	return cfg, nil
}
