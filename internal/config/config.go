package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/gsxws/internal/gsx"
)

var ErrInvalid = errors.New("config: invalid")

// Config is the client configuration. Zero fields fall back to Default.
type Config struct {
	Environment string
	Region      string
	Language    string
	Timezone    string
	Locale      string
	UserID      string
	SoldTo      string
	Timeout     time.Duration
	// Endpoint replaces the templated endpoint URL when set.
	Endpoint string
	// LocaleTable and CompTIABook point at YAML or JSON reference documents.
	// Empty LocaleTable selects the embedded table.
	LocaleTable string
	CompTIABook string
	// TLS files for endpoints requiring a client certificate.
	TLSCAFile   string
	TLSCertFile string
	TLSKeyFile  string
}

type fileConfig struct {
	Environment string `toml:"environment"`
	Region      string `toml:"region"`
	Language    string `toml:"language"`
	Timezone    string `toml:"timezone"`
	Locale      string `toml:"locale"`
	UserID      string `toml:"user_id"`
	SoldTo      string `toml:"sold_to"`
	Timeout     string `toml:"timeout"`
	Endpoint    string `toml:"endpoint"`
	LocaleTable string `toml:"locale_table"`
	CompTIABook string `toml:"comptia_book"`
	TLSCAFile   string `toml:"tls_ca_file"`
	TLSCertFile string `toml:"tls_cert_file"`
	TLSKeyFile  string `toml:"tls_key_file"`
}

func Default() Config {
	return Config{
		Environment: "pr",
		Region:      "emea",
		Language:    "en",
		Timezone:    "CEST",
		Locale:      gsx.DefaultLocale,
		Timeout:     60 * time.Second,
	}
}

// Load overlays the keys defined in the TOML file at path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load gsxws config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	strs := []struct {
		key string
		src string
		dst *string
	}{
		{"environment", raw.Environment, &cfg.Environment},
		{"region", raw.Region, &cfg.Region},
		{"language", raw.Language, &cfg.Language},
		{"timezone", raw.Timezone, &cfg.Timezone},
		{"locale", raw.Locale, &cfg.Locale},
		{"user_id", raw.UserID, &cfg.UserID},
		{"sold_to", raw.SoldTo, &cfg.SoldTo},
		{"endpoint", raw.Endpoint, &cfg.Endpoint},
		{"locale_table", raw.LocaleTable, &cfg.LocaleTable},
		{"comptia_book", raw.CompTIABook, &cfg.CompTIABook},
		{"tls_ca_file", raw.TLSCAFile, &cfg.TLSCAFile},
		{"tls_cert_file", raw.TLSCertFile, &cfg.TLSCertFile},
		{"tls_key_file", raw.TLSKeyFile, &cfg.TLSKeyFile},
	}
	for _, s := range strs {
		if meta.IsDefined(s.key) {
			*s.dst = strings.TrimSpace(s.src)
		}
	}

	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := gsx.EndpointURL(c.Environment, c.Region); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("%w: locale is required", ErrInvalid)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, c.Timeout)
	}
	if err := c.tls().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
