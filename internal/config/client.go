package config

import (
	"github.com/danmuck/gsxws/internal/gsx"
	"github.com/danmuck/gsxws/internal/protocol/soap"
	"github.com/danmuck/gsxws/internal/reference"
)

// Credentials pairs the configured account with password.
func (c Config) Credentials(password string) gsx.Credentials {
	return gsx.Credentials{
		UserID:      c.UserID,
		Password:    password,
		SoldTo:      c.SoldTo,
		Language:    c.Language,
		Timezone:    c.Timezone,
		Environment: c.Environment,
		Region:      c.Region,
	}
}

// ClientOptions translates the configuration into gsx client options.
func (c Config) ClientOptions() ([]gsx.Option, error) {
	transport := soap.DefaultConfig()
	transport.Timeout = c.Timeout
	transport.TLS = c.tls()
	opts := []gsx.Option{
		gsx.WithDialer(gsx.SOAPDialer(soap.WithConfig(transport))),
		gsx.WithLocale(c.Locale),
		gsx.WithEndpoint(c.Endpoint),
	}
	if c.LocaleTable != "" {
		locales, err := reference.LoadLocales(c.LocaleTable)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gsx.WithLocales(locales))
	}
	return opts, nil
}

func (c Config) tls() soap.TLSConfig {
	return soap.TLSConfig{
		CAFile:   c.TLSCAFile,
		CertFile: c.TLSCertFile,
		KeyFile:  c.TLSKeyFile,
	}
}

// CodeBook loads the configured CompTIA code book, or returns nil when none
// is configured.
func (c Config) CodeBook() (*reference.CodeBook, error) {
	if c.CompTIABook == "" {
		return nil, nil
	}
	return reference.LoadCodeBook(c.CompTIABook)
}
