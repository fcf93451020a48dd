package soap

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrTLSCertFileRequired = errors.New("soap: tls cert file required")
	ErrTLSKeyFileRequired  = errors.New("soap: tls key file required")
)

// TLSConfig selects the CA bundle and client certificate presented to the
// endpoint. A zero TLSConfig uses the system roots and no client certificate.
type TLSConfig struct {
	CAFile     string
	CertFile   string
	KeyFile    string
	ServerName string
}

func (c TLSConfig) IsZero() bool {
	return c == TLSConfig{}
}

// Validate requires the certificate and key to be configured together.
func (c TLSConfig) Validate() error {
	cert := strings.TrimSpace(c.CertFile)
	key := strings.TrimSpace(c.KeyFile)
	if cert != "" && key == "" {
		return ErrTLSKeyFileRequired
	}
	if key != "" && cert == "" {
		return ErrTLSCertFileRequired
	}
	return nil
}

func (c TLSConfig) ClientConfig() (*tls.Config, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: strings.TrimSpace(c.ServerName),
	}
	if caPath := strings.TrimSpace(c.CAFile); caPath != "" {
		caPEM, err := os.ReadFile(caPath)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if ok := pool.AppendCertsFromPEM(caPEM); !ok {
			return nil, fmt.Errorf("soap: parse tls ca bundle: %s", caPath)
		}
		cfg.RootCAs = pool
	}
	if strings.TrimSpace(c.CertFile) != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, err
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return cfg, nil
}
