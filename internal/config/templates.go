package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes an example configuration to path.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(Template), 0o600)
}

const Template = `# gsxws client configuration
environment = "ut"
region = "emea"
language = "en"
timezone = "CEST"
locale = "en_US"
user_id = "tech@example.com"
sold_to = "0000123456"
timeout = "30s"
# endpoint = "https://gsxwsut.apple.com/wsdl/emeaAsp/gsx-emeaAsp.wsdl"
# locale_table = "locales.yaml"
# comptia_book = "comptia.yaml"
# tls_ca_file = "ca.pem"
# tls_cert_file = "client.pem"
# tls_key_file = "client.key"
`
