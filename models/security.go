package models

import (
	"crypto/tls"

	"code.cloudfoundry.org/tlsconfig"
)

type TLSCerts struct {
	KeyFile    string `yaml:"key_file" json:"keyFile"`
	CertFile   string `yaml:"cert_file" json:"certFile"`
	CACertFile string `yaml:"ca_file" json:"caCertFile"`
}

func (t *TLSCerts) Enabled() bool {
	return t != nil && t.CertFile != "" && t.KeyFile != ""
}

// CreateServerConfig builds a server TLS configuration, requiring client
// certificates when a CA file is set. It returns nil when TLS is not enabled.
func (t *TLSCerts) CreateServerConfig() (*tls.Config, error) {
	if !t.Enabled() {
		return nil, nil
	}
	build := tlsconfig.Build(tlsconfig.WithInternalServiceDefaults(), tlsconfig.WithIdentityFromFile(t.CertFile, t.KeyFile))
	if t.CACertFile != "" {
		return build.Server(tlsconfig.WithClientAuthenticationFromFile(t.CACertFile))
	}
	return build.Server()
}
