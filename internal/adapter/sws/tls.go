package sws

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"

	"github.com/heartmarshall/swsgraph/internal/config"
)

// newTransport builds an HTTP transport presenting the configured client
// certificate. SWS authenticates applications by certificate.
func newTransport(cfg config.SWSConfig) (*http.Transport, error) {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = max(cfg.MaxConcurrency, 2)

	if cfg.CertFile == "" && cfg.CAFile == "" {
		return t, nil
	}

	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if cfg.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load client certificate: %w", err)
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}

	if cfg.CAFile != "" {
		pem, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read ca file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("ca file %s: no certificates found", cfg.CAFile)
		}
		tlsCfg.RootCAs = pool
	}

	t.TLSClientConfig = tlsCfg
	return t, nil
}
