// Package network provides the HTTP client and the catalog search transport.
package network

import (
	"net/http"
	"time"

	"github.com/eztv-cli/eztv/key"
	"github.com/spf13/viper"
)

// NewClient builds the HTTP client used to talk to catalogs from the network.* settings.
func NewClient() *http.Client {
	var transport http.RoundTripper = newTransport()
	if viper.GetBool(key.NetworkTLSFingerprint) {
		transport = newFingerprintTransport()
	}

	return &http.Client{
		Timeout:   time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		Transport: transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
