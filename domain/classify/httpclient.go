package classify

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds the client used by the HTTP-based providers.
//
// http.DefaultClient has no timeout, so every provider goes through this
// transport with explicit dial/TLS limits and an overall request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
