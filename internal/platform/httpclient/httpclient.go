package httpclient

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultTimeout = 10 * time.Second
)

// New crea un *http.Client con timeout razonable.
func New(timeout time.Duration) *http.Client {
	return NewWithTransport(timeout, nil)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}
}

// WithTokenSource devuelve un client que agrega "Authorization: Bearer <token>"
// sobre el transport de base, conservando su timeout.
func WithTokenSource(base *http.Client, ts oauth2.TokenSource) *http.Client {
	if base == nil {
		base = New(DefaultTimeout)
	}
	if ts == nil {
		return base
	}

	tr := base.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}

	return &http.Client{
		Timeout: base.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.ReuseTokenSource(nil, ts),
			Base:   tr,
		},
	}
}
