package rows

import "errors"

// Kind clasifica los errores de lectura de filas para que el caller distinga
// lo fatal al arranque (config) de lo recuperable por request (credentials, fetch).
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindCredentials
	KindFetch
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCredentials:
		return "credentials"
	case KindFetch:
		return "fetch"
	default:
		return "unknown"
	}
}

var (
	ErrConfig      = errors.New("configuration error")
	ErrCredentials = errors.New("credentials error")
	ErrFetch       = errors.New("remote fetch error")
)

// KindOf devuelve la clase de err según el sentinel que envuelve.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrConfig):
		return KindConfig
	case errors.Is(err, ErrCredentials):
		return KindCredentials
	case errors.Is(err, ErrFetch):
		return KindFetch
	default:
		return KindUnknown
	}
}

// IsFatal indica si el error debe impedir que el proceso arranque.
func IsFatal(err error) bool {
	return KindOf(err) == KindConfig
}
