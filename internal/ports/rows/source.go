package rows

import "context"

// Row es un registro crudo de la planilla: header de columna -> valor escalar (string o número).
// Se trata como inmutable una vez leído.
type Row map[string]any

// Source entrega todas las filas de datos de la planilla, en el orden del upstream.
type Source interface {
	Rows(ctx context.Context) ([]Row, error)
}

// SourceFunc adapta una función a Source (útil en tests y wiring).
type SourceFunc func(ctx context.Context) ([]Row, error)

func (f SourceFunc) Rows(ctx context.Context) ([]Row, error) {
	return f(ctx)
}
