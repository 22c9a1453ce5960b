package sheets

import (
	"fmt"
	"strings"

	"dog-profiles/internal/ports/rows"
)

// Records convierte la grilla de valores en registros: la fila 0 es el header.
// Filas cortas se completan con "", celdas sin header se ignoran y,
// ante headers duplicados, gana la última columna.
func Records(values [][]any) []rows.Row {
	if len(values) == 0 {
		return []rows.Row{}
	}

	header := make([]string, len(values[0]))
	for i, h := range values[0] {
		header[i] = headerString(h)
	}

	out := make([]rows.Row, 0, len(values)-1)
	for _, line := range values[1:] {
		rec := make(rows.Row, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			var v any = ""
			if i < len(line) && line[i] != nil {
				v = line[i]
			}
			rec[h] = v
		}
		out = append(out, rec)
	}
	return out
}

func headerString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		if strings.TrimSpace(x) == "" {
			return ""
		}
		return x
	default:
		return fmt.Sprint(x)
	}
}
