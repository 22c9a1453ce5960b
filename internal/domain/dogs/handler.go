package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"dog-profiles/internal/middleware"
	"dog-profiles/internal/platform/logger"
	"dog-profiles/internal/ports/rows"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"module": "dogs"})

	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc, log))
		dr.Get("/{dogID}", getDogHandler(svc, log))
	})
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// listDogsHandler godoc
// @Summary      Lista perfiles de perros
// @Description  Filtros opcionales por substring (case-insensitive) sobre el nombre del perro y del dueño.
// @Tags         dogs
// @Produce      json
// @Param        dog_name    query  string  false  "substring del nombre del perro"
// @Param        owner_name  query  string  false  "substring del nombre del dueño"
// @Success      200  {array}   Profile
// @Failure      500  {object}  errorResponse
// @Router       /dogs [get]
func listDogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := Filter{
			DogName:   q.Get("dog_name"),
			OwnerName: q.Get("owner_name"),
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			writeReadError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// getDogHandler godoc
// @Summary      Perfil de un perro
// @Tags         dogs
// @Produce      json
// @Param        dogID  path  string  true  "dog_id (columna dog_id o posición 1-based de la fila)"
// @Success      200  {object}  Profile
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /dogs/{dogID} [get]
func getDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dogID := chi.URLParam(r, "dogID")
		// chi matchea sobre RawPath cuando existe; sólo en ese caso el param llega escapado.
		if r.URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(dogID); err == nil {
				dogID = unescaped
			}
		}

		p, err := svc.GetByID(r.Context(), dogID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Dog not found"})
				return
			}
			writeReadError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

// writeReadError: cualquier falla leyendo la planilla es un 500 con el detalle de la causa.
func writeReadError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	log.Error("failed to read sheet", map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"kind":       rows.KindOf(err).String(),
		"error":      err,
	})

	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Detail: "Failed to read sheet: " + strings.TrimSpace(err.Error()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
