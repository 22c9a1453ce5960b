package router

import (
	"net/http"

	_ "dog-profiles/docs" // registra el doc OpenAPI
	"dog-profiles/internal/domain/dogs"
	"dog-profiles/internal/middleware"
	"dog-profiles/internal/platform/logger"
	"dog-profiles/internal/ports/rows"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Fuente de filas (normalmente el cache delante de Sheets). Requerida.
	Source rows.Source

	Logger logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	dogsSvc := dogs.NewService(opts.Source)
	dogs.RegisterRoutes(r, dogsSvc, log)

	return r
}
