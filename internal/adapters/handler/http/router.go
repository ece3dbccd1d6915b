package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(opsHandler *OpsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", opsHandler.GetStats)
		r.Route("/polls", func(r chi.Router) {
			r.Get("/{id}", opsHandler.GetPoll)
		})
	})

	return r
}
