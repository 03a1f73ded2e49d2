package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mpin_check/pkg/httpx/reply"
	"mpin_check/pkg/logx"
	"mpin_check/pkg/middlewarex"
)

// NewRouter собирает chi-роутер с middleware и всеми маршрутами сервера.
func NewRouter(
	s Server,
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(sensitiveDataMasker, logFieldMaxLen),
		middlewarex.ResponseLogging(sensitiveDataMasker, logFieldMaxLen),
		middlewarex.Recovery,
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/pin", func(r chi.Router) {
			r.Post("/check", handler(s.postV1PinCheck))
			r.Post("/selftest", handler(s.postV1PinSelfTest))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
