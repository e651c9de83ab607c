package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/gradientm/gradientm-chat/internal/handler/chat"
	chatservice "github.com/gradientm/gradientm-chat/internal/service/chat"
	"github.com/gradientm/gradientm-chat/internal/service/transcript"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(store *transcript.Store, chatSvc *chatservice.Service, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(SameOriginFrames)

	chathandler.New(store, chatSvc, staticDir).RegisterRoutes(r)

	return r
}

// SameOriginFrames marks every response as embeddable in an iframe on
// the same origin only. The chat widget lives inside the site's iframe.
func SameOriginFrames(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		next.ServeHTTP(w, r)
	})
}
