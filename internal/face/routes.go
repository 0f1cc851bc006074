package face

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/analyze", h.Analyze)
	r.Post("/chat", h.Chat)
}
