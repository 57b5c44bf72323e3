package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handlers interface {
	SendInvitation(w http.ResponseWriter, r *http.Request)
	CleanupOrders(w http.ResponseWriter, r *http.Request)
	DeleteAllOrders(w http.ResponseWriter, r *http.Request)
	PaymentWebhook(w http.ResponseWriter, r *http.Request)
	PaymentSuccess(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// InitRoutes регистрирует маршруты. authMiddleware кладёт идентификатор вызывающего в контекст.
func InitRoutes(r *chi.Mux, h Handlers, authMiddleware func(http.Handler) http.Handler) *chi.Mux {
	r.Get("/ping", h.Ping)
	r.Get("/payment-success", h.PaymentSuccess)

	// метод проверяет сам обработчик
	r.HandleFunc("/midtrans/webhook", h.PaymentWebhook)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/invitations", h.SendInvitation)
		r.Post("/orders/cleanup", h.CleanupOrders)
		r.Post("/orders/delete-all", h.DeleteAllOrders)
	})

	return r
}
