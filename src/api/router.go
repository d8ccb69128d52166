package api

import (
	"net/http"

	"paymill-mirror/src/config"
	"paymill-mirror/src/handlers"
	"paymill-mirror/src/metrics"
	"paymill-mirror/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.ReadOnlyMiddleware(cfg.ReadOnly))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(cfg.OperatorPasswordHash, cfg.JWTSecret))
		r.Post("/paymill/webhook", handlers.PaymillWebhook(pool, cfg.WebhookToken))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(cfg.JWTSecret)).Group(func(r chi.Router) {
			r.Get("/transactions", handlers.ListTransactions(pool))
			r.Get("/transactions/{transaction_id}", handlers.GetTransaction(pool))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(pool))
		})
	})

	return r
}
