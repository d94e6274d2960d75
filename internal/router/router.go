package router

import (
	"net/http"

	"farmstand/internal/handler"
	"farmstand/internal/middleware"
	"farmstand/internal/session"

	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
// staticDir, when non-empty, is served under /static/images/ for
// locally stored product images.
func New(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	sessions session.Store,
	cookieName string,
	staticDir string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public routes
	mux.HandleFunc("GET /{$}", productHandler.Home)
	mux.HandleFunc("GET /register", authHandler.RegisterPage)
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /logout", authHandler.Logout)
	mux.HandleFunc("GET /products", productHandler.List)

	// Farmer-only routes
	farmerOnly := middleware.RequireFarmer(logger)
	mux.Handle("GET /farmer", farmerOnly(http.HandlerFunc(productHandler.FarmerDashboard)))
	mux.Handle("GET /add-product", farmerOnly(http.HandlerFunc(productHandler.AddProductPage)))
	mux.Handle("POST /add-product", farmerOnly(http.HandlerFunc(productHandler.AddProduct)))

	// Locally stored product images
	if staticDir != "" {
		mux.Handle("GET /static/images/", http.StripPrefix("/static/images/", http.FileServer(http.Dir(staticDir))))
	}

	// Apply middleware in order: Recovery -> Logging -> LoadSession
	var h http.Handler = mux
	h = middleware.LoadSession(sessions, cookieName, logger)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
