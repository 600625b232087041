package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api/middleware"
)

// setupRouter builds the route table. Reads are public; creating,
// updating, and deleting places require a valid session token.
func (app *application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/signup", app.authHandler.Signup)
		r.Post("/users/login", app.authHandler.Login)
		r.Get("/users", app.userHandler.ListUsers)
		r.Get("/users/{id}", app.userHandler.GetUser)
		r.Get("/users/{id}/places", app.placeHandler.ListPlacesByUser)
		r.Get("/places/{id}", app.placeHandler.GetPlace)

		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)

			r.Post("/places", app.placeHandler.CreatePlace)
			r.Patch("/places/{id}", app.placeHandler.UpdatePlace)
			r.Delete("/places/{id}", app.placeHandler.DeletePlace)
		})
	})

	return r
}
