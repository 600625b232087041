package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/api/middleware"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/config"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/geocoding"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/postgres"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/service/auth"
)

// application holds the wired dependency graph for the running server.
type application struct {
	cfg    *config.Config
	db     *sql.DB
	logger *slog.Logger

	authMiddleware *middleware.AuthMiddleware
	authHandler    *api.AuthHandler
	userHandler    *api.UserHandler
	placeHandler   *api.PlaceHandler
}

// newApplication wires stores, services, and handlers from the bottom up.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*application, error) {
	userStore := postgres.NewPostgresUserStore(db, logger)
	placeStore := postgres.NewPostgresPlaceStore(db, logger)

	geocoder := geocoding.NewClient(cfg.Geocoding, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	passwordHasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	passwordVerifier := auth.NewBcryptVerifier()
	authService := auth.NewService(userStore, passwordVerifier, jwtService, logger)

	userService := service.NewUserService(userStore, passwordHasher, db, logger)
	placeService := service.NewPlaceService(placeStore, userStore, geocoder, db, logger)

	return &application{
		cfg:            cfg,
		db:             db,
		logger:         logger,
		authMiddleware: middleware.NewAuthMiddleware(jwtService),
		authHandler:    api.NewAuthHandler(userService, authService, jwtService, logger),
		userHandler:    api.NewUserHandler(userService, logger),
		placeHandler:   api.NewPlaceHandler(placeService, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
