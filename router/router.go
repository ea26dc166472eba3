// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/secret-santa/cliparse"
	"github.com/danielhkuo/secret-santa/handlers"
	"github.com/danielhkuo/secret-santa/middleware"
	"github.com/danielhkuo/secret-santa/round"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	manager := round.New(db, cfg)
	return NewRouterWithManager(manager)
}

// NewRouterWithManager builds the route table around an existing manager,
// so tests can inject one with a seeded random source.
func NewRouterWithManager(manager *round.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	roundHandler := handlers.NewRoundHandler(manager)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Round state and reveals
	mux.HandleFunc("GET /api/state", middleware.WithLogging(roundHandler.GetState))
	mux.HandleFunc("POST /api/draw", middleware.WithLogging(roundHandler.Draw))
	mux.HandleFunc("POST /api/reset", middleware.WithLogging(roundHandler.Reset))

	// Debug
	mux.HandleFunc("GET /api/debug-assignments", middleware.WithLogging(roundHandler.DebugAssignments))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secret-santa API v1"))
	})

	return mux
}
