// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/secret-santa/middleware"
	"github.com/danielhkuo/secret-santa/models"
	"github.com/danielhkuo/secret-santa/round"
)

type RoundHandler struct {
	manager *round.Manager
}

func NewRoundHandler(manager *round.Manager) *RoundHandler {
	return &RoundHandler{manager: manager}
}

// GetState handles GET /api/state
func (h *RoundHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.manager.State()
	if err != nil {
		slog.Error("failed to load round state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load state")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, state)
}

// Draw handles POST /api/draw
func (h *RoundHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req models.DrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	result, err := h.manager.Reveal(req.Name)
	if errors.Is(err, round.ErrUnknownMember) || errors.Is(err, round.ErrNotAssigned) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to reveal giftee", "name", req.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to draw")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// Reset handles POST /api/reset
func (h *RoundHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if _, err := h.manager.Reset(); err != nil {
		slog.Error("failed to reset round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset round")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{OK: true})
}

// DebugAssignments handles GET /api/debug-assignments
//
// Dumps the full giver→giftee mapping. The assignment is stored in cleartext
// and this endpoint is unauthenticated, which is fine for the trust model of
// a group of friends but means it spoils the game for anyone who calls it.
func (h *RoundHandler) DebugAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.manager.Assignments()
	if err != nil {
		slog.Error("failed to load assignments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load assignments")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, assignments)
}
