// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/secret-santa/models"
	"github.com/danielhkuo/secret-santa/round"
	"github.com/danielhkuo/secret-santa/testutil"
)

func newTestHandler(t *testing.T) *RoundHandler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	cfg := testutil.GetTestConfig()
	manager := round.NewWithRand(db, cfg, rand.New(rand.NewPCG(1, 2)))
	return NewRoundHandler(manager)
}

func TestGetState(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.MakeRequest("GET", "/api/state", nil, nil)
	w := httptest.NewRecorder()
	handler.GetState(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var state models.StateResponse
	testutil.AssertJSON(t, w, &state)

	if len(state.Members) != 4 {
		t.Errorf("Expected 4 members, got %v", state.Members)
	}
	if len(state.AvailableMembers) != 4 {
		t.Errorf("Expected everyone available, got %v", state.AvailableMembers)
	}
	if len(state.RevealedMembers) != 0 {
		t.Errorf("Expected nobody revealed, got %v", state.RevealedMembers)
	}
}

func TestDraw(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		rawBody        string
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.DrawResponse)
	}{
		{
			name:           "valid member",
			body:           models.DrawRequest{Name: "Alice"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.DrawResponse) {
				if resp.Name != "Alice" {
					t.Errorf("Expected name Alice, got %s", resp.Name)
				}
				if resp.Giftee == "" || resp.Giftee == "Alice" {
					t.Errorf("Invalid giftee %q", resp.Giftee)
				}
				if resp.AlreadyRevealed {
					t.Error("First draw should not report alreadyRevealed")
				}
			},
		},
		{
			name:           "unknown member",
			body:           models.DrawRequest{Name: "Mallory"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           models.DrawRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			rawBody:        "{not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest("POST", "/api/draw", strings.NewReader(tt.rawBody))
			} else {
				req = testutil.MakeRequest("POST", "/api/draw", tt.body, nil)
			}

			w := httptest.NewRecorder()
			handler.Draw(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil {
				var resp models.DrawResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestDrawIdempotent(t *testing.T) {
	handler := newTestHandler(t)

	draw := func() models.DrawResponse {
		req := testutil.MakeRequest("POST", "/api/draw", models.DrawRequest{Name: "Bob"}, nil)
		w := httptest.NewRecorder()
		handler.Draw(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.DrawResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	first := draw()
	second := draw()

	if second.Giftee != first.Giftee {
		t.Errorf("Giftee changed on repeat draw: %s vs %s", first.Giftee, second.Giftee)
	}
	if first.AlreadyRevealed {
		t.Error("First draw reported alreadyRevealed")
	}
	if !second.AlreadyRevealed {
		t.Error("Second draw did not report alreadyRevealed")
	}
}

func TestReset(t *testing.T) {
	handler := newTestHandler(t)

	// Reveal someone first so the reset has something to discard
	req := testutil.MakeRequest("POST", "/api/draw", models.DrawRequest{Name: "Carol"}, nil)
	w := httptest.NewRecorder()
	handler.Draw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("POST", "/api/reset", nil, nil)
	w = httptest.NewRecorder()
	handler.Reset(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResetResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.OK {
		t.Error("Expected ok: true")
	}

	req = testutil.MakeRequest("GET", "/api/state", nil, nil)
	w = httptest.NewRecorder()
	handler.GetState(w, req)

	var state models.StateResponse
	testutil.AssertJSON(t, w, &state)
	if len(state.AvailableMembers) != 4 {
		t.Errorf("Expected full availability after reset, got %v", state.AvailableMembers)
	}
	if len(state.RevealedMembers) != 0 {
		t.Errorf("Expected no reveals after reset, got %v", state.RevealedMembers)
	}
}

func TestDebugAssignments(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.MakeRequest("GET", "/api/debug-assignments", nil, nil)
	w := httptest.NewRecorder()
	handler.DebugAssignments(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var assignments map[string]string
	testutil.AssertJSON(t, w, &assignments)

	if len(assignments) != 4 {
		t.Errorf("Expected 4 assignments, got %v", assignments)
	}
	for giver, giftee := range assignments {
		if giver == giftee {
			t.Errorf("Self-assignment in dump: %s", giver)
		}
	}
}

func TestErrorEnvelope(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.MakeRequest("POST", "/api/draw", models.DrawRequest{Name: "Mallory"}, nil)
	w := httptest.NewRecorder()
	handler.Draw(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != http.StatusText(http.StatusBadRequest) {
		t.Errorf("Expected standard error field, got %q", resp.Error)
	}
	if !bytes.Contains([]byte(resp.Message), []byte("Mallory")) {
		t.Errorf("Expected message to name the rejected member, got %q", resp.Message)
	}
}
