// File: internal/infra/web/handlers.go
package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"happybot/internal/domain/ports/repository"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type createSessionRequest struct {
	ClientID string `json:"client_id"`
}

type createSessionResponse struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // body is optional

	id, msgs := s.hub.CreateSession(r.Context(), req.ClientID)
	writeJSON(w, http.StatusCreated, createSessionResponse{SessionID: id, Messages: msgs})
}

type postMessageRequest struct {
	Text string `json:"text"`
}

type postMessageResponse struct {
	Accepted bool      `json:"accepted"`
	Messages []Message `json:"messages"`
}

func (s *Server) postMessage(w http.ResponseWriter, r *http.Request) {
	ws, err := s.hub.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	ws.touch()

	accepted := ws.facade.SubmitText(r.Context(), req.Text)
	writeJSON(w, http.StatusOK, postMessageResponse{Accepted: accepted, Messages: ws.outbox.Drain()})
}

func (s *Server) pollMessages(w http.ResponseWriter, r *http.Request) {
	ws, err := s.hub.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	ws.touch()
	writeJSON(w, http.StatusOK, map[string]any{"messages": ws.outbox.Drain()})
}

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	ws, err := s.hub.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	writeJSON(w, http.StatusOK, ws.facade.GetSettings(r.Context()))
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	ws, err := s.hub.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	var req repository.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := ws.facade.UpdateSettings(r.Context(), req); err != nil {
		// Settings store trouble is never fatal for the widget; the engine
		// keeps the new values in memory.
		s.log.Warn().Err(err).Msg("settings update not persisted")
	}
	writeJSON(w, http.StatusOK, ws.facade.GetSettings(r.Context()))
}

func (s *Server) getContext(w http.ResponseWriter, r *http.Request) {
	ws, err := s.hub.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	writeJSON(w, http.StatusOK, ws.facade.GetContext())
}

func (s *Server) forceGame(w http.ResponseWriter, r *http.Request) {
	ws, err := s.hub.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	ws.facade.StartRandomGame(r.Context())
	writeJSON(w, http.StatusOK, postMessageResponse{Accepted: true, Messages: ws.outbox.Drain()})
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

func (s *Server) adminLogin(w http.ResponseWriter, r *http.Request) {
	if s.auth == nil || s.adminPassword == "" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != s.adminPassword {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	token, err := s.auth.Mint(w)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "mint token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
