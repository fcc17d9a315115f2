package gamehttp

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MJE43/surgery-games/internal/gamestate"
	"github.com/MJE43/surgery-games/internal/session"
)

const maxStateBytes = 1 << 20

// sessionState resolves the caller's session from its cookie, issuing a new
// session when the cookie is missing or malformed. Only writes call it.
func (s *Server) sessionState(w http.ResponseWriter, r *http.Request) *gamestate.Manager {
	id, err := sessionID(r)
	if err != nil {
		id = session.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    id.String(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return gamestate.New(s.sessions.Storage(id))
}

// existingState returns the state manager of a session the registry already
// holds. A caller without one has no state.
func (s *Server) existingState(r *http.Request) (*gamestate.Manager, bool) {
	id, err := sessionID(r)
	if err != nil {
		return nil, false
	}
	st, ok := s.sessions.Lookup(id)
	if !ok {
		return nil, false
	}
	return gamestate.New(st), true
}

func sessionID(r *http.Request) (uuid.UUID, error) {
	c, err := r.Cookie(session.CookieName)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(c.Value)
}

// GET /api/state/{gameID}
func (s *Server) handleLoadState(w http.ResponseWriter, r *http.Request) {
	states, ok := s.existingState(r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	raw, ok, err := states.Load(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		s.errorHandler.HandleStorageError(w, r, "load_state", err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// PUT /api/state/{gameID}
func (s *Server) handleSaveState(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxStateBytes))
	if err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", "state too large or unreadable")
		return
	}
	if !json.Valid(body) {
		s.errorHandler.HandleValidationError(w, r, "body", "invalid JSON")
		return
	}
	states := s.sessionState(w, r)
	if err := states.Save(r.Context(), chi.URLParam(r, "gameID"), json.RawMessage(body)); err != nil {
		s.errorHandler.HandleStorageError(w, r, "save_state", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/state/{gameID}
func (s *Server) handleClearState(w http.ResponseWriter, r *http.Request) {
	states, ok := s.existingState(r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := states.Clear(r.Context(), chi.URLParam(r, "gameID")); err != nil {
		s.errorHandler.HandleStorageError(w, r, "clear_state", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
