package gamehttp

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MJE43/surgery-games/internal/sound"
)

// SoundStatus is the body of the sound endpoints.
type SoundStatus struct {
	Enabled     bool `json:"enabled"`
	Initialized bool `json:"initialized"`
}

func (s *Server) soundStatus() SoundStatus {
	return SoundStatus{Enabled: s.sound.Enabled(), Initialized: s.sound.Initialized()}
}

// GET /api/sound
func (s *Server) handleSoundStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.soundStatus())
}

// POST /api/sound/toggle
func (s *Server) handleSoundToggle(w http.ResponseWriter, r *http.Request) {
	s.sound.Toggle()
	writeJSON(w, http.StatusOK, s.soundStatus())
}

// POST /api/sound/play/{effect}
func (s *Server) handleSoundPlay(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "effect")
	if _, ok := sound.LookupEffect(name); !ok {
		s.errorHandler.HandleNotFound(w, r, "effect", name)
		return
	}
	if err := s.sound.PlayEffect(name); err != nil {
		apiErr := NewError(ErrTypeSound, "Playback failed").
			WithContext("effect", name).
			WithCause(err).
			Build()
		s.errorHandler.HandleError(w, r, apiErr, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusAccepted, s.soundStatus())
}

// GET /api/sfx/{effect}.wav
func (s *Server) handleSFX(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "effect")
	effect, ok := sound.LookupEffect(name)
	if !ok {
		s.errorHandler.HandleNotFound(w, r, "effect", name)
		return
	}
	if !s.sound.Enabled() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := sound.EncodeWAV(&buf, sound.Mix(effect, s.sampleRate), s.sampleRate); err != nil {
		s.errorHandler.HandleError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
