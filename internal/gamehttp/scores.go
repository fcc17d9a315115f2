package gamehttp

import (
	"encoding/json"
	"image/png"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/MJE43/surgery-games/internal/canvas"
	"github.com/MJE43/surgery-games/internal/gameutil"
)

const maxScoreBytes = 4 << 10

// ScoreResponse is the body of GET /api/scores/{gameID}.
type ScoreResponse struct {
	GameID          string `json:"gameId"`
	Score           int    `json:"score"`
	Formatted       string `json:"formatted"`
	FormattedLocale string `json:"formattedLocale"`
}

// SaveScoreRequest is the body of POST /api/scores/{gameID}.
type SaveScoreRequest struct {
	Score *int `json:"score"`
}

// SaveScoreResponse reports whether the submitted score became the record.
type SaveScoreResponse struct {
	GameID    string `json:"gameId"`
	Score     int    `json:"score"`
	HighScore int    `json:"highScore"`
	NewRecord bool   `json:"newRecord"`
}

// GET /api/scores/{gameID}
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	score, err := s.scores.Get(r.Context(), gameID)
	if err != nil {
		s.errorHandler.HandleStorageError(w, r, "get_score", err)
		return
	}
	writeJSON(w, http.StatusOK, ScoreResponse{
		GameID:          gameID,
		Score:           score,
		Formatted:       gameutil.FormatScore(score),
		FormattedLocale: gameutil.FormatScoreLocale(requestLanguage(r), score),
	})
}

// POST /api/scores/{gameID}
func (s *Server) handleSaveScore(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var req SaveScoreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScoreBytes)).Decode(&req); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", "invalid JSON")
		return
	}
	if req.Score == nil {
		s.errorHandler.HandleValidationError(w, r, "score", "score is required")
		return
	}

	newRecord, err := s.scores.Save(r.Context(), gameID, *req.Score)
	if err != nil {
		s.errorHandler.HandleStorageError(w, r, "save_score", err)
		return
	}
	best, err := s.scores.Get(r.Context(), gameID)
	if err != nil {
		s.errorHandler.HandleStorageError(w, r, "get_score", err)
		return
	}
	if newRecord {
		s.logger.Printf("high_score game=%s score=%d", gameID, *req.Score)
	}
	writeJSON(w, http.StatusOK, SaveScoreResponse{
		GameID:    gameID,
		Score:     *req.Score,
		HighScore: best,
		NewRecord: newRecord,
	})
}

// DELETE /api/scores/{gameID}
func (s *Server) handleResetScore(w http.ResponseWriter, r *http.Request) {
	if err := s.scores.Reset(r.Context(), chi.URLParam(r, "gameID")); err != nil {
		s.errorHandler.HandleStorageError(w, r, "reset_score", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/scores
func (s *Server) handleResetAllScores(w http.ResponseWriter, r *http.Request) {
	if err := s.scores.ResetAll(r.Context()); err != nil {
		s.errorHandler.HandleStorageError(w, r, "reset_all_scores", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/scores/{gameID}/badge.png
func (s *Server) handleScoreBadge(w http.ResponseWriter, r *http.Request) {
	score, err := s.scores.Get(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		s.errorHandler.HandleStorageError(w, r, "get_score", err)
		return
	}
	img := canvas.ScoreBadge("HIGH SCORE", gameutil.FormatScore(score))
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, img); err != nil {
		s.logger.Printf("badge_encode_failed err=%v", err)
	}
}

// requestLanguage picks the preferred Accept-Language tag, defaulting to English.
func requestLanguage(r *http.Request) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return language.English
	}
	return tags[0]
}
