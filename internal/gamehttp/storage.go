package gamehttp

import "net/http"

// KeysResponse lists the keys of the persistent area.
type KeysResponse struct {
	Keys  []string `json:"keys"`
	Count int      `json:"count"`
}

// GET /api/storage/keys
func (s *Server) handleListKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := s.persistent.Keys(r.Context())
	if err != nil {
		s.errorHandler.HandleStorageError(w, r, "list_keys", err)
		return
	}
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, http.StatusOK, KeysResponse{Keys: keys, Count: len(keys)})
}
