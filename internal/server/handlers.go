package server

import (
	"encoding/json"
	"io/fs"
	"net/http"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"service": "compound-fixtures",
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleFixture serves <name>.json, failing the first FailFirst requests
func (s *Server) handleFixture(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.injectFailure(name) {
			s.log.Debug().Str("route", name).Msg("Injected failure")
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "injected failure"})
			return
		}

		data, err := fs.ReadFile(s.fixtures, name+".json")
		if err != nil {
			s.log.Error().Err(err).Str("route", name).Msg("Failed to read fixture")
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "fixture unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			s.log.Error().Err(err).Str("route", name).Msg("Failed to write fixture")
		}
	}
}

// injectFailure counts the request and reports whether it falls within FailFirst
func (s *Server) injectFailure(route string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.served[route]++
	return s.served[route] <= s.failFirst
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
