package handler

import "net/http"

// Reload handles POST /reload, returning the session to a fresh state.
func (s *Server) Reload(w http.ResponseWriter, r *http.Request) {
	if err := s.logbook.Reload(r.Context()); err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
