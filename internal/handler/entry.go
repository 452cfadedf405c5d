package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListEntries handles GET /entries.
// ?q= filters and highlights; a missing or blank q lists everything.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	listing, err := s.logbook.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, listingToResponse(listing))
}

// EditEntry handles POST /entries/{id}/edit, loading the entry into the draft.
func (s *Server) EditEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := s.logbook.BeginEdit(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "entry not found")
		return
	}
	writeJSON(w, http.StatusOK, draftToResponse(view))
}

// DeleteEntry handles DELETE /entries/{id}.
// Deleting an unknown id is not an error; the response says whether anything went.
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := s.logbook.Delete(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "entry not found")
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Deleted: res.Deleted, DraftReset: res.DraftReset})
}

// pathID parses the {id} URL parameter, answering 400 itself when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
