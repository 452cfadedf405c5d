package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// GetDraft handles GET /draft.
func (s *Server) GetDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, draftToResponse(s.logbook.Draft(r.Context())))
}

// SetDraftField handles PUT /draft/fields/{field}.
// The value is stored verbatim; numbers and dates are only interpreted on submit.
func (s *Server) SetDraftField(w http.ResponseWriter, r *http.Request) {
	field, err := domain.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}

	var body SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, badRequestBody("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, badRequestBody("request body must be a JSON object"))
		return
	}
	if body.Value == nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody("value is required"))
		return
	}

	view, err := s.logbook.SetField(r.Context(), field, *body.Value)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, draftToResponse(view))
}

// ResetDraft handles POST /draft/reset.
func (s *Server) ResetDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, draftToResponse(s.logbook.ResetDraft(r.Context())))
}

// SubmitDraft handles POST /draft/submit.
// A new entry answers 201, an edit committed in place answers 200.
func (s *Server) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	entry, created, err := s.logbook.Submit(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, entryToResponse(entry))
}
