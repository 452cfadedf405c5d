package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkordes/caravan-log/backend/internal/report"
	"github.com/pkordes/caravan-log/backend/internal/search"
)

// reportTitle heads every printed report.
const reportTitle = "Caravan Weight Log"

// GetExport handles GET /export, the print command.
// It renders the rows currently displayed (filtered by ?q= when present) as
// ?format=pdf (default), csv or xlsx, served as an attachment.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		body := badRequestBody(err.Error())
		field := "format"
		body.Error.Field = &field
		writeJSON(w, http.StatusBadRequest, body)
		return
	}

	rawTerm := r.URL.Query().Get("q")
	rows, err := s.logbook.Export(r.Context(), rawTerm)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	meta := report.Meta{
		Title:     reportTitle,
		Generated: s.now(),
		Term:      search.Normalize(rawTerm),
	}

	// Render fully before writing so a failure can still become a 500.
	var buf bytes.Buffer
	if err := report.Write(&buf, format, rows, meta); err != nil {
		s.writeServiceError(w, r, fmt.Errorf("handler.Server.GetExport: %w", err), "")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meta.Filename(format)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
