package handler

import (
	"net/http"
	"strconv"

	"github.com/pkordes/caravan-log/backend/spec"
)

// GetOpenAPI handles GET /openapi.yaml, serving the embedded API description.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Content-Length", strconv.Itoa(len(spec.OpenAPI)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
