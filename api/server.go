// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine invocation and
// output serialization. It never performs sizing logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"valve-sizing/core/engine"
	"valve-sizing/core/types"
	"valve-sizing/core/valvedata"
	"valve-sizing/internal/errors"
)

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server
func NewServer(version string) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /size", s.handleSize)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /catalog/styles", s.handleStyles)
	s.mux.HandleFunc("GET /catalog/rated-cv", s.handleRatedCv)
}

// handleSize handles POST /size
func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	report, err := engine.Run(req.Case)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	resp := &SizeResponse{
		RequestID: generateRequestID(),
		Timestamp: time.Now().UTC(),
		Report:    report,
		Metadata: &ResponseMetadata{
			InputHash:     computeInputHash(&req),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}

	if req.IncludeCurve {
		points, travel, onCurve := engine.CurveInputs(report)
		resp.Curve = points
		if onCurve {
			resp.OperatingTravel = &travel
		}
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "valve-sizing",
		"api_version": "v1",
	}, http.StatusOK)
}

// handleStyles handles GET /catalog/styles?type=
func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	valveType := types.ValveType(r.URL.Query().Get("type"))
	s.writeJSON(w, StylesResponse{
		ValveType: valveType,
		Styles:    valvedata.Styles(valveType),
	}, http.StatusOK)
}

// handleRatedCv handles GET /catalog/rated-cv?size=
func (s *Server) handleRatedCv(w http.ResponseWriter, r *http.Request) {
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil {
		s.writeError(w, "INVALID_SIZE", "size must be an integer number of inches", http.StatusBadRequest)
		return
	}
	s.writeJSON(w, RatedCvResponse{
		NominalSize: size,
		RatedCv:     valvedata.RatedCv(size),
	}, http.StatusOK)
}

// writeEngineError maps typed engine errors onto HTTP statuses:
// validation problems are the caller's to correct, calculation and
// domain errors are unprocessable edge conditions.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsType(err, errors.TypeValidation), errors.IsType(err, errors.TypeParsing):
		s.writeError(w, string(errors.TypeValidation), err.Error(), http.StatusBadRequest)
	case errors.IsType(err, errors.TypeCalculation):
		s.writeError(w, string(errors.TypeCalculation), err.Error(), http.StatusUnprocessableEntity)
	case errors.IsType(err, errors.TypeDomain):
		s.writeError(w, string(errors.TypeDomain), err.Error(), http.StatusUnprocessableEntity)
	default:
		s.writeError(w, string(errors.TypeInternal), err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

func computeInputHash(req *SizeRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func generateRequestID() string {
	return fmt.Sprintf("size-%d", time.Now().UnixNano())
}
