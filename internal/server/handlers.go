package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/diagram"
	"github.com/alexiusacademia/acibeam/internal/report"
	"github.com/alexiusacademia/acibeam/internal/version"
)

// maxBody bounds request payloads; inputs are a handful of numbers.
const maxBody = 1 << 16

// AnalyzeResponse is the body returned by the analyze endpoint.
type AnalyzeResponse struct {
	Input   beam.Input   `json:"input"`
	Results beam.Results `json:"results"`
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeInput reads and validates a beam.Input body. It writes the error
// response itself and reports whether the handler should continue.
func decodeInput(w http.ResponseWriter, r *http.Request) (beam.Input, bool) {
	var in beam.Input
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return in, false
	}
	if err := beam.Validate(in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return in, false
	}
	return in, true
}

// Analyze handles POST /api/beam/analyze.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, AnalyzeResponse{Input: in, Results: beam.Analyze(in)})
}

// RequiredSteel handles POST /api/beam/required-steel.
func (s *Server) RequiredSteel(w http.ResponseWriter, r *http.Request) {
	var in beam.RequiredSteelInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, beam.RequiredSteel(in))
}

// Report handles POST /api/beam/report, returning a PDF calculation sheet.
func (s *Server) Report(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	meta := report.Meta{
		Project:  r.URL.Query().Get("project"),
		Engineer: r.URL.Query().Get("engineer"),
		Date:     s.now(),
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam-calculation.pdf\"")
	if err := report.WritePDF(w, meta, report.Build(in, beam.Analyze(in))); err != nil {
		log.Printf("report generation: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
	}
}

// Diagram handles POST /api/beam/diagram, returning the section as SVG.
func (s *Server) Diagram(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := diagram.WriteSectionSVG(w, diagram.NewSectionData(in, beam.Analyze(in))); err != nil {
		log.Printf("diagram generation: %v", err)
		http.Error(w, "Diagram generation error", http.StatusInternalServerError)
	}
}

// Strain handles POST /api/beam/strain, returning the strain distribution
// as SVG. Sections without a drawable profile (for example As = 0) get 422.
func (s *Server) Strain(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := diagram.WriteStrainSVG(&buf, diagram.NewSectionData(in, beam.Analyze(in)))
	switch {
	case errors.Is(err, diagram.ErrNotDrawable):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		log.Printf("strain diagram generation: %v", err)
		http.Error(w, "Diagram generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("writing strain diagram: %v", err)
	}
}

// Health handles GET /api/health.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}
