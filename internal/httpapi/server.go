package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joelkehle/startup-navigator/internal/ideaanalysis"
	"github.com/joelkehle/startup-navigator/internal/render"
	"github.com/joelkehle/startup-navigator/internal/simulator"
)

const (
	maxJSONBody     = 1 << 20
	maxMarkdownBody = 5 << 20
)

// AnalyzeFunc runs one idea analysis with a caller-supplied API key.
type AnalyzeFunc func(ctx context.Context, apiKey, idea string) (ideaanalysis.Result, error)

type Options struct {
	Analyze         AnalyzeFunc
	PDFRenderer     render.PDFRenderer
	AnalysisTimeout time.Duration
}

type Server struct {
	analyze         AnalyzeFunc
	pdfRenderer     render.PDFRenderer
	analysisTimeout time.Duration
}

// NewServer wires the navigator HTTP API. A nil PDFRenderer disables the
// PDF endpoints; a nil Analyze uses ideaanalysis.Analyze.
func NewServer(opts Options) http.Handler {
	s := &Server{
		analyze:         opts.Analyze,
		pdfRenderer:     opts.PDFRenderer,
		analysisTimeout: opts.AnalysisTimeout,
	}
	if s.analyze == nil {
		s.analyze = ideaanalysis.Analyze
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/health", s.handleHealth)
	mux.HandleFunc("/v1/simulations", s.handleSimulations)
	mux.HandleFunc("/v1/simulations/pdf", s.handleSimulationPDF)
	mux.HandleFunc("/v1/analyses", s.handleAnalyses)
	mux.HandleFunc("/v1/reports/pdf", s.handleReportPDF)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func writePDF(w http.ResponseWriter, filename string, pdf []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(200)
	_, _ = w.Write(pdf)
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, 200, map[string]any{"ok": true, "pdf": s.pdfRenderer != nil})
}

// decodeProjection decodes and runs one simulation, writing a 400 on
// failure.
func decodeProjection(w http.ResponseWriter, r *http.Request) (simulator.Projection, bool) {
	var in simulator.Inputs
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, 400, "invalid request body: "+err.Error())
		return simulator.Projection{}, false
	}
	p, err := simulator.Run(in)
	if err != nil {
		writeError(w, 400, err.Error())
		return simulator.Projection{}, false
	}
	return p, true
}

func (s *Server) handleSimulations(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	p, ok := decodeProjection(w, r)
	if !ok {
		return
	}
	markdown := simulator.BuildMarkdown(p)
	resp := map[string]any{
		"projection":      p,
		"charts":          simulator.Charts(p.Points),
		"report_markdown": markdown,
	}
	if htmlDoc, err := render.MarkdownToHTML(markdown); err == nil {
		resp["report_html"] = htmlDoc
	} else {
		log.Printf("render simulation html failed: %v", err)
	}
	writeJSON(w, 200, resp)
}

func (s *Server) handleSimulationPDF(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	if s.pdfRenderer == nil {
		writeError(w, 503, "pdf renderer unavailable")
		return
	}
	p, ok := decodeProjection(w, r)
	if !ok {
		return
	}
	pdf, err := s.pdfRenderer.Render(r.Context(), "Business Performance Simulation", simulator.BuildMarkdown(p))
	if err != nil {
		log.Printf("render simulation pdf failed: %v", err)
		writeError(w, 500, "failed to render pdf")
		return
	}
	writePDF(w, "simulation.pdf", pdf)
}

type analysisRequest struct {
	APIKey string `json:"api_key"`
	Idea   string `json:"idea"`
}

func (s *Server) handleAnalyses(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	var req analysisRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, 400, "invalid analysis request: "+err.Error())
		return
	}
	if strings.TrimSpace(req.APIKey) == "" {
		req.APIKey = r.Header.Get("X-Api-Key")
	}

	ctx := r.Context()
	if s.analysisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.analysisTimeout)
		defer cancel()
	}

	res, err := s.analyze(ctx, req.APIKey, req.Idea)
	switch {
	case errors.Is(err, ideaanalysis.ErrMissingCredential), errors.Is(err, ideaanalysis.ErrMissingIdea):
		writeError(w, 400, err.Error())
		return
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("analysis timed out after %s", s.analysisTimeout)
		writeError(w, 504, "analysis timed out: "+err.Error())
		return
	case err != nil:
		log.Printf("analysis failed: %v", err)
		writeError(w, 502, "analysis failed: "+err.Error())
		return
	}
	log.Printf("analysis completed id=%s model=%s elapsed=%s", res.ID, res.Model, res.Elapsed.Round(time.Millisecond))

	resp := map[string]any{
		"analysis_id":     res.ID,
		"model":           res.Model,
		"report_markdown": res.Markdown,
	}
	if htmlDoc, err := render.MarkdownToHTML(res.Markdown); err == nil {
		resp["report_html"] = htmlDoc
	} else {
		log.Printf("render analysis html failed id=%s err=%v", res.ID, err)
	}
	writeJSON(w, 200, resp)
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	if s.pdfRenderer == nil {
		writeError(w, 503, "pdf renderer unavailable")
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxMarkdownBody))
	if err != nil {
		writeError(w, 400, "invalid request body")
		return
	}
	report := strings.TrimSpace(string(body))
	if report == "" {
		writeError(w, 400, "report body is required")
		return
	}
	pdf, err := s.pdfRenderer.Render(r.Context(), "Startup Idea Analysis", report)
	if err != nil {
		log.Printf("render report pdf failed: %v", err)
		writeError(w, 500, "failed to render pdf")
		return
	}
	writePDF(w, "analysis.pdf", pdf)
}
