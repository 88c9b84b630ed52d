package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/mycv/internal/i18n"
	"github.com/jonathan/mycv/internal/metrics"
	"github.com/jonathan/mycv/internal/types"
)

// handleIndex serves the résumé in the default language
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.serveResume(w, r, types.ResolveLanguage(nil))
}

// handleLanguage serves the résumé for the first path segment; unknown codes fall back to English
func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	segment := r.PathValue("lang")
	s.serveResume(w, r, types.ResolveLanguage(&segment))
}

func (s *Server) serveResume(w http.ResponseWriter, r *http.Request, lang types.Language) {
	logger := LoggerFromContext(r.Context()).With("lang", lang.Code())
	start := time.Now()

	resume, err := s.repo.Load(lang)
	if err != nil {
		err = loadFailure(err)
		logger.Error("failed to load resume", "error", err)
		metrics.RenderFailed(lang.Code(), "load")
		http.Error(w, fmt.Sprintf("Failed to load resume. Error: %v", err), http.StatusInternalServerError)
		return
	}

	html, err := s.renderer.Render(resume, i18n.New(lang), lang.Code())
	if err != nil {
		logger.Error("failed to render resume", "error", err)
		metrics.RenderFailed(lang.Code(), "render")
		http.Error(w, fmt.Sprintf("Failed to render template. Error: %v", err), http.StatusInternalServerError)
		return
	}
	metrics.ObserveRender(lang.Code(), time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", lang.Tag().String())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		LoggerFromContext(r.Context()).Warn("failed to encode JSON response", "error", err)
	}
}
