package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/constants"
	"github.com/docuglot/docuglot/internal/doctranslate"
	"github.com/docuglot/docuglot/internal/domain"
	"github.com/docuglot/docuglot/internal/lang"
)

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if handlePreflight(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	translated, err := s.deps.Translator.Translate(r.Context(), req)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.TranslateResult{TranslatedText: translated})
}

func (s *Server) handleTranslateBatch(w http.ResponseWriter, r *http.Request) {
	if handlePreflight(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.BatchTranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Texts) == 0 {
		writeError(w, http.StatusBadRequest, "Texts are required")
		return
	}
	if len(req.Texts) > constants.RequestLimits.MaxBatchBlocks {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Too many blocks (maximum %d)", constants.RequestLimits.MaxBatchBlocks))
		return
	}
	for _, text := range req.Texts {
		if len([]rune(text)) > constants.RequestLimits.MaxTextLength {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Text exceeds the maximum length of %d characters", constants.RequestLimits.MaxTextLength))
			return
		}
	}

	// The shared language and provider fields are validated once up front.
	// Inside the block loop a failed normalization would only fall back to
	// the source text instead of surfacing the 400.
	if _, err := domain.NormalizeRequest(domain.TranslateRequest{
		Text:          "-",
		SourceLang:    req.SourceLang,
		TargetLang:    req.TargetLang,
		ProviderType:  req.ProviderType,
		CustomAPIKey:  req.CustomAPIKey,
		CustomBaseURL: req.CustomBaseURL,
		Model:         req.Model,
	}); err != nil {
		s.respondError(w, err)
		return
	}

	translated := s.deps.Documents.TranslateBlocks(r.Context(), req.Texts, doctranslate.Options{
		SourceLang:    req.SourceLang,
		TargetLang:    req.TargetLang,
		ProviderType:  req.ProviderType,
		CustomAPIKey:  req.CustomAPIKey,
		CustomBaseURL: req.CustomBaseURL,
		Model:         req.Model,
	})

	writeJSON(w, http.StatusOK, domain.BatchTranslateResult{TranslatedTexts: translated})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if handlePreflight(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"languages": lang.Names})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if handlePreflight(w, r) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"defaultGateway": s.deps.Translator.GatewayConfigured(),
	})
}

// respondError converts any dispatcher error into the {error} response
// shape. No error escapes unhandled: unknown errors surface as 500 with the
// error's message.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var coder interface{ HTTPStatus() int }
	if errors.As(err, &coder) {
		status = coder.HTTPStatus()
	}

	message := err.Error()
	if strings.TrimSpace(message) == "" {
		message = "Translation failed"
	}

	s.logger.Warn("Translation request failed",
		zap.Int("status", status),
		zap.String("message", message),
	)

	writeError(w, status, message)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// handlePreflight short-circuits OPTIONS requests with no body.
func handlePreflight(w http.ResponseWriter, r *http.Request) bool {
	setCORSHeaders(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, domain.ErrorResult{Error: message})
}
