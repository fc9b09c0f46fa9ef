package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vintnerlab/internal/extract"
	"vintnerlab/internal/llmclient"
	"vintnerlab/internal/session"
)

// ExtractHandler drives the website-information pipeline. Its envelope always
// carries a WineryInfo result, all-empty on failure, so the caller never has
// to branch on result presence.
type ExtractHandler struct {
	extractor *extract.Extractor
	store     session.Store
	log       *log.Logger
}

func NewExtractHandler(extractor *extract.Extractor, store session.Store, logger *log.Logger) *ExtractHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &ExtractHandler{extractor: extractor, store: store, log: logger}
}

type extractRequest struct {
	URL string `json:"url"`
	// ExtractType is accepted for forward compatibility but does not branch.
	ExtractType string `json:"extractType,omitempty"`
	Session     string `json:"session,omitempty"`
}

func (h *ExtractHandler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, "invalid request body")
		return
	}
	if req.URL == "" {
		writeClientError(w, "URL is required")
		return
	}

	h.log.Printf("Extracting winery info from: %s (type=%s)", req.URL, req.ExtractType)

	info, err := h.extractor.Extract(r.Context(), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, llmclient.ErrNoCredential):
			h.log.Printf("extract: no search credential configured")
			writeFallbackResult(w, "Search API key not configured", extract.Empty())
		case errors.Is(err, llmclient.ErrEmptyReply):
			writeFallbackResult(w, "Empty response", extract.Empty())
		case errors.Is(err, extract.ErrUnparseable):
			writeFallbackResult(w, "Failed to parse response", extract.Empty())
		default:
			h.log.Printf("extract %s: %v", req.URL, err)
			writeFallbackResult(w, "Failed to extract winery info", extract.Empty())
		}
		return
	}

	if req.Session != "" && h.store != nil {
		wc := session.WineryContext{
			WineryName:     info.WineryName,
			Location:       info.Location,
			YearFounded:    info.YearFounded,
			Description:    info.Description,
			Wines:          info.Wines,
			GrapeVarieties: info.GrapeVarieties,
			WineStyles:     info.WineStyles,
		}
		if err := h.store.SetContext(r.Context(), req.Session, wc); err != nil {
			h.log.Printf("extract %s: store context: %v", req.URL, err)
		}
	}

	h.log.Printf("Successfully extracted info for: %s", info.WineryName)
	writeSuccess(w, info)
}
