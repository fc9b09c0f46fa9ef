package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vintnerlab/internal/llmclient"
	"vintnerlab/internal/prompt"
	"vintnerlab/internal/session"
	"vintnerlab/internal/util/jsonutil"
)

// GenerateHandler runs one exercise: validate the type, build the prompt,
// invoke the model once, recover a JSON object from the reply. Stateless per
// request; every failure past validation is a fallback, never a 5xx.
type GenerateHandler struct {
	client llmclient.Client
	store  session.Store
	log    *log.Logger
}

// NewGenerateHandler wires the generation pipeline. client may be nil when no
// credential is configured; requests then fall back without a network call.
func NewGenerateHandler(client llmclient.Client, store session.Store, logger *log.Logger) *GenerateHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &GenerateHandler{client: client, store: store, log: logger}
}

type generateRequest struct {
	Type    string         `json:"type"`
	Inputs  map[string]any `json:"inputs"`
	Context string         `json:"context,omitempty"`
	Session string         `json:"session,omitempty"`
}

func (h *GenerateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, "invalid request body")
		return
	}

	systemPrompt, ok := prompt.SystemPrompt(prompt.ExerciseType(req.Type))
	if !ok {
		writeClientError(w, "Unknown generation type: "+req.Type)
		return
	}

	basePrompt := prompt.BuildUserPrompt(prompt.ExerciseType(req.Type), req.Inputs)
	userPrompt := prompt.Inject(basePrompt, h.resolveContext(r, req))

	if h.client == nil {
		h.log.Printf("generate %s: no model client configured", req.Type)
		writeFallback(w, "API key not configured")
		return
	}

	h.log.Printf("Generating %s content...", req.Type)
	reply, err := h.client.Complete(r.Context(), systemPrompt, userPrompt)
	if err != nil {
		switch {
		case errors.Is(err, llmclient.ErrNoCredential):
			writeFallback(w, "API key not configured")
		case errors.Is(err, llmclient.ErrEmptyReply):
			writeFallback(w, "Empty response")
		default:
			writeFallback(w, "AI generation failed")
		}
		return
	}

	parsed := jsonutil.ExtractObject(reply)
	if parsed == nil || !jsonutil.HasValidContent(parsed) {
		h.log.Printf("generate %s: no valid object in reply", req.Type)
		writeFallback(w, "Invalid response format")
		return
	}

	h.log.Printf("Successfully generated %s content", req.Type)
	writeSuccess(w, parsed)
}

// resolveContext prefers context supplied in the request; when absent and a
// session id is given, the stored winery context is rendered instead. A store
// miss or error just means no personalization.
func (h *GenerateHandler) resolveContext(r *http.Request, req generateRequest) string {
	if req.Context != "" {
		return req.Context
	}
	if req.Session == "" || h.store == nil {
		return ""
	}
	wc, ok, err := h.store.GetContext(r.Context(), req.Session)
	if err != nil {
		h.log.Printf("generate %s: context lookup: %v", req.Type, err)
		return ""
	}
	if !ok {
		return ""
	}
	return wc.ContextBlock()
}
