package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"vintnerlab/internal/session"
)

// SessionHandler exposes the server-side workshop state: winery context
// overwrites, poll responses and beta signups. These back the browser's
// toolkit so a workshop room can share one projector view of poll results.
type SessionHandler struct {
	store session.Store
	log   *log.Logger
}

func NewSessionHandler(store session.Store, logger *log.Logger) *SessionHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &SessionHandler{store: store, log: logger}
}

type contextRequest struct {
	Session string                `json:"session"`
	Context session.WineryContext `json:"context"`
}

func (h *SessionHandler) HandleContext(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req contextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeClientError(w, "invalid request body")
			return
		}
		if req.Session == "" {
			writeClientError(w, "session is required")
			return
		}
		if err := h.store.SetContext(r.Context(), req.Session, req.Context); err != nil {
			h.log.Printf("context set %s: %v", req.Session, err)
			writeJSON(w, http.StatusInternalServerError, envelope{Error: "failed to store context"})
			return
		}
		writeSuccess(w, req.Context)

	case http.MethodGet:
		sessionID := r.URL.Query().Get("session")
		if sessionID == "" {
			writeClientError(w, "session is required")
			return
		}
		wc, ok, err := h.store.GetContext(r.Context(), sessionID)
		if err != nil {
			h.log.Printf("context get %s: %v", sessionID, err)
			writeJSON(w, http.StatusInternalServerError, envelope{Error: "failed to load context"})
			return
		}
		if !ok {
			writeSuccess(w, nil)
			return
		}
		writeSuccess(w, wc)

	default:
		writeMethodNotAllowed(w)
	}
}

type pollRequest struct {
	Session  string `json:"session"`
	Exercise string `json:"exercise"`
	Response string `json:"response"`
}

func (h *SessionHandler) HandlePoll(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req pollRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeClientError(w, "invalid request body")
			return
		}
		if req.Exercise == "" || req.Response == "" {
			writeClientError(w, "exercise and response are required")
			return
		}
		p := session.PollResponse{
			ID:        uuid.NewString(),
			SessionID: req.Session,
			Exercise:  req.Exercise,
			Response:  req.Response,
			CreatedAt: time.Now().UTC(),
		}
		if err := h.store.AppendPoll(r.Context(), p); err != nil {
			h.log.Printf("poll append %s: %v", req.Exercise, err)
			writeJSON(w, http.StatusInternalServerError, envelope{Error: "failed to store poll response"})
			return
		}
		writeSuccess(w, p)

	case http.MethodGet:
		polls, err := h.store.ListPolls(r.Context(), r.URL.Query().Get("exercise"))
		if err != nil {
			h.log.Printf("poll list: %v", err)
			writeJSON(w, http.StatusInternalServerError, envelope{Error: "failed to list poll responses"})
			return
		}
		writeSuccess(w, polls)

	default:
		writeMethodNotAllowed(w)
	}
}

type betaRequest struct {
	Email      string `json:"email"`
	WineryName string `json:"wineryName"`
}

func (h *SessionHandler) HandleBeta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	var req betaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, "invalid request body")
		return
	}
	if req.Email == "" {
		writeClientError(w, "email is required")
		return
	}
	b := session.BetaSignup{
		ID:         uuid.NewString(),
		Email:      req.Email,
		WineryName: req.WineryName,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.store.AppendBeta(r.Context(), b); err != nil {
		h.log.Printf("beta append: %v", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Error: "failed to store signup"})
		return
	}
	writeSuccess(w, b)
}
