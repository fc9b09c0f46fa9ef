package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vintnerlab/internal/session"
)

type stubClient struct {
	reply     string
	err       error
	gotSystem string
	gotUser   string
}

func (s *stubClient) Name() string { return "stub" }
func (s *stubClient) Close() error { return nil }
func (s *stubClient) Complete(_ context.Context, system, user string) (string, error) {
	s.gotSystem = system
	s.gotUser = user
	return s.reply, s.err
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func newMemStore(t *testing.T) *session.MemoryStore {
	t.Helper()
	store, err := session.NewMemoryStore()
	require.NoError(t, err)
	return store
}

func TestHandleGenerate_Success(t *testing.T) {
	client := &stubClient{reply: "```json\n{\"websiteNote\": \"Crisp and bright\", \"menuNote\": \"Dry white\", \"staffBullets\": [\"estate grown\"]}\n```"}
	h := NewGenerateHandler(client, newMemStore(t), nil)

	rec := postJSON(t, h.HandleGenerate, `{"type": "tasting-notes", "inputs": {}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeEnvelope(t, rec)
	require.Equal(t, true, out["success"])
	result, ok := out["result"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, result, "websiteNote")
	require.Contains(t, result, "menuNote")
	require.Contains(t, result, "staffBullets")

	// Defaults flowed into the user turn.
	require.Contains(t, client.gotUser, "Georgia red wine blend")
	require.Contains(t, client.gotSystem, "wine copywriter")
}

func TestHandleGenerate_TransportErrorFallsBack(t *testing.T) {
	client := &stubClient{err: errors.New("upstream 529")}
	h := NewGenerateHandler(client, newMemStore(t), nil)

	rec := postJSON(t, h.HandleGenerate, `{"type": "tasting-notes", "inputs": {}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeEnvelope(t, rec)
	require.Equal(t, "AI generation failed", out["error"])
	require.Equal(t, true, out["fallback"])
	require.NotContains(t, out, "success")
	require.NotContains(t, out, "result")
}

func TestHandleGenerate_UnknownType(t *testing.T) {
	h := NewGenerateHandler(&stubClient{}, newMemStore(t), nil)

	rec := postJSON(t, h.HandleGenerate, `{"type": "not-a-real-type", "inputs": {}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeEnvelope(t, rec)
	require.Equal(t, "Unknown generation type: not-a-real-type", out["error"])
	require.NotContains(t, out, "fallback")
}

func TestHandleGenerate_NoCredential(t *testing.T) {
	h := NewGenerateHandler(nil, newMemStore(t), nil)

	rec := postJSON(t, h.HandleGenerate, `{"type": "tasting-notes", "inputs": {}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeEnvelope(t, rec)
	require.Equal(t, "API key not configured", out["error"])
	require.Equal(t, true, out["fallback"])
}

func TestHandleGenerate_InvalidReplyFallsBack(t *testing.T) {
	for _, reply := range []string{
		"Sorry, I can't help with that.",
		`{"websiteNote": "", "staffBullets": []}`,
	} {
		h := NewGenerateHandler(&stubClient{reply: reply}, newMemStore(t), nil)
		rec := postJSON(t, h.HandleGenerate, `{"type": "tasting-notes", "inputs": {}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		out := decodeEnvelope(t, rec)
		require.Equal(t, "Invalid response format", out["error"], "reply=%q", reply)
		require.Equal(t, true, out["fallback"])
	}
}

func TestHandleGenerate_MalformedBody(t *testing.T) {
	h := NewGenerateHandler(&stubClient{}, newMemStore(t), nil)
	rec := postJSON(t, h.HandleGenerate, `{"type": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerate_MethodNotAllowed(t *testing.T) {
	h := NewGenerateHandler(&stubClient{}, newMemStore(t), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleGenerate_ExplicitContextInjected(t *testing.T) {
	client := &stubClient{reply: `{"subject": "Thanks!"}`}
	h := NewGenerateHandler(client, newMemStore(t), nil)

	postJSON(t, h.HandleGenerate, `{"type": "thank-you-email", "inputs": {}, "context": "Winery: Willow Creek"}`)

	require.True(t, strings.HasPrefix(client.gotUser, "WINERY CONTEXT"))
	require.Contains(t, client.gotUser, "Winery: Willow Creek")
}

func TestHandleGenerate_StoredContextInjected(t *testing.T) {
	store := newMemStore(t)
	require.NoError(t, store.SetContext(context.Background(), "sess-1", session.WineryContext{
		WineryName: "Willow Creek",
		Location:   "Dahlonega, Georgia",
	}))

	client := &stubClient{reply: `{"subject": "Thanks!"}`}
	h := NewGenerateHandler(client, store, nil)

	postJSON(t, h.HandleGenerate, `{"type": "thank-you-email", "inputs": {}, "session": "sess-1"}`)

	require.Contains(t, client.gotUser, "Winery: Willow Creek")
	require.Contains(t, client.gotUser, "Location: Dahlonega, Georgia")
}

func TestHandleGenerate_NoContextNoSeparator(t *testing.T) {
	client := &stubClient{reply: `{"subject": "Thanks!"}`}
	h := NewGenerateHandler(client, newMemStore(t), nil)

	postJSON(t, h.HandleGenerate, `{"type": "thank-you-email", "inputs": {}}`)

	require.NotContains(t, client.gotUser, "WINERY CONTEXT")
	require.NotContains(t, client.gotUser, "---")
}
