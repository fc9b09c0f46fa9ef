package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vintnerlab/internal/extract"
)

func TestHandleExtract_NormalizesResult(t *testing.T) {
	reply := `{"wineryName":"","wines":["Merlot","Merlot","Merlot","Merlot","Merlot","Merlot","Merlot","Merlot","Merlot","Merlot","Merlot"],"grapeVarieties":["CABERNET"],"wineStyles":[],"tastingNotes":""}`
	h := NewExtractHandler(extract.New(&stubClient{reply: reply}), newMemStore(t), nil)

	rec := postJSON(t, h.HandleExtract, `{"url": "https://willow-creek-vineyards.wine/", "extractType": "wine-info"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeEnvelope(t, rec)
	require.Equal(t, true, out["success"])

	result := out["result"].(map[string]any)
	require.Len(t, result["wines"], 10)
	require.Equal(t, []any{"cabernet"}, result["grapeVarieties"])
	require.Equal(t, "Willow Creek Vineyards Winery", result["wineryName"])
}

func TestHandleExtract_MissingURL(t *testing.T) {
	h := NewExtractHandler(extract.New(&stubClient{}), newMemStore(t), nil)

	rec := postJSON(t, h.HandleExtract, `{"extractType": "wine-info"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeEnvelope(t, rec)
	require.Equal(t, "URL is required", out["error"])
}

func TestHandleExtract_FailureCarriesEmptyResult(t *testing.T) {
	h := NewExtractHandler(extract.New(&stubClient{err: errors.New("dial tcp: timeout")}), newMemStore(t), nil)

	rec := postJSON(t, h.HandleExtract, `{"url": "https://example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeEnvelope(t, rec)
	require.Equal(t, "Failed to extract winery info", out["error"])
	require.Equal(t, true, out["fallback"])

	// Every field present, every field empty.
	result := out["result"].(map[string]any)
	for _, key := range []string{"wineryName", "location", "yearFounded", "description", "tastingNotes"} {
		require.Equal(t, "", result[key], key)
	}
	for _, key := range []string{"wines", "grapeVarieties", "wineStyles"} {
		require.Equal(t, []any{}, result[key], key)
	}
}

func TestHandleExtract_NoCredential(t *testing.T) {
	h := NewExtractHandler(extract.New(nil), newMemStore(t), nil)

	rec := postJSON(t, h.HandleExtract, `{"url": "https://example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeEnvelope(t, rec)
	require.Equal(t, "Search API key not configured", out["error"])
	require.Equal(t, true, out["fallback"])
	require.Contains(t, out, "result")
}

func TestHandleExtract_UnparseableReply(t *testing.T) {
	h := NewExtractHandler(extract.New(&stubClient{reply: "no structured data here"}), newMemStore(t), nil)

	rec := postJSON(t, h.HandleExtract, `{"url": "https://example.com"}`)

	out := decodeEnvelope(t, rec)
	require.Equal(t, "Failed to parse response", out["error"])
	require.Equal(t, true, out["fallback"])
}

func TestHandleExtract_StoresContextForSession(t *testing.T) {
	store := newMemStore(t)
	reply := `{"wineryName":"Willow Creek","location":"Dahlonega, Georgia","wines":["Merlot"]}`
	h := NewExtractHandler(extract.New(&stubClient{reply: reply}), store, nil)

	rec := postJSON(t, h.HandleExtract, `{"url": "https://willow-creek-vineyards.wine/", "session": "sess-9"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	wc, ok, err := store.GetContext(context.Background(), "sess-9")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Willow Creek", wc.WineryName)
	require.Equal(t, []string{"Merlot"}, wc.Wines)
}

func TestHandleExtract_MethodNotAllowed(t *testing.T) {
	h := NewExtractHandler(extract.New(&stubClient{}), newMemStore(t), nil)
	req := httptest.NewRequest(http.MethodPut, "/api/extract-website", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.HandleExtract(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
