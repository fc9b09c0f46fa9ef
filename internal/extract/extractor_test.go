package extract

import (
	"context"
	"errors"
	"testing"

	"vintnerlab/internal/llmclient"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Name() string { return "stub" }
func (s *stubClient) Close() error { return nil }
func (s *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func TestExtract_Success(t *testing.T) {
	e := New(&stubClient{reply: `{"wineryName": "Willow Creek", "wines": ["Merlot"], "grapeVarieties": ["MERLOT"]}`})
	info, err := e.Extract(context.Background(), "https://willow-creek-vineyards.wine/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.WineryName != "Willow Creek" {
		t.Fatalf("name: got=%q", info.WineryName)
	}
	if len(info.GrapeVarieties) != 1 || info.GrapeVarieties[0] != "merlot" {
		t.Fatalf("varieties: got=%v", info.GrapeVarieties)
	}
}

func TestExtract_NilClient(t *testing.T) {
	e := New(nil)
	info, err := e.Extract(context.Background(), "https://example.com")
	if !errors.Is(err, llmclient.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
	if info.Wines == nil {
		t.Fatalf("failure must return Empty(), got %+v", info)
	}
}

func TestExtract_TransportError(t *testing.T) {
	wantErr := errors.New("connection refused")
	e := New(&stubClient{err: wantErr})
	_, err := e.Extract(context.Background(), "https://example.com")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestExtract_UnparseableReply(t *testing.T) {
	e := New(&stubClient{reply: "I could not find any information about that website."})
	info, err := e.Extract(context.Background(), "https://example.com")
	if !errors.Is(err, ErrUnparseable) {
		t.Fatalf("expected ErrUnparseable, got %v", err)
	}
	if info.WineryName != "" || len(info.Wines) != 0 {
		t.Fatalf("failure must return Empty(), got %+v", info)
	}
}
