package server

import (
	"net/http"

	"vintnerlab/internal/gateway/handler"
	"vintnerlab/internal/gateway/middleware"
)

func NewMux(
	generateHandler *handler.GenerateHandler,
	extractHandler *handler.ExtractHandler,
	sessionHandler *handler.SessionHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Exercise pipeline
	mux.HandleFunc("/api/generate", generateHandler.HandleGenerate)
	mux.HandleFunc("/api/extract-website", extractHandler.HandleExtract)

	// Workshop session state
	mux.HandleFunc("/api/context", sessionHandler.HandleContext)
	mux.HandleFunc("/api/poll", sessionHandler.HandlePoll)
	mux.HandleFunc("/api/beta", sessionHandler.HandleBeta)

	// Middleware
	return middleware.CORS(mux)
}
