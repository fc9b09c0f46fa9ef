package app

import (
	"context"
	"fmt"
	"log"

	"vintnerlab/internal/extract"
	"vintnerlab/internal/gateway/config"
	"vintnerlab/internal/gateway/handler"
	"vintnerlab/internal/gateway/server"
	"vintnerlab/internal/session"
)

type App struct {
	server *server.Server
	store  session.Store
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Dependencies
	store, err := initStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init session store: %w", err)
	}

	genClient := newGenerateClient(ctx, cfg)
	searchClient := newExtractClient(ctx, cfg)
	extractor := extract.New(searchClient)

	generateHandler := handler.NewGenerateHandler(genClient, store, nil)
	extractHandler := handler.NewExtractHandler(extractor, store, nil)
	sessionHandler := handler.NewSessionHandler(store, nil)

	// Routing & Server
	mux := server.NewMux(generateHandler, extractHandler, sessionHandler)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		store:  store,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.store.Close(); cerr != nil {
		log.Printf("session store close: %v", cerr)
	}
	return err
}
