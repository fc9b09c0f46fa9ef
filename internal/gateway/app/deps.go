package app

import (
	"context"
	"log"

	"vintnerlab/internal/gateway/config"
	"vintnerlab/internal/llmclient"
	"vintnerlab/internal/session"
)

// initStore picks the session store backend: Postgres when a DSN is set, S3
// when an endpoint is configured, in-memory otherwise. A backend that fails
// to come up degrades to the next option rather than refusing to start; the
// workshop must run even when the venue network is flaky.
func initStore(cfg *config.Config) (session.Store, error) {
	if dsn := cfg.Store.DatabaseURL; dsn != "" {
		s, err := session.NewPostgresStore(dsn)
		if err == nil {
			log.Printf("session store: postgres")
			return s, nil
		}
		log.Printf("session store: postgres unavailable (%v), falling back", err)
	}
	if cfg.Store.S3Endpoint != "" {
		s, err := session.NewS3Store(session.S3Config{
			Endpoint:  cfg.Store.S3Endpoint,
			Region:    cfg.Store.S3Region,
			AccessKey: cfg.Store.S3AccessKey,
			SecretKey: cfg.Store.S3SecretKey,
			Bucket:    cfg.Store.S3Bucket,
			UseSSL:    cfg.Store.S3UseSSL,
		})
		if err == nil {
			log.Printf("session store: s3 (%s)", cfg.Store.S3Endpoint)
			return s, nil
		}
		log.Printf("session store: s3 unavailable (%v), falling back", err)
	}
	log.Printf("session store: in-memory")
	return session.NewMemoryStore()
}

// newGenerateClient builds the exercise-generation client. Returns nil when
// the selected provider has no credential; the handler then short-circuits
// every request to a fallback envelope.
func newGenerateClient(ctx context.Context, cfg *config.Config) llmclient.Client {
	gen := cfg.Generate
	if gen.Provider == "gemini" {
		if gen.GeminiKey == "" {
			log.Printf("generate: GEMINI_API_KEY not configured")
			return nil
		}
		c, err := llmclient.NewGeminiClient(ctx, gen.GeminiModel, gen.MaxTokens, false)
		if err != nil {
			log.Printf("generate: gemini client: %v", err)
			return nil
		}
		return llmclient.Apply(c, llmclient.WithLogging(nil))
	}
	if gen.AnthropicKey == "" {
		log.Printf("generate: ANTHROPIC_API_KEY not configured")
		return nil
	}
	c := llmclient.NewAnthropicClient(gen.AnthropicKey, gen.Model, gen.MaxTokens, gen.Timeout)
	return llmclient.Apply(c, llmclient.WithLogging(nil))
}

// newExtractClient builds the search-grounded client for the website
// extractor, nil when unconfigured.
func newExtractClient(ctx context.Context, cfg *config.Config) llmclient.Client {
	ext := cfg.Extract
	if ext.Provider == "gemini" {
		if ext.GeminiKey == "" {
			log.Printf("extract: GEMINI_API_KEY not configured")
			return nil
		}
		c, err := llmclient.NewGeminiClient(ctx, ext.GeminiModel, ext.MaxTokens, true)
		if err != nil {
			log.Printf("extract: gemini client: %v", err)
			return nil
		}
		return llmclient.Apply(c, llmclient.WithLogging(nil))
	}
	if ext.PerplexityKey == "" {
		log.Printf("extract: PERPLEXITY_API_KEY not configured")
		return nil
	}
	c := llmclient.NewPerplexityClient(ext.PerplexityKey, ext.Model, ext.MaxTokens, ext.Timeout)
	return llmclient.Apply(c, llmclient.WithLogging(nil))
}
