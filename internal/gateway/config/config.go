package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	Generate GenerateConfig
	Extract  ExtractConfig
	Store    StoreConfig
}

// GenerateConfig selects the exercise-generation provider. Anthropic is the
// default; Gemini is used when GENERATE_PROVIDER=gemini and a key is present.
type GenerateConfig struct {
	Provider     string
	AnthropicKey string
	Model        string
	GeminiModel  string
	GeminiKey    string
	MaxTokens    int
	Timeout      time.Duration
}

// ExtractConfig selects the search-grounded extraction provider.
type ExtractConfig struct {
	Provider      string
	PerplexityKey string
	Model         string
	GeminiModel   string
	GeminiKey     string
	MaxTokens     int
	Timeout       time.Duration
}

type StoreConfig struct {
	DatabaseURL string
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT_SECONDS")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	geminiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))

	return &Config{
		Port: *port,
		Env:  env,
		Generate: GenerateConfig{
			Provider:     firstNonEmpty(strings.TrimSpace(os.Getenv("GENERATE_PROVIDER")), "anthropic"),
			AnthropicKey: strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
			Model:        firstNonEmpty(strings.TrimSpace(os.Getenv("ANTHROPIC_MODEL")), "claude-3-haiku-20240307"),
			GeminiModel:  firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.5-flash"),
			GeminiKey:    geminiKey,
			MaxTokens:    1500,
			Timeout:      timeout,
		},
		Extract: ExtractConfig{
			Provider:      firstNonEmpty(strings.TrimSpace(os.Getenv("EXTRACT_PROVIDER")), "perplexity"),
			PerplexityKey: strings.TrimSpace(os.Getenv("PERPLEXITY_API_KEY")),
			Model:         firstNonEmpty(strings.TrimSpace(os.Getenv("PERPLEXITY_MODEL")), "llama-3.1-sonar-small-128k-online"),
			GeminiModel:   firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.5-flash"),
			GeminiKey:     geminiKey,
			MaxTokens:     1000,
			Timeout:       timeout,
		},
		Store: loadStoreConfig(),
	}, nil
}

func loadStoreConfig() StoreConfig {
	return StoreConfig{
		DatabaseURL: strings.TrimSpace(os.Getenv("SESSION_PG_DSN")),
		S3Endpoint:  strings.TrimSpace(os.Getenv("SESSION_S3_ENDPOINT")),
		S3Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("SESSION_S3_REGION")), "us-east-1"),
		S3AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("SESSION_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		S3SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("SESSION_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		S3Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("SESSION_S3_BUCKET")), "vintnerlab-sessions"),
		S3UseSSL:    resolveS3UseSSL(),
	}
}

func resolveS3UseSSL() bool {
	raw := strings.TrimSpace(os.Getenv("SESSION_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
