package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/visionbridge/visionbridge/internal/models"
)

// Config is the deployment-variant configuration read from the environment.
type Config struct {
	Port string

	UploadDir       string
	ConversationDir string

	// "local" | "gcs"
	ImageStore string
	GCSBucket  string

	// "memory" | "redis"
	CacheBackend string
	CacheTTL     time.Duration

	// "memory" | "cookie"
	Resolver      string
	SessionSecret string
	SessionTTL    time.Duration

	// "object" | "color"
	SchemaVariant models.PaletteKind

	VertexProject  string
	VertexLocation string
	VertexModel    string

	MongoDatabase string
}

func Load() (Config, error) {
	cfg := Config{
		Port:            getenv("PORT", "8080"),
		UploadDir:       getenv("UPLOAD_DIR", "static/uploads"),
		ConversationDir: getenv("CONVERSATION_DIR", "conversations"),
		ImageStore:      getenv("IMAGE_STORE", "local"),
		GCSBucket:       os.Getenv("GCS_BUCKET"),
		CacheBackend:    getenv("CACHE_BACKEND", "memory"),
		CacheTTL:        getduration("CACHE_TTL_SECONDS", 0),
		Resolver:        getenv("IDENTITY_RESOLVER", "memory"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		SessionTTL:      getduration("SESSION_TTL_SECONDS", 24*60*60),
		VertexProject:   os.Getenv("VERTEX_PROJECT"),
		VertexLocation:  getenv("VERTEX_LOCATION", "us-central1"),
		VertexModel:     getenv("VERTEX_MODEL", "gemini-1.5-flash"),
		MongoDatabase:   getenv("MONGO_DATABASE", "VisionBridge"),
	}

	switch getenv("SCHEMA_VARIANT", "object") {
	case "color":
		cfg.SchemaVariant = models.PaletteColors
	default:
		cfg.SchemaVariant = models.PaletteObjects
	}

	if cfg.VertexProject == "" {
		return cfg, errors.New("VERTEX_PROJECT environment variable is not set")
	}
	if cfg.Resolver == "cookie" && cfg.SessionSecret == "" {
		return cfg, errors.New("SESSION_SECRET is required for the cookie resolver")
	}
	if cfg.ImageStore == "gcs" && cfg.GCSBucket == "" {
		return cfg, errors.New("GCS_BUCKET is required for the gcs image store")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallbackSeconds int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallbackSeconds) * time.Second
}
