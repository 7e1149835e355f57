package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/visionbridge/visionbridge/config"
	"github.com/visionbridge/visionbridge/internal/api/handlers"
	"github.com/visionbridge/visionbridge/internal/api/middleware"
	"github.com/visionbridge/visionbridge/internal/api/routes"
	"github.com/visionbridge/visionbridge/internal/cache"
	"github.com/visionbridge/visionbridge/internal/identity"
	"github.com/visionbridge/visionbridge/internal/logger"
	"github.com/visionbridge/visionbridge/internal/providers/llm"
	mongorepo "github.com/visionbridge/visionbridge/internal/repositories/mongo"
	"github.com/visionbridge/visionbridge/internal/services"
	"github.com/visionbridge/visionbridge/internal/storage"
	"github.com/visionbridge/visionbridge/internal/store"
)

func main() {
	_ = godotenv.Load()

	lg := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()

	// Color-by-culture lookup (MongoDB Atlas)
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	colorRepo := mongorepo.NewColorRepo(config.MongoClient.Database(cfg.MongoDatabase))

	// Conversation store: file-backed records behind a cache
	fileStore, err := store.NewFileStore(cfg.ConversationDir)
	if err != nil {
		log.Fatalf("conversation store error: %v", err)
	}
	var recordCache cache.Cache
	if cfg.CacheBackend == "redis" {
		if err := config.InitRedis(); err != nil {
			log.Fatalf("Redis init error: %v", err)
		}
		recordCache = cache.NewRedisCache(config.RedisClient)
	} else {
		recordCache = cache.NewMemoryCache()
	}
	records := store.NewCachedStore(fileStore, recordCache, cfg.CacheTTL)

	// Image storage
	var images storage.ImageStore
	staticDir := ""
	if cfg.ImageStore == "gcs" {
		gcsStore, err := storage.NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gcsStore.Close()
		images = gcsStore
	} else {
		localStore, err := storage.NewLocalStore(cfg.UploadDir, "/static/uploads")
		if err != nil {
			log.Fatalf("image store error: %v", err)
		}
		images = localStore
		staticDir = cfg.UploadDir
	}

	// Vision-language model
	model, err := llm.NewVertexGemini(ctx, cfg.VertexProject, cfg.VertexLocation, cfg.VertexModel)
	if err != nil {
		log.Fatalf("Vertex init error: %v", err)
	}
	defer model.Close()

	// Identity resolver variant
	var resolver identity.Resolver
	if cfg.Resolver == "cookie" {
		resolver = identity.NewCookieResolver(cfg.SessionSecret, cfg.SessionTTL)
	} else {
		resolver = identity.NewMapResolver()
	}

	analysisSvc := services.NewAnalysisService(model, records, cfg.SchemaVariant, lg)
	personalizeSvc := services.NewPersonalizeService(model, records, colorRepo, images, lg)
	dialogueSvc := services.NewDialogueService(model, records, images, lg)

	r := gin.New()
	r.Use(middleware.RequestLogger(lg), gin.Recovery())
	r.MaxMultipartMemory = 16 << 20

	routes.RegisterRoutes(r, routes.Deps{
		Artwork:     handlers.NewArtworkHandler(analysisSvc, images, resolver),
		Dialogue:    handlers.NewDialogueHandler(dialogueSvc, resolver),
		Personalize: handlers.NewPersonalizeHandler(personalizeSvc, resolver),
		StaticDir:   staticDir,
	})

	lg.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
