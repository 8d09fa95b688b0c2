package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/foliochat/foliochat/config"
	"github.com/foliochat/foliochat/internal/api/handlers"
	"github.com/foliochat/foliochat/internal/api/middleware"
	"github.com/foliochat/foliochat/internal/api/routes"
	"github.com/foliochat/foliochat/internal/cache"
	"github.com/foliochat/foliochat/internal/logger"
	"github.com/foliochat/foliochat/internal/models"
	"github.com/foliochat/foliochat/internal/providers/llm"
	mongorepo "github.com/foliochat/foliochat/internal/repositories/mongo"
	pgrepo "github.com/foliochat/foliochat/internal/repositories/postgres"
	"github.com/foliochat/foliochat/internal/services"
	"github.com/foliochat/foliochat/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	l := logger.New(cfg.LogLevel)
	ctx := context.Background()

	// Init PostgreSQL (users)
	pg, err := config.InitPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := pg.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	l.Info("PostgreSQL connected")

	// Init MongoDB (chats, messages)
	mc, err := config.InitMongo(cfg.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	mdb := mc.Database(cfg.MongoDB)
	if err := config.EnsureMongoIndexes(mdb); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	// Init Redis (resume text cache)
	rdb, err := config.InitRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")
	resumeCache := cache.NewRedisCache(rdb)

	// Object storage
	var store storage.ObjectStore
	switch cfg.StorageDriver {
	case "gcs":
		gstore, err := storage.NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSCredsFile)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gstore.Close()
		store = gstore
	default:
		store = storage.NewS3Store(cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Region, cfg.S3Bucket, cfg.S3Endpoint)
	}

	// Generation backend
	var gen llm.Provider
	switch cfg.GenProvider {
	case "vertex":
		resolver := llm.NewResumeResolver(store, resumeCache, cfg.ResumeCacheTTL, l)
		vg, err := llm.NewVertexGemini(ctx, cfg.VertexProject, cfg.VertexLocation, cfg.VertexModel, resolver)
		if err != nil {
			log.Fatalf("Vertex init error: %v", err)
		}
		gen = vg
	default:
		gen = llm.NewRemoteBackend(cfg.GenEndpoint, cfg.GenToken)
	}
	defer gen.Close()

	// Repositories
	users := pgrepo.NewUserRepo(pg)
	chats := mongorepo.NewChatRepo(mdb)
	messages := mongorepo.NewMessageRepo(mdb)

	// Services
	authSvc := services.NewAuthService(users, cfg.JWTSecret, cfg.JWTExpiry)
	chatSvc := services.NewChatService(chats, messages, gen, store, nil, cfg.GenTimeout, l)

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Auth:      handlers.NewAuthHandler(authSvc),
		Chat:      handlers.NewChatHandler(chatSvc),
		Deploy:    handlers.NewDeployHandler(chatSvc),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
