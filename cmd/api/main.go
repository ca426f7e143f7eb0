package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/barbearia-app/barbearia-api/internal/cache"
	"github.com/barbearia-app/barbearia-api/internal/config"
	dbpkg "github.com/barbearia-app/barbearia-api/internal/db"
	"github.com/barbearia-app/barbearia-api/internal/logger"
	"github.com/barbearia-app/barbearia-api/internal/media"
	"github.com/barbearia-app/barbearia-api/internal/notification"
	"github.com/barbearia-app/barbearia-api/internal/routes"
	"github.com/barbearia-app/barbearia-api/internal/timezone"
)

func main() {

	// .env é opcional: em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	mirror := cache.New(rdb, log)

	notifier := notification.NewNotifier(db, log)
	defer notifier.Close()

	images := media.NewImageStore(media.Options{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Bucket:          cfg.S3Bucket,
		BaseURL:         cfg.S3BaseURL,
	})
	if images == nil {
		log.Warn("S3 bucket not configured, photo upload disabled")
	}

	loc := timezone.Location(cfg.Timezone)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, mirror, notifier, images, loc)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
