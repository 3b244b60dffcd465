package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/portfolio-api/internal/config"
	dbpkg "github.com/lucasmonteiro/portfolio-api/internal/db"
	"github.com/lucasmonteiro/portfolio-api/internal/logger"
	"github.com/lucasmonteiro/portfolio-api/internal/middleware"
	"github.com/lucasmonteiro/portfolio-api/internal/routes"
)

func main() {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
