package main

import (
	"flag"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lucasmonteiro/portfolio-api/internal/config"
	dbpkg "github.com/lucasmonteiro/portfolio-api/internal/db"
	"github.com/lucasmonteiro/portfolio-api/internal/logger"
	"github.com/lucasmonteiro/portfolio-api/internal/seed"
)

func main() {
	_ = godotenv.Load()

	seedFlag := flag.Bool("seed", true, "populate fixture data after migrating")
	flag.Parse()

	log := logger.New()
	defer log.Sync()

	cfg := config.Load()

	// NewDB migrates on connect.
	db := dbpkg.NewDB(cfg)

	if *seedFlag {
		if err := seed.Run(db, log); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
	}

	log.Info("database ready")
}
