// Package main upserts the global exercise catalog into the database.
package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcoach/internal/config"
	"github.com/2beens/gymcoach/internal/db"
	"github.com/2beens/gymcoach/internal/gymstats/repo"
	"github.com/2beens/gymcoach/internal/logging"
)

//go:embed exercises.yaml
var defaultCatalog []byte

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	catalogPath := flag.String("catalog", "", "exercise catalog YAML, embedded catalog if empty")
	applySchema := flag.Bool("schema", false, "apply the database schema first")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "gymcoach-seed",
	})

	var catalogReader io.Reader = bytes.NewReader(defaultCatalog)
	if *catalogPath != "" {
		f, err := os.Open(*catalogPath)
		if err != nil {
			log.Fatalf("open catalog: %s", err)
		}
		defer f.Close()
		catalogReader = f
	}

	exercises, err := parseCatalog(catalogReader)
	if err != nil {
		log.Fatalf("parse catalog: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: cfg.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	gymRepo := repo.NewRepo(dbPool)
	if *applySchema {
		if err := gymRepo.ApplySchema(ctx); err != nil {
			log.Fatalf("apply schema: %s", err)
		}
		log.Println("schema applied")
	}

	upserted := 0
	for _, ex := range exercises {
		id, err := gymRepo.UpsertGlobalExercise(ctx, ex)
		if err != nil {
			log.Errorf("upsert %s: %s", ex.Name, err)
			continue
		}
		log.Debugf("%s -> %d", ex.Name, id)
		upserted++
	}

	log.Printf("upserted %d/%d exercises", upserted, len(exercises))
	log.Println("send SIGHUP to a running gymcoach service to drop its cached standards")
}
