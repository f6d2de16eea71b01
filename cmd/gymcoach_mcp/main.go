// Package main runs the gymcoach MCP server over stdio for a single user.
// The backend also mounts the same tools at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcoach/internal"
	"github.com/2beens/gymcoach/internal/config"
	"github.com/2beens/gymcoach/internal/db"
	gymstatsmcp "github.com/2beens/gymcoach/internal/gymstats/mcp"
	"github.com/2beens/gymcoach/internal/logging"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userID := flag.Int64("user", 0, "user id the tools act for")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	if *userID <= 0 {
		log.Fatalln("-user must be a positive user id")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	closeLog := logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		Console:     os.Stderr,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "gymcoach-mcp",
	})
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	metricsManager := metrics.NewManager("mcp", "gymcoach", prometheus.NewRegistry())
	trainingEngine := internal.NewTrainingEngine(cfg, dbPool, rdb, http.DefaultClient, metricsManager)

	service := gymstatsmcp.NewContextService(gymstatsmcp.NewPoolSchemaRepo(dbPool), trainingEngine)
	server := gymstatsmcp.NewServer(service, *userID)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
