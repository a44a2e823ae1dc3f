package main

import (
	"database/sql"
	"flag"
	stdlog "log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/postgres"
	"marketplace/migrations"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	log := appLogger.With(logger.NewField("component", "migrator"))

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			log.Error("failed to load .env file", logger.NewField("error", err))
			os.Exit(1)
		}
	}

	// dotenv.Load may have parsed already; parsing again is harmless
	if !flag.Parsed() {
		flag.Parse()
	}

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	if err := run(log, command, flag.Args()); err != nil {
		log.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		os.Exit(1)
	}
	log.Info("migration finished", logger.NewField("command", command))
}

func run(log logger.Logger, command string, args []string) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", postgres.DSN(cfg))
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", logger.NewField("error", err))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	var extra []string
	if len(args) > 1 {
		extra = args[1:]
	}
	return goose.Run(command, db, ".", extra...)
}
