package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cusco-tours/internal/infra/db"
	"cusco-tours/internal/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	up := flag.Bool("up", false, "apply pending migrations")
	status := flag.Bool("status", false, "list pending migrations")
	flag.Parse()

	if !*up && !*status {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx := context.Background()

	if *status {
		pending, err := db.PendingMigrations(ctx, pool)
		if err != nil {
			slog.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		if len(pending) == 0 {
			fmt.Println("up to date")
			return
		}
		for _, m := range pending {
			fmt.Printf("pending: %04d_%s\n", m.Version, m.Name)
		}
		return
	}

	if err := db.RunMigrations(ctx, pool); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")
}
