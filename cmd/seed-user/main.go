// seed-user создаёт учётную запись учителя в PostgreSQL.
// HTTP API регистрацию не предоставляет, поэтому учителя заводятся этой утилитой.
//
//	go run ./cmd/seed-user -username alice            # пароль спрашивается без эха
//	QUIZO_SEED_PASSWORD=secret go run ./cmd/seed-user -username alice
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/pribylovaa/go-quizo/internal/config"
	"github.com/pribylovaa/go-quizo/internal/pkg/redact"
	"github.com/pribylovaa/go-quizo/internal/storage/postgres"
)

const passwordEnv = "QUIZO_SEED_PASSWORD"

func main() {
	var (
		configPath string
		username   string
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&username, "username", "", "teacher username (required)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("dotenv_load_failed", slog.String("err", err.Error()))
	}

	if err := run(configPath, username); err != nil {
		fmt.Fprintln(os.Stderr, "seed-user:", err)
		os.Exit(1)
	}
}

func run(configPath, username string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.DB.Driver != config.DriverPostgres {
		return fmt.Errorf("db.driver %q: seeding requires postgres", cfg.DB.Driver)
	}

	password := os.Getenv(passwordEnv)
	if password == "" {
		pw, err := promptPassword(os.Stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = string(pw)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := postgres.New(ctx, cfg.DB.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.DB.Migrate {
		if err := st.Migrate(ctx); err != nil {
			return err
		}
	}

	user, err := createTeacher(ctx, st, clockwork.NewRealClock(), username, password)
	if err != nil {
		return err
	}

	slog.Info("teacher_created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", redact.Username(user.Username)),
	)
	fmt.Println(user.ID.String())

	return nil
}
