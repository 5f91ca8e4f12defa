// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/folio-api/internal/core"
	"github.com/carterperez-dev/folio-api/internal/user"
)

// Seeds the single admin account. Running it again with the same username is
// a no-op.
func main() {
	if err := run(); err != nil {
		slog.Error("seed error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	databaseURL := os.Getenv("DATABASE_URL")
	username := os.Getenv("ADMIN_USERNAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")

	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if username == "" || email == "" || password == "" {
		return fmt.Errorf(
			"ADMIN_USERNAME, ADMIN_EMAIL and ADMIN_PASSWORD are required",
		)
	}

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close() //nolint:errcheck // best-effort close

	hash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &user.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}

	if err := user.NewRepository(db).Create(ctx, admin); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			slog.Info("admin account already exists", "username", username)
			return nil
		}
		return err
	}

	slog.Info("admin account created", "id", admin.ID, "username", username)
	return nil
}
