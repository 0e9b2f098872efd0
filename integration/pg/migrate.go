package pg

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrations holds the packaged SQL migrations creating the notify helper
// functions (rx_notify and the rx_notify_row trigger function). Exported
// so applications running their own goose pipeline can merge these files
// into it instead of calling Migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Migrate applies the packaged notify-helper migrations using goose,
// versioned in the standard goose table. Applications that already manage
// migrations with goose should merge the Migrations FS into their own
// pipeline rather than calling this.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	if pool == nil {
		return ErrNilPool
	}
	if log == nil {
		log = slog.Default()
	}

	fsys, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToApplyMigrations, err)
	}

	// goose speaks database/sql, so the pool is exposed through the pgx
	// stdlib adapter. Closing the db returns conns to the pool without
	// closing the pool itself.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToApplyMigrations, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToApplyMigrations, err)
	}

	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			"migration", r.Source.Path,
			"version", r.Source.Version,
			"duration", r.Duration)
	}

	return nil
}
