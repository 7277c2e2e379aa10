package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

type dialect struct {
	sentinel string
	steps    []migrationStep
}

var dialects = map[string]dialect{
	"mysql": {
		sentinel: `SELECT COUNT(*) = 2 FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name IN ('foods', 'users')`,
		steps: []migrationStep{
			{
				Name: "create_table_foods",
				SQL: `CREATE TABLE IF NOT EXISTS foods (
  id          INT           NOT NULL AUTO_INCREMENT PRIMARY KEY,
  name        VARCHAR(255)  NULL,
  price       DECIMAL(10,2) NULL,
  category    VARCHAR(100)  NULL,
  description TEXT          NULL,
  image_url   VARCHAR(512)  NULL
)`,
			},
			{
				Name: "create_table_users",
				SQL: `CREATE TABLE IF NOT EXISTS users (
  id       INT          NOT NULL AUTO_INCREMENT PRIMARY KEY,
  username VARCHAR(100) NOT NULL UNIQUE,
  password VARCHAR(255) NOT NULL
)`,
			},
		},
	},
	"postgres": {
		sentinel: `SELECT to_regclass('public.foods') IS NOT NULL AND to_regclass('public.users') IS NOT NULL`,
		steps: []migrationStep{
			{
				Name: "create_table_foods",
				SQL: `CREATE TABLE IF NOT EXISTS foods (
  id          SERIAL        PRIMARY KEY,
  name        TEXT,
  price       NUMERIC(10,2),
  category    TEXT,
  description TEXT,
  image_url   TEXT
);`,
			},
			{
				Name: "create_table_users",
				SQL: `CREATE TABLE IF NOT EXISTS users (
  id       SERIAL PRIMARY KEY,
  username TEXT   NOT NULL UNIQUE,
  password TEXT   NOT NULL
);`,
			},
		},
	},
}

// EnsureMigrated creates the schema unless both foods and users already exist.
// Steps are idempotent, so a database holding only one of them is completed.
func EnsureMigrated(ctx context.Context, db *sql.DB, driver string, log *zap.Logger) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("driver", driver))
	log.Info("db_migration_check")

	var exists bool
	if err := db.QueryRowContext(ctx, d.sentinel).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	for _, step := range d.steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info("db_migration_step",
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
