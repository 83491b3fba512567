// Command migrate applies the database schema. Idempotent: every statement
// uses IF NOT EXISTS, so it is safe to run on an existing database.
package main

import (
	"context"
	"fmt"
	"os"

	"desapega-api/config"
	"desapega-api/pkg/log"
	"desapega-api/pkg/postgre"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT        NOT NULL,
	email         TEXT        NOT NULL,
	password_hash TEXT        NOT NULL,
	profile       TEXT        NOT NULL DEFAULT 'user',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email);

CREATE TABLE IF NOT EXISTS items (
	id          BIGSERIAL PRIMARY KEY,
	title       TEXT             NOT NULL,
	description TEXT             NOT NULL,
	price       DOUBLE PRECISION NOT NULL DEFAULT 0,
	available   BOOLEAN          NOT NULL DEFAULT TRUE,
	status      TEXT             NOT NULL DEFAULT 'DISPONIVEL'
	            CHECK (status IN ('DISPONIVEL', 'RESERVADO', 'DOADO_VENDIDO')),
	image_url   TEXT,
	owner_id    BIGINT           NOT NULL REFERENCES users (id),
	created_at  TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ      NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS items_owner_id_idx ON items (owner_id);
CREATE INDEX IF NOT EXISTS items_status_idx ON items (status);
CREATE INDEX IF NOT EXISTS items_created_at_idx ON items (created_at DESC);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	db, err := postgre.Connect(ctx, postgre.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Fatalf(ctx, "Failed to apply schema: %v", err)
	}

	logger.Info(ctx, "Schema applied")
}
