package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"time"

	"petcare_backend/internal/config"
	"petcare_backend/pkg/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
)

//go:embed schema.sql
var embeddedSchema string

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	return OpenDSN(ctx, cfg.DSN(), cfg.MaxOpenConns)
}

// OpenDSN is Open for a ready-made connection string.
func OpenDSN(ctx context.Context, dsn string, maxOpenConns int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	utils.LogInfo("Successfully connected to the database")
	return db, nil
}

// Schema returns the DDL at schemaPath, or the embedded schema when the path is empty.
func Schema(schemaPath string) (string, error) {
	if schemaPath == "" {
		return embeddedSchema, nil
	}
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return "", fmt.Errorf("could not read schema file %s: %w", schemaPath, err)
	}
	return string(content), nil
}

// ApplySchema executes the schema script. The embedded script is idempotent.
func ApplySchema(ctx context.Context, db *sql.DB, schemaPath string) error {
	schema, err := Schema(schemaPath)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("could not execute schema script: %w", err)
	}
	source := schemaPath
	if source == "" {
		source = "embedded"
	}
	utils.LogInfo("Database schema applied successfully", map[string]interface{}{"source": source})
	return nil
}

// Pinger reports store reachability for readiness checks.
type Pinger interface {
	PingContext(ctx context.Context) error
}
