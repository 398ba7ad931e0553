package surreal

import (
	"encoding/json"
	"fmt"

	"gearbase/config"

	"github.com/rs/zerolog/log"
	"github.com/surrealdb/surrealdb.go"
)

// Connection wraps the shared SurrealDB websocket client. The client is safe
// to share across request goroutines; the store itself arbitrates write
// ordering, the application adds no locking on top.
type Connection struct {
	DB *surrealdb.DB
}

func New(config *config.Config) *Connection {
	cfg := config.DB.Surreal

	db, err := surrealdb.New(cfg.URL)
	if err != nil {
		log.Fatal().Err(err).Str("url", cfg.URL).Msg("Failed to connect to SurrealDB")
	}

	if _, err := db.Signin(map[string]any{
		"user": cfg.Username,
		"pass": cfg.Password,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to sign in to SurrealDB")
	}

	if _, err := db.Use(cfg.Namespace, cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to select SurrealDB namespace/database")
	}

	log.Info().
		Str("url", cfg.URL).
		Str("ns", cfg.Namespace).
		Str("db", cfg.Database).
		Msg("Connected to SurrealDB")

	return &Connection{DB: db}
}

// Unmarshal maps a raw SurrealDB result (decoded JSON: maps and slices) onto
// the given struct or slice via a JSON round trip.
func Unmarshal(data any, v any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to re-encode surreal result: %w", err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode surreal result: %w", err)
	}

	return nil
}
