package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"eventcrew/rollcall/internal/config"
)

var DB *sqlx.DB

// InitPostgres connects sqlx to Postgres, retrying briefly so the server
// survives the database coming up alongside it.
func InitPostgres(cfg *config.Config) error {
	dsn := cfg.PostgresDSN()

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("failed to connect to postgres: %w", err)
}
