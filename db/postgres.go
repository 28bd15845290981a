package db

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

const querySchema = `
CREATE TABLE IF NOT EXISTS query_log (
	id BIGSERIAL PRIMARY KEY,
	query TEXT NOT NULL,
	route TEXT NOT NULL,
	objective TEXT NOT NULL,
	risk_tolerance TEXT NOT NULL,
	horizon_years INT NOT NULL,
	source TEXT NOT NULL,
	duration_ms BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func Connect() error {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		fmt.Println("DATABASE_URL environment variable is not set")
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err := DB.Ping(); err != nil {
		return err
	}

	_, err = DB.Exec(querySchema)
	return err
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
