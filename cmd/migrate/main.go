package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/yoftil7/task-api/internal/config"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	migration, err := os.ReadFile("migrations/001_initial_schema.sql")
	if err != nil {
		log.Fatalf("error reading migration file: %v", err)
	}

	if _, err := db.Exec(string(migration)); err != nil {
		log.Fatalf("error executing migration: %v", err)
	}

	log.Println("migration completed successfully")
}
