package main

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/yoftil7/task-api/internal/config"
	"github.com/yoftil7/task-api/internal/handlers"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to reach database: %v", err)
	}

	handler := handlers.New(db, cfg.JWTKey, cfg.TokenTTL, cfg.ForbiddenWords)
	router := handlers.NewRouter(handler, cfg.JWTKey)

	addr := []string{}
	if cfg.Port != "" {
		addr = append(addr, ":"+cfg.Port)
	}
	log.Fatal(router.Run(addr...))
}
