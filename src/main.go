package main

import (
	"context"
	"log"
	"net/http"

	"paymill-mirror/src/api"
	"paymill-mirror/src/config"
	"paymill-mirror/src/db"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("DB schema setup failed: %v", err)
	}

	db.InitCache()

	// Router
	router := api.NewRouter(pool, cfg)

	if cfg.ReadOnly {
		log.Println("INFO: Running in read-only mode")
	}
	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
