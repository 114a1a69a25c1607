package main

import (
	"log"
	"os"

	"go-context-registry/internal/api"
	"go-context-registry/internal/api/handler"
	"go-context-registry/internal/config"
	"go-context-registry/internal/store"
	"go-context-registry/internal/validator"
	"go-context-registry/pkg/router"
)

// @title Context Schema Registry API
// @version 1.0
// @description Schema version registry with validation and rollback for context documents.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load(os.Getenv("REGISTRY_CONFIG"))
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Open the registry DB and restore state
	mgr, db, err := store.OpenManager(cfg.Store.Path)
	if err != nil {
		log.Fatalf("❌ Failed to open registry store: %v", err)
	}
	defer db.Close()

	policy := validator.Policy{
		Strict:       cfg.Validation.Strict,
		AllowedHooks: cfg.Validation.AllowedHooks,
	}

	// Create router and register API routes
	r := router.New()
	api.RegisterRoutes(r, handler.New(mgr, policy))

	// Start server
	r.Start(cfg.Server.Addr)
}
