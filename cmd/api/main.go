package main

import (
	"log"

	"resumeforge-backend/internal/bootstrap"
	"resumeforge-backend/internal/shared/config"
	"resumeforge-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting ResumeForge server on %s (provider=%s)", addr, cfg.AIProvider)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
