package main

import (
	"log"

	"pyedit/internal/app"
	"pyedit/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger, closer, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
