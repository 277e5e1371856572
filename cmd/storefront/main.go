package main

import (
	"context"
	"log"

	"github.com/alimikegami/storefront/config"
	"github.com/alimikegami/storefront/internal/app"
	"github.com/alimikegami/storefront/internal/infrastructure/storage"
)

func main() {
	config := config.CreateNewConfig()

	store, err := storage.GetStoreInstance(config.DataDir)
	if err != nil {
		log.Fatalf("Failed to open the data directory: %v", err)
	}

	storefront := app.App{
		Config: config,
		Store:  store,
	}

	if err := storefront.Start(context.Background()); err != nil {
		log.Fatalf("Storefront exited with an error: %v", err)
	}
}
