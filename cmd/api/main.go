package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/delicias-da-thai/storefront/internal/app/api"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("storefront API failed: %v", err)
	}
}
