package main

import (
	"context"
	"fmt"
	"os"
	"time"

	auction "auction-backend/internal/auctionService"
	"auction-backend/internal/config"
	"auction-backend/internal/server"
	"auction-backend/internal/store"
	"auction-backend/utils"
)

const storeConnectTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
	defer cancel()

	mongoStore, err := store.NewMongoStore(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		utils.Fatal("failed to connect to document store", map[string]any{
			"database": cfg.DatabaseName,
			"error":    err.Error(),
		})
	}
	defer func() {
		if err := mongoStore.Close(context.Background()); err != nil {
			utils.Error("failed to disconnect from document store", map[string]any{"error": err.Error()})
		}
	}()

	auctionSvc := auction.NewAuctionService(mongoStore)

	router := server.SetupRouter(auctionSvc)

	fmt.Printf("Starting auction server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
