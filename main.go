package main

import (
	"context"
	"log"

	"travel-buddy/config"
	"travel-buddy/di"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("[MAIN] Failed to initialize container: %v", err)
	}
	defer container.Close()

	n, err := container.DestinationsIndexerService.IndexDestinations()
	if err != nil {
		log.Fatalf("[MAIN] Failed to index destinations: %v", err)
	}
	log.Printf("[MAIN] Indexed %d destinations", n)
	container.DestinationsIndexerService.StartPeriodicJob(ctx, cfg.DestinationsIndexSchedule)
	container.PlacesService.StartSessionSweeper(ctx)

	container.TravelBuddyHttpServer.Start()
}
