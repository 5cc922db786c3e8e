package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"travel-buddy/catalog"
	"travel-buddy/dao/redis"
	"travel-buddy/models"
)

// DestinationsIndexerService keeps the Redis geo index in line with the catalog.
type DestinationsIndexerService struct {
	catalog        *catalog.Catalog
	destinationDao *redis.RedisDestinationDAO
}

func NewDestinationsIndexerService(c *catalog.Catalog, destinationDao *redis.RedisDestinationDAO) *DestinationsIndexerService {
	return &DestinationsIndexerService{
		catalog:        c,
		destinationDao: destinationDao,
	}
}

// StartPeriodicJob launches the background loop at the given interval until ctx is done.
// A non-positive interval disables the job.
func (ds *DestinationsIndexerService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Printf("[DestinationsIndexerService] Periodic job disabled, interval %v is not positive.", interval)
		return
	}
	go ds.startPeriodicJob(ctx, interval)
}

func (ds *DestinationsIndexerService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[DestinationsIndexerService] Stopping periodic job.")
			return
		case <-ticker.C:
			log.Println("[DestinationsIndexerService] Running periodic destinations index job.")
			if n, err := ds.IndexDestinations(); err != nil {
				log.Printf("[DestinationsIndexerService] IndexDestinations returned error: %v", err)
			} else {
				log.Printf("[DestinationsIndexerService] Indexed %d destinations.", n)
			}
		}
	}
}

// IndexDestinations upserts every destination and removes indexed ids that
// are no longer in the catalog. It returns the number upserted.
func (ds *DestinationsIndexerService) IndexDestinations() (int, error) {
	destinations := ds.catalog.List(models.KindDestination)
	current := make(map[string]struct{}, len(destinations))
	for _, d := range destinations {
		if err := ds.destinationDao.UpsertDestination(d); err != nil {
			return 0, fmt.Errorf("failed to index destination %s: %w", d.ID, err)
		}
		current[d.ID] = struct{}{}
	}

	indexed, err := ds.destinationDao.ListIndexedDestinationIDs()
	if err != nil {
		return len(destinations), err
	}
	for _, id := range indexed {
		if _, ok := current[id]; ok {
			continue
		}
		if err := ds.destinationDao.DeleteDestination(id); err != nil {
			log.Printf("[DestinationsIndexerService] Could not remove %s: %v", id, err)
		}
	}
	return len(destinations), nil
}
