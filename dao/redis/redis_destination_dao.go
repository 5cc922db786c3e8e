package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"travel-buddy/db"
	"travel-buddy/models"
)

const DESTINATIONS_GEO_KEY_V1 = "destinations_geo_v1"
const DESTINATIONS_GEO_MEMBER_FORMAT_V1 = "destinations_geo_member_v1:%s"

// RedisDestinationDAO keeps destinations in a Redis geo index.
type RedisDestinationDAO struct {
	client db.RedisClient
}

// NewRedisDestinationDAO initializes a RedisDestinationDAO with the Redis client.
func NewRedisDestinationDAO(client db.RedisClient) *RedisDestinationDAO {
	return &RedisDestinationDAO{client: client}
}

// UpsertDestination stores the destination as a geolocation with its JSON data.
func (dao *RedisDestinationDAO) UpsertDestination(d models.Listing) error {
	if d.Kind != models.KindDestination {
		return fmt.Errorf("[RedisDestinationDAO] listing %s is a %s, not a destination", d.ID, d.Kind)
	}
	ctx := dao.client.GetContext()
	member := fmt.Sprintf(DESTINATIONS_GEO_MEMBER_FORMAT_V1, d.ID)
	return dao.client.AddLocationWithJSON(ctx, DESTINATIONS_GEO_KEY_V1, member, d.Latitude, d.Longitude, d)
}

// GetNearbyDestinations returns indexed destinations within radius meters, nearest first.
func (dao *RedisDestinationDAO) GetNearbyDestinations(lat, lon, radius float64) ([]models.Listing, error) {
	destinationsJSON, err := dao.client.GetLocationsWithinRadius(DESTINATIONS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisDestinationDAO] failed to get destinations: %w", err)
	}

	destinations := make([]models.Listing, len(destinationsJSON))
	for i, raw := range destinationsJSON {
		if err := json.Unmarshal([]byte(raw), &destinations[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal destination JSON: %w", err)
		}
	}
	return destinations, nil
}

// ListIndexedDestinationIDs returns the ids of every indexed destination.
func (dao *RedisDestinationDAO) ListIndexedDestinationIDs() ([]string, error) {
	keys, err := dao.client.Keys(fmt.Sprintf(DESTINATIONS_GEO_MEMBER_FORMAT_V1, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list destination keys: %w", err)
	}
	prefix := fmt.Sprintf(DESTINATIONS_GEO_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// DeleteDestination drops the JSON of an indexed destination. Geo members
// without JSON are skipped on reads.
func (dao *RedisDestinationDAO) DeleteDestination(id string) error {
	key := fmt.Sprintf(DESTINATIONS_GEO_MEMBER_FORMAT_V1, id)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete destination key %s: %w", key, err)
	}
	log.Printf("[RedisDestinationDAO] Deleted destination %s", id)
	return nil
}
