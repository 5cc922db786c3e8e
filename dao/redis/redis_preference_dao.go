package redis

import (
	"errors"
	"fmt"

	"travel-buddy/db"
	"travel-buddy/models"
)

const PREFERENCE_KEY_FORMAT_V1 = "prefs_v1:%s:%s"

const (
	LocationPromptDismissedFlag = "locationPromptDismissed"
	LocationPromptAcceptedFlag  = "locationPromptAccepted"
)

// RedisPreferenceDAO stores small per-session flags.
type RedisPreferenceDAO struct {
	client db.RedisClient
}

// NewRedisPreferenceDAO initializes a RedisPreferenceDAO with the Redis client.
func NewRedisPreferenceDAO(client db.RedisClient) *RedisPreferenceDAO {
	return &RedisPreferenceDAO{client: client}
}

// GetFlag reads a boolean flag. An unset flag is false.
func (dao *RedisPreferenceDAO) GetFlag(session, name string) (bool, error) {
	value, err := dao.client.Get(fmt.Sprintf(PREFERENCE_KEY_FORMAT_V1, session, name))
	if errors.Is(err, db.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read flag %s: %w", name, err)
	}
	return value == "true", nil
}

// SetFlag writes a boolean flag.
func (dao *RedisPreferenceDAO) SetFlag(session, name string, value bool) error {
	key := fmt.Sprintf(PREFERENCE_KEY_FORMAT_V1, session, name)
	if err := dao.client.Set(key, fmt.Sprintf("%t", value)); err != nil {
		return fmt.Errorf("failed to write flag %s: %w", name, err)
	}
	return nil
}

// LoadPromptState reads the location prompt flags of a session.
func (dao *RedisPreferenceDAO) LoadPromptState(session string) (models.LocationPromptState, error) {
	dismissed, err := dao.GetFlag(session, LocationPromptDismissedFlag)
	if err != nil {
		return models.LocationPromptState{}, err
	}
	accepted, err := dao.GetFlag(session, LocationPromptAcceptedFlag)
	if err != nil {
		return models.LocationPromptState{}, err
	}
	return models.LocationPromptState{Dismissed: dismissed, Accepted: accepted}, nil
}

// SavePromptState writes both location prompt flags of a session.
func (dao *RedisPreferenceDAO) SavePromptState(session string, state models.LocationPromptState) error {
	if err := dao.SetFlag(session, LocationPromptDismissedFlag, state.Dismissed); err != nil {
		return err
	}
	return dao.SetFlag(session, LocationPromptAcceptedFlag, state.Accepted)
}
