package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-buddy/db"
	"travel-buddy/models"
)

func TestRedisPreferenceDAO_UnsetFlagIsFalse(t *testing.T) {
	dao := NewRedisPreferenceDAO(db.NewMockRedisClient(context.Background()))

	got, err := dao.GetFlag("s1", LocationPromptDismissedFlag)

	require.NoError(t, err)
	assert.False(t, got)
}

func TestRedisPreferenceDAO_PromptStateRoundTripPerSession(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	dao := NewRedisPreferenceDAO(client)

	require.NoError(t, dao.SavePromptState("s1", models.LocationPromptState{Dismissed: true}))

	s1, err := dao.LoadPromptState("s1")
	require.NoError(t, err)
	assert.Equal(t, models.LocationPromptState{Dismissed: true}, s1)
	assert.False(t, s1.ShouldPrompt())

	s2, err := dao.LoadPromptState("s2")
	require.NoError(t, err)
	assert.True(t, s2.ShouldPrompt())

	raw, err := client.Get("prefs_v1:s1:locationPromptDismissed")
	require.NoError(t, err)
	assert.Equal(t, "true", raw)
}
