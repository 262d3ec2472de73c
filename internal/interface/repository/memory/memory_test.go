package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightcast-service/internal/domain/entity"
)

func TestHistoryCapacity(t *testing.T) {
	repo := NewHistoryRepository()
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		item := &entity.HistoryItem{
			ID:        fmt.Sprintf("item-%d", i),
			Timestamp: int64(i * 1000),
			HTML:      "<html></html>",
		}
		require.NoError(t, repo.Append(ctx, item))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, entity.MaxHistoryItems)

	// Most recent first, the oldest (item-1) evicted.
	assert.Equal(t, "item-6", items[0].ID)
	assert.Equal(t, "item-2", items[len(items)-1].ID)
	for _, item := range items {
		assert.NotEqual(t, "item-1", item.ID)
	}
}

func TestHistoryClear(t *testing.T) {
	repo := NewHistoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &entity.HistoryItem{ID: "a", Timestamp: 1}))
	require.NoError(t, repo.Clear(ctx))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestConfigRoundTrip(t *testing.T) {
	repo := NewConfigRepository()
	ctx := context.Background()

	initial, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultAppConfig(), initial)

	saved := entity.AppConfig{
		Provider:        entity.ProviderOpenAI,
		OpenAIKey:       "sk-test",
		MailFromName:    "Agência",
		MailFromAddress: "reservas@example.com",
	}
	require.NoError(t, repo.Save(ctx, saved))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestAgentDefaultsWhenEmpty(t *testing.T) {
	repo := NewAgentRepository()
	ctx := context.Background()

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultAgent().Name, active.Name)

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.True(t, profiles[0].IsActive)
}

func TestAgentSingleActive(t *testing.T) {
	repo := NewAgentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.AgentProfile{ID: "a", Name: "Ana", IsActive: true}))
	require.NoError(t, repo.Create(ctx, &entity.AgentProfile{ID: "b", Name: "Bruno"}))
	require.NoError(t, repo.SetActive(ctx, "b"))

	profiles, err := repo.List(ctx)
	require.NoError(t, err)

	activeCount := 0
	for _, p := range profiles {
		if p.IsActive {
			activeCount++
			assert.Equal(t, "b", p.ID)
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestAgentDeleteActivePromotesFirst(t *testing.T) {
	repo := NewAgentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.AgentProfile{ID: "a", Name: "Ana"}))
	require.NoError(t, repo.Create(ctx, &entity.AgentProfile{ID: "b", Name: "Bruno", IsActive: true}))
	require.NoError(t, repo.Delete(ctx, "b"))

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", active.ID)
	assert.True(t, active.IsActive)
}
