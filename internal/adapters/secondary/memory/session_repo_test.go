package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishing-url-service/internal/core/domain"
)

func TestSessionRepo_SaveGet(t *testing.T) {
	repo := NewSessionRepository(time.Hour, 0)
	ctx := context.Background()

	s := domain.NewSession()
	s.Push(domain.HistoryEntry{URL: "https://example.com", Label: domain.LabelGood})
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.History, got.History)

	// Mutating the returned copy does not touch the store.
	got.Push(domain.HistoryEntry{URL: "https://other.example", Label: domain.LabelBad})
	again, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, again.History, 1)
}

func TestSessionRepo_Expiry(t *testing.T) {
	repo := NewSessionRepository(time.Minute, 0).(*sessionRepo)
	now := time.Now()
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	s := domain.NewSession()
	require.NoError(t, repo.Save(ctx, s))

	now = now.Add(2 * time.Minute)
	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Empty(t, repo.entries)
}

func TestSessionRepo_SaveDuringExpiryCheckSurvives(t *testing.T) {
	repo := NewSessionRepository(time.Minute, 0).(*sessionRepo)
	base := time.Now()
	now := base
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	s := domain.NewSession()
	require.NoError(t, repo.Save(ctx, s))

	// The first clock read in Get sees the entry expired; a Save of the same
	// session lands before Get takes the write lock.
	now = base.Add(2 * time.Minute)
	refreshed := false
	repo.now = func() time.Time {
		if !refreshed {
			refreshed = true
			s.Push(domain.HistoryEntry{URL: "https://example.com", Label: domain.LabelGood})
			require.NoError(t, repo.Save(ctx, s))
		}
		return now
	}

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Len(t, got.History, 1)
	assert.Contains(t, repo.entries, s.ID)
}

func TestSessionRepo_Eviction(t *testing.T) {
	repo := NewSessionRepository(time.Hour, 2).(*sessionRepo)
	now := time.Now()
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	first, second, third := domain.NewSession(), domain.NewSession(), domain.NewSession()
	require.NoError(t, repo.Save(ctx, first))
	now = now.Add(time.Second)
	require.NoError(t, repo.Save(ctx, second))
	now = now.Add(time.Second)
	require.NoError(t, repo.Save(ctx, third))

	_, err := repo.Get(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = repo.Get(ctx, third.ID)
	assert.NoError(t, err)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo := NewSessionRepository(time.Hour, 0)
	ctx := context.Background()

	s := domain.NewSession()
	require.NoError(t, repo.Save(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
