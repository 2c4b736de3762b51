package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishing-url-service/internal/core/domain"
)

func newTestRepo(t *testing.T) *sessionRepo {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSessionRepository(db, time.Hour).(*sessionRepo)
}

func TestSessionRepo_SaveGetUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s := domain.NewSession()
	s.Flash = &domain.Flash{URL: "http://192.168.1.1/login", Label: domain.LabelBad, Message: domain.MessageBad, Warnings: []string{"w"}}
	s.Push(domain.HistoryEntry{URL: "http://192.168.1.1/login", Label: domain.LabelBad})
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.History, got.History)
	require.NotNil(t, got.Flash)
	assert.Equal(t, []string{"w"}, got.Flash.Warnings)

	got.TakeFlash()
	got.Push(domain.HistoryEntry{URL: "https://example.com", Label: domain.LabelGood})
	require.NoError(t, repo.Save(ctx, got))

	again, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, again.Flash)
	assert.Len(t, again.History, 2)
	assert.Equal(t, "https://example.com", again.History[0].URL)
}

func TestSessionRepo_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), domain.NewSession().ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepo_Expired(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()
	repo.now = func() time.Time { return now }

	s := domain.NewSession()
	require.NoError(t, repo.Save(ctx, s))

	now = now.Add(2 * time.Hour)
	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	var n int
	require.NoError(t, repo.db.QueryRow(`SELECT COUNT(*) FROM web_session`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s := domain.NewSession()
	require.NoError(t, repo.Save(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
