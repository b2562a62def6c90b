// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history", "exchanges.db"))
	require.NoError(t, err, "Open failed")
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"first", "second", "third"} {
		require.NoError(t, store.Record(ctx, q, "answer to "+q))
	}

	recent, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Newest first.
	require.Equal(t, "third", recent[0].Question)
	require.Equal(t, "second", recent[1].Question)
	require.Equal(t, "answer to third", recent[0].Answer)
	require.False(t, recent[0].At.IsZero(), "timestamp not persisted")
}

func TestRecent_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	recent, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, recent)
}

func TestRecent_NonPositiveLimitDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	for i := 0; i < 15; i++ {
		require.NoError(t, store.Record(ctx, "q", "a"))
	}

	recent, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 10)
}

func TestPrune(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "fresh", "a"))

	// Backdate one row past the retention window.
	_, err := store.db.Exec(
		"INSERT INTO exchanges (question, answer, asked_at) VALUES (?, ?, ?)",
		"stale", "a", time.Now().Add(-48*time.Hour).Unix())
	require.NoError(t, err)

	n, err := store.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "fresh", recent[0].Question)
}
