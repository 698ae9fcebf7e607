package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *UsageStore {
	t.Helper()
	store, err := NewUsageStore(filepath.Join(t.TempDir(), "jarvis.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndListToolUsage(t *testing.T) {
	store := newTestStore(t)

	store.RecordToolUse("get_weather", "weather in delhi", true, 150*time.Millisecond)
	store.RecordToolUse("open_app", "open vscode", false, 20*time.Millisecond)

	usages, err := store.RecentToolUsage(10)
	require.NoError(t, err)
	require.Len(t, usages, 2)

	// newest first
	assert.Equal(t, "open_app", usages[0].Tool)
	assert.False(t, usages[0].Success)
	assert.Equal(t, 20*time.Millisecond, usages[0].Duration)

	assert.Equal(t, "get_weather", usages[1].Tool)
	assert.True(t, usages[1].Success)
}

func TestRecentToolUsageHonorsLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordToolUse("tell_joke", "a joke", true, time.Millisecond)
	}

	usages, err := store.RecentToolUsage(3)
	require.NoError(t, err)
	assert.Len(t, usages, 3)
}

func TestRecordAndListDispatches(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordDispatch("what time is it", true, "orchestrator", "", 0.12))
	require.NoError(t, store.RecordDispatch("", false, "", "INVALID_QUERY", 0.0))

	records, err := store.RecentDispatches(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "INVALID_QUERY", records[0].ErrorCode)
	assert.False(t, records[0].Success)

	assert.Equal(t, "orchestrator", records[1].Method)
	assert.True(t, records[1].Success)
	assert.InDelta(t, 0.12, records[1].ExecutionTime, 1e-9)
}

func TestEmptyStoreListsNothing(t *testing.T) {
	store := newTestStore(t)

	usages, err := store.RecentToolUsage(10)
	require.NoError(t, err)
	assert.Empty(t, usages)

	records, err := store.RecentDispatches(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
