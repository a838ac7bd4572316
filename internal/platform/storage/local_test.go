package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	l, err := OpenLocal(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLocalSetGetDelete(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()
	p := Path{"users", "u1", "trainingTypes", "t1"}

	got, err := l.Get(ctx, p)
	require.NoError(t, err)
	assert.Nil(t, got, "absent document reads as nil, not an error")

	require.NoError(t, l.Set(ctx, p, map[string]string{"name": "Push"}))

	got, err = l.Get(ctx, p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Push"}`, string(got))

	// overwrite
	require.NoError(t, l.Set(ctx, p, map[string]string{"name": "Pull"}))
	got, err = l.Get(ctx, p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Pull"}`, string(got))

	require.NoError(t, l.Delete(ctx, p))
	got, err = l.Get(ctx, p)
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting again is a no-op
	require.NoError(t, l.Delete(ctx, p))
}

func TestLocalBucketedList(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	days := []string{"2025-01-03", "2025-01-17", "2025-02-01"}
	for _, d := range days {
		p := Path{"users", "u1", "attendances", d[:7], "days", d}
		require.NoError(t, l.Set(ctx, p, map[string]string{"date": d}))
	}

	jan, err := l.List(ctx, Path{"users", "u1", "attendances", "2025-01", "days"})
	require.NoError(t, err)
	assert.Len(t, jan, 2)
	assert.Contains(t, jan, "2025-01-03")
	assert.Contains(t, jan, "2025-01-17")

	feb, err := l.List(ctx, Path{"users", "u1", "attendances", "2025-02", "days"})
	require.NoError(t, err)
	assert.Len(t, feb, 1)

	empty, err := l.List(ctx, Path{"users", "u1", "attendances", "2025-03", "days"})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLocalBucketFilterUsesDateField(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	// health log ids are opaque, the bucket membership comes from the
	// record's own date field
	p1 := Path{"users", "u1", "healthLogs", "2025-01", "entries", "aaa"}
	p2 := Path{"users", "u1", "healthLogs", "2025-02", "entries", "bbb"}
	require.NoError(t, l.Set(ctx, p1, map[string]any{"date": "2025-01-10", "servingsTaken": 1.0}))
	require.NoError(t, l.Set(ctx, p2, map[string]any{"date": "2025-02-10", "servingsTaken": 2.0}))

	jan, err := l.List(ctx, Path{"users", "u1", "healthLogs", "2025-01", "entries"})
	require.NoError(t, err)
	require.Len(t, jan, 1)
	assert.Contains(t, jan, "aaa")
}

func TestLocalCollectionRootsAreIsolated(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	require.NoError(t, l.Set(ctx, Path{"users", "u1", "trainingTypes", "t1"}, map[string]string{"name": "A"}))
	require.NoError(t, l.Set(ctx, Path{"users", "u2", "trainingTypes", "t1"}, map[string]string{"name": "B"}))

	u1, err := l.List(ctx, Path{"users", "u1", "trainingTypes"})
	require.NoError(t, err)
	require.Len(t, u1, 1)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(u1["t1"], &doc))
	assert.Equal(t, "A", doc["name"])
}

func TestLocalSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.db")
	ctx := context.Background()

	l, err := OpenLocal(path)
	require.NoError(t, err)
	require.NoError(t, l.Set(ctx, Path{"ingredients", "i1"}, map[string]string{"name": "Zinc"}))
	require.NoError(t, l.Close())

	l, err = OpenLocal(path)
	require.NoError(t, err)
	defer l.Close()

	got, err := l.Get(ctx, Path{"ingredients", "i1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Zinc"}`, string(got))
}

func TestLocalIsLocalFallback(t *testing.T) {
	l := newTestLocal(t)
	assert.True(t, l.IsLocalFallback())
}

func TestLocalRejectsMalformedPaths(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	_, err := l.Get(ctx, Path{"users"})
	assert.Error(t, err)
	assert.Error(t, l.Set(ctx, Path{"users", "u1", "trainingTypes"}, nil))
	_, err = l.List(ctx, Path{"users", "u1"})
	assert.Error(t, err)
}
