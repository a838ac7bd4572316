package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalDocKey(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		wantRoot string
		wantID   string
	}{
		{
			name:     "bucketed attendance day",
			path:     Path{"users", "u1", "attendances", "2025-01", "days", "2025-01-05"},
			wantRoot: "users/u1/attendances",
			wantID:   "2025-01-05",
		},
		{
			name:     "bucketed health log entry",
			path:     Path{"users", "u1", "healthLogs", "2025-03", "entries", "log42"},
			wantRoot: "users/u1/healthLogs",
			wantID:   "log42",
		},
		{
			name:     "unbucketed top-level document",
			path:     Path{"ingredients", "vitamin-d3"},
			wantRoot: "ingredients",
			wantID:   "vitamin-d3",
		},
		{
			name:     "unbucketed nested document",
			path:     Path{"users", "u1", "trainingTypes", "t1"},
			wantRoot: "users/u1/trainingTypes",
			wantID:   "t1",
		},
		{
			name:     "user profile document",
			path:     Path{"users", "u1"},
			wantRoot: "users",
			wantID:   "u1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, id := localDocKey(tt.path)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestLocalCollectionKey(t *testing.T) {
	tests := []struct {
		name       string
		path       Path
		wantRoot   string
		wantPrefix string
	}{
		{
			name:       "bucketed days collection",
			path:       Path{"users", "u1", "attendances", "2025-01", "days"},
			wantRoot:   "users/u1/attendances",
			wantPrefix: "2025-01",
		},
		{
			name:       "bucketed entries collection",
			path:       Path{"users", "u1", "healthLogs", "2024-12", "entries"},
			wantRoot:   "users/u1/healthLogs",
			wantPrefix: "2024-12",
		},
		{
			name:       "unbucketed top-level collection",
			path:       Path{"supplementProducts"},
			wantRoot:   "supplementProducts",
			wantPrefix: "",
		},
		{
			name:       "unbucketed nested collection",
			path:       Path{"users", "u1", "trainingTypes"},
			wantRoot:   "users/u1/trainingTypes",
			wantPrefix: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, prefix := localCollectionKey(tt.path)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}

func TestCheckDocPath(t *testing.T) {
	assert.NoError(t, checkDocPath(Path{"users", "u1"}))
	assert.NoError(t, checkDocPath(Path{"users", "u1", "trainingTypes", "t1"}))
	assert.Error(t, checkDocPath(Path{"users"}))
	assert.Error(t, checkDocPath(Path{"users", "u1", "trainingTypes"}))
	assert.Error(t, checkDocPath(Path{}))
}

func TestCheckCollectionPath(t *testing.T) {
	assert.NoError(t, checkCollectionPath(Path{"users"}))
	assert.NoError(t, checkCollectionPath(Path{"users", "u1", "trainingTypes"}))
	assert.Error(t, checkCollectionPath(Path{"users", "u1"}))
	assert.Error(t, checkCollectionPath(Path{}))
}
