// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity-registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ==========================
// Load Tests
// ==========================

func TestLoadRegistry(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "1.0.0",
		"lastUpdated": "2026-08-20T10:00:00Z",
		"activities": [
			{"id": "recommend-careers", "taskType": "recommend-careers", "category": "assessment"},
			{"id": "daily-tip", "taskType": "daily-tip", "category": "guidance"}
		]
	}`)

	reg, err := LoadRegistry(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", reg.Version)
	require.Len(t, reg.Activities, 2)

	activity, ok := reg.Get("daily-tip")
	require.True(t, ok)
	assert.Equal(t, "guidance", activity.Category)

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	assert.Len(t, reg.ByCategory("assessment"), 1)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// ==========================
// Validation Tests
// ==========================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		reg     ActivityRegistry
		wantErr string
	}{
		{
			name: "valid registry",
			reg: ActivityRegistry{Activities: []Activity{
				{ID: "a", TaskType: "a"},
				{ID: "b", TaskType: "b"},
			}},
		},
		{
			name:    "empty id",
			reg:     ActivityRegistry{Activities: []Activity{{TaskType: "a"}}},
			wantErr: "empty id",
		},
		{
			name:    "missing task type",
			reg:     ActivityRegistry{Activities: []Activity{{ID: "a"}}},
			wantErr: "no task type",
		},
		{
			name: "duplicate id",
			reg: ActivityRegistry{Activities: []Activity{
				{ID: "a", TaskType: "a"},
				{ID: "a", TaskType: "b"},
			}},
			wantErr: "duplicate activity id",
		},
		{
			name: "duplicate task type",
			reg: ActivityRegistry{Activities: []Activity{
				{ID: "a", TaskType: "a"},
				{ID: "b", TaskType: "a"},
			}},
			wantErr: "duplicate task type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
