// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/corpus-converter/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyObjectStoreAccess, "  AKIAEXAMPLE  \n")
				writeFile(t, dir, KeyObjectStoreSecret, "sk_secret\n")
				return dir
			},
			want: map[string]string{
				KeyObjectStoreAccess: "AKIAEXAMPLE",
				KeyObjectStoreSecret: "sk_secret",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyObjectStoreAccess, "minioadmin")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, ".gitkeep", "")
				return dir
			},
			want: map[string]string{
				KeyObjectStoreAccess: "minioadmin",
			},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyObjectStoreSecret, "value")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				KeyObjectStoreSecret: "value",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	loaded := map[string]string{
		KeyObjectStoreAccess: "from-secrets-access",
		KeyObjectStoreSecret: "from-secrets-secret",
	}

	t.Run("fills missing credentials", func(t *testing.T) {
		cfg := types.ObjectStoreConfig{Endpoint: "localhost:9000"}
		Apply(&cfg, loaded)
		assert.Equal(t, "from-secrets-access", cfg.AccessKey)
		assert.Equal(t, "from-secrets-secret", cfg.SecretKey)
	})

	t.Run("existing values win over secret files", func(t *testing.T) {
		cfg := types.ObjectStoreConfig{
			AccessKey: "from-env",
			SecretKey: "also-from-env",
		}
		Apply(&cfg, loaded)
		assert.Equal(t, "from-env", cfg.AccessKey)
		assert.Equal(t, "also-from-env", cfg.SecretKey)
	})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
