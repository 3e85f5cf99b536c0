package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/trex/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		assert.True(t, cfg.ShowHidden)
		assert.Equal(t, int64(64*1024), cfg.Preview.MaxBytes)
		assert.Equal(t, 80, cfg.Preview.MaxLines)
		assert.Equal(t, 200, cfg.Preview.MaxLineWidth)
		assert.Equal(t, 50, cfg.Preview.MaxDirEntries)
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		path := createTestYAML(t, `
show_hidden: false
editor: "nvim -p"
preview:
  max_lines: 20
  binary_patterns: ["*.lock", "*.min.js"]
log:
  file: /tmp/trex.log
`)
		cfg, err := config.LoadFile(path)
		require.NoError(t, err)
		assert.False(t, cfg.ShowHidden)
		assert.Equal(t, "nvim -p", cfg.Editor)
		assert.Equal(t, 20, cfg.Preview.MaxLines)
		assert.Equal(t, 200, cfg.Preview.MaxLineWidth)
		assert.True(t, cfg.Preview.Highlight)
		assert.Equal(t, "dracula", cfg.Preview.Style)
		assert.Equal(t, []string{"*.lock", "*.min.js"}, cfg.Preview.BinaryPatterns)
		assert.Equal(t, "/tmp/trex.log", cfg.Log.File)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("non-positive limits fall back", func(t *testing.T) {
		path := createTestYAML(t, `
preview:
  max_bytes: 0
  max_dir_entries: -3
`)
		cfg, err := config.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, int64(64*1024), cfg.Preview.MaxBytes)
		assert.Equal(t, 50, cfg.Preview.MaxDirEntries)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		path := createTestYAML(t, "preview: [unclosed\n")
		_, err := config.LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid glob", func(t *testing.T) {
		path := createTestYAML(t, "preview:\n  binary_patterns: [\"[abc\"]\n")
		_, err := config.LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("sniff window larger than budget", func(t *testing.T) {
		path := createTestYAML(t, "preview:\n  max_bytes: 100\n  sniff_bytes: 500\n")
		_, err := config.LoadFile(path)
		assert.Error(t, err)
	})
}

func TestPreviewOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Preview.MaxLineWidth = 120
	opts := cfg.PreviewOptions()
	assert.Equal(t, 120, opts.MaxLineRunes)
	assert.Equal(t, cfg.Preview.MaxBytes, opts.MaxBytes)
}
