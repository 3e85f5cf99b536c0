package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trex.log")

	logger, closeFn, err := New(Options{File: path, Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Info("dropped")
	logger.WithField("op", "delete").Warn("mutation failed")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mutation failed")
	assert.Contains(t, string(data), "op=delete")
	assert.NotContains(t, string(data), "dropped")
}

func TestNewDebugOverridesLevel(t *testing.T) {
	logger, closeFn, err := New(Options{Level: "error", Debug: true})
	require.NoError(t, err)
	defer func() { _ = closeFn() }()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestDiscardDefaultsToInfo(t *testing.T) {
	logger := Discard()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
