package ptpconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fujicli.ini")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.Equal(t, defaultChunkSizeBytes, cfg.ChunkSizeBytes)
	require.Equal(t, VerbosityNormal, cfg.LogVerbosity)
	require.Equal(t, 0, cfg.USBTimeoutMS)
}

func TestLoadOverridesOnlyPresentKeys(t *testing.T) {
	path := writeTempConfig(t, "log_verbosity = debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, VerbosityDebug, cfg.LogVerbosity)
	require.Equal(t, defaultChunkSizeBytes, cfg.ChunkSizeBytes)
}

func TestLoadParsesAllKeys(t *testing.T) {
	path := writeTempConfig(t, "chunk_size_bytes = 2097152\nlog_verbosity = trace\nusb_timeout_ms = 5000\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2097152, cfg.ChunkSizeBytes)
	require.Equal(t, VerbosityTrace, cfg.LogVerbosity)
	require.Equal(t, 5000, cfg.USBTimeoutMS)
}

func TestLoadRejectsInvalidVerbosity(t *testing.T) {
	path := writeTempConfig(t, "log_verbosity = loud\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveChunkSize(t *testing.T) {
	path := writeTempConfig(t, "chunk_size_bytes = 0\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	require.Error(t, err)
}
