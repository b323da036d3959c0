package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	loader := NewLoader()
	loader.SetConfigFile(writeConfig(t, "{}\n"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, 60*time.Second, cfg.Cache.TTL)
	require.Equal(t, ":8787", cfg.Server.Addr)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
source:
  spreadsheet_id: sheet-123
  worksheet: linkedin_chat_history
  credentials_file: /tmp/sa.json
owner:
  name: Kolin Simon
  profile_url: linkedin.com/in/kolin-simon
cache:
  ttl: 90s
server:
  addr: ":9000"
logging:
  level: debug
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "sheet-123", cfg.Source.SpreadsheetID)
	require.Equal(t, "linkedin_chat_history", cfg.Source.Worksheet)
	require.Equal(t, "Kolin Simon", cfg.Owner.Name)
	require.Equal(t, 90*time.Second, cfg.Cache.TTL)
	require.Equal(t, ":9000", cfg.Server.Addr)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.NoError(t, cfg.ValidateSource())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LINKUP_OWNER_NAME", "Env Owner")
	t.Setenv("LINKUP_SERVER_ADDR", ":7070")

	loader := NewLoader()
	loader.SetConfigFile(writeConfig(t, "owner:\n  name: File Owner\n"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "Env Owner", cfg.Owner.Name)
	require.Equal(t, ":7070", cfg.Server.Addr)
}

func TestValidateSource(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.ValidateSource())

	cfg.Source.SpreadsheetID = "sheet-123"
	cfg.Source.Worksheet = "ws"
	cfg.Owner.Name = "Owner"
	require.Error(t, cfg.ValidateSource(), "missing credentials")

	cfg.Source.CredentialsFile = "/tmp/sa.json"
	require.NoError(t, cfg.ValidateSource())

	cfg.Source.CredentialsJSON = "{}"
	require.Error(t, cfg.ValidateSource(), "both credential forms set")
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	require.Error(t, cfg.Validate())
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
