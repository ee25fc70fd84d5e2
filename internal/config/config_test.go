package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("ROOT_GEN_DIR", "")
	t.Setenv("WORKER_COUNT", "")

	cfg := Load()
	assert.Equal(t, "strings.en.toml", cfg.CatalogPath)
	assert.Equal(t, "gen", cfg.RootGenDir)
	assert.Equal(t, "ui/localized_strings.h", cfg.OutputHeader)
	assert.Equal(t, "ui/localized_strings.cc", cfg.OutputCC)
	assert.Equal(t, "frontend_string_ids.h", cfg.IDHeaderName)
	assert.Equal(t, 8, cfg.WorkerCount)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_PATH", "custom/strings.en.toml")
	t.Setenv("WORKER_COUNT", "3")

	cfg := Load()
	assert.Equal(t, "custom/strings.en.toml", cfg.CatalogPath)
	assert.Equal(t, 3, cfg.WorkerCount)
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not-a-number")
	cfg := Load()
	assert.Equal(t, 8, cfg.WorkerCount)
}
