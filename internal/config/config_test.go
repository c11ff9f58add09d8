package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, "mediagallery", cfg.Mongo.Database)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "gallery")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("UPLOAD_DIR", "/var/uploads")
	t.Setenv("SHUTDOWN_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "gallery", cfg.Mongo.Database)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "/var/uploads", cfg.Upload.Dir)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	_, err := Load()
	assert.Error(t, err)
}
