package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.Catalog)
	assert.True(t, cfg.Catalog.AllowZeroWeight)
	assert.Equal(t, "any", cfg.Catalog.BusinessIDFormat)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{TokenTTL: time.Hour},
		Catalog: &CatalogConfig{BusinessIDFormat: "uuid", ForbiddenTerms: []string{"replica"}},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Catalog.AllowZeroWeight)
	assert.Equal(t, "uuid", cfg.Catalog.BusinessIDFormat)
	assert.Equal(t, []string{"replica"}, cfg.Catalog.ForbiddenTerms)
}
