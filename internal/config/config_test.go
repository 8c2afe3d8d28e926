package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
	assert.Equal(t, "openai", cfg.DefaultLLM)
	assert.Equal(t, 0.7, cfg.LLMTemperature)
	assert.Equal(t, 1024, cfg.LLMMaxTokens)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 60, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DEFAULT_LLM", "anthropic")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("TRACING_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "anthropic", cfg.DefaultLLM)
	assert.Equal(t, 0.2, cfg.LLMTemperature)
	assert.Equal(t, 45*time.Second, cfg.LLMTimeout)
	assert.True(t, cfg.TracingEnabled)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("LLM_TEMPERATURE", "warm")
	t.Setenv("LLM_TIMEOUT", "soon")
	t.Setenv("TRACING_ENABLED", "definitely")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 0.7, cfg.LLMTemperature)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.False(t, cfg.TracingEnabled)
}
