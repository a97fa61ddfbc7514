package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureTokenSecret_KeepsConfigured(t *testing.T) {
	assert.Equal(t, "configured-secret", EnsureTokenSecret("configured-secret"))
}

func TestEnsureTokenSecret_GeneratesWhenEmpty(t *testing.T) {
	first := EnsureTokenSecret("")
	second := EnsureTokenSecret("")

	assert.NotEmpty(t, first)
	// each call yields a fresh secret; callers must resolve it once at startup
	assert.NotEqual(t, first, second)
}

func TestSMTPConfigured(t *testing.T) {
	assert.False(t, SMTPConfig{}.Configured())
	assert.False(t, SMTPConfig{Username: "u"}.Configured())
	assert.True(t, SMTPConfig{Username: "u", Password: "p"}.Configured())
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", cfg.Addr())
}
