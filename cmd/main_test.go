package main

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-31"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.True(t, strings.Contains(output, "v1.0.0"))
	assert.True(t, strings.Contains(output, "abcd1234"))
	assert.True(t, strings.Contains(output, "2026-08-31"))
}

func TestParseConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := parseConfig("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "http://localhost:8080", cfg.AppURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "ewallet", cfg.PGDB)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 300*time.Second, cfg.UserCacheExp)
	assert.Empty(t, cfg.KafkaAddr, "Kafka is disabled by default")
	assert.Equal(t, "bill-events", cfg.KafkaTopic)
	assert.Equal(t, 24*time.Hour, cfg.JWTExp)
	assert.Equal(t, 30*time.Minute, cfg.ResetTokenExp)
	assert.Equal(t, "fake", cfg.MailProvider)
	assert.Equal(t, "fake", cfg.StorageProvider)
	assert.Equal(t, "users-avatars", cfg.UsersAvatarsFolder)
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_URL", "https://app.ewallet.com")
	t.Setenv("POSTGRES_DB", "finance")
	t.Setenv("KAFKA_ADDR", "localhost:9092")
	t.Setenv("RESET_PASSWORD_TOKEN_EXP_MINUTE", "15")
	t.Setenv("MAIL_PROVIDER", "smtp")
	t.Setenv("STORAGE_PROVIDER", "s3")
	t.Setenv("S3_USE_SSL", "true")

	cfg, err := parseConfig("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "https://app.ewallet.com", cfg.AppURL)
	assert.Equal(t, "finance", cfg.PGDB)
	assert.Equal(t, "localhost:9092", cfg.KafkaAddr)
	assert.Equal(t, 15*time.Minute, cfg.ResetTokenExp)
	assert.Equal(t, "smtp", cfg.MailProvider)
	assert.Equal(t, "s3", cfg.StorageProvider)
	assert.True(t, cfg.S3UseSSL)
}

func TestParseConfig_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"postgres port", "POSTGRES_PORT"},
		{"redis port", "REDIS_PORT"},
		{"jwt expiration", "JWT_EXP_SECOND"},
		{"reset token expiration", "RESET_PASSWORD_TOKEN_EXP_MINUTE"},
		{"user cache expiration", "USER_CACHE_EXP_SECOND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			t.Setenv(tt.key, "not-a-number")

			_, err := parseConfig("does-not-exist.env")
			assert.Error(t, err)
		})
	}
}
