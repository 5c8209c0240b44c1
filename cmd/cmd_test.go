package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"serverconf/core/logger"
	"serverconf/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// run executes the root command with args and returns its stdout.
// Flags persist between executions, so every call passes the flags it relies on.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

// captureLogs routes command logging to an observer for the rest of the test.
func captureLogs(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(level)
	previous := newLogger
	newLogger = func(*logger.Config) (*zap.Logger, error) {
		return zap.New(core), nil
	}
	t.Cleanup(func() { newLogger = previous })

	return logs
}

func clearEnv(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"HOST", "PORT", "ADMIN_JWT_SECRET", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(name, "")
	}
	return filepath.Join(t.TempDir(), ".env")
}

func TestResolveCmd(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		envFile := clearEnv(t)

		out, err := run(t, "resolve", "--env-file", envFile, "--log-level", "error", "--format", "json", "--redact=false")
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"host":"0.0.0.0","port":1337,"admin":{"auth":{"secret":"bf9f5023dae53bf8d8a67a74f909e43f"}}}`,
			out)
	})

	t.Run("Environment", func(t *testing.T) {
		envFile := clearEnv(t)
		t.Setenv("HOST", "127.0.0.1")
		t.Setenv("PORT", "8080")
		t.Setenv("ADMIN_JWT_SECRET", "x")

		out, err := run(t, "resolve", "--env-file", envFile, "--log-level", "error", "--format", "json", "--redact=false")
		require.NoError(t, err)
		assert.JSONEq(t, `{"host":"127.0.0.1","port":8080,"admin":{"auth":{"secret":"x"}}}`, out)
	})

	t.Run("DotenvAndRedact", func(t *testing.T) {
		envFile := clearEnv(t)
		require.NoError(t, os.WriteFile(envFile, []byte("PORT=4000\nADMIN_JWT_SECRET=abcdef123456\n"), 0o600))

		out, err := run(t, "resolve", "--env-file", envFile, "--log-level", "error", "--format", "env", "--redact")
		require.NoError(t, err)
		assert.Contains(t, out, "PORT=4000\n")
		assert.Contains(t, out, `ADMIN_JWT_SECRET="abcd****"`)
		assert.NotContains(t, out, "abcdef123456")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		envFile := clearEnv(t)

		_, err := run(t, "resolve", "--env-file", envFile, "--log-level", "error", "--format", "xml", "--redact=false")
		assert.ErrorIs(t, err, server.ErrUnknownFormat)
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		envFile := clearEnv(t)

		_, err := run(t, "resolve", "--env-file", envFile, "--log-level", "loud", "--format", "json", "--redact=false")
		assert.Error(t, err)
	})
}

func TestCheckCmd(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		envFile := clearEnv(t)
		t.Setenv("ADMIN_JWT_SECRET", "0123456789abcdef")

		out, err := run(t, "check", "--env-file", envFile, "--log-level", "error", "--strict=false")
		require.NoError(t, err)
		assert.Equal(t, "ok 0.0.0.0:1337\n", out)
	})

	t.Run("PlaceholderSecret", func(t *testing.T) {
		envFile := clearEnv(t)
		logs := captureLogs(t, zap.WarnLevel)

		out, err := run(t, "check", "--env-file", envFile, "--log-level", "error", "--strict=false")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "ok "))

		warnings := logs.FilterLevelExact(zap.WarnLevel).All()
		require.Len(t, warnings, 1)
		assert.Equal(t, true, warnings[0].ContextMap()["default_secret"])
		assert.Equal(t, "bf9f****", warnings[0].ContextMap()["admin_secret"])
	})

	t.Run("RealSecretNoWarning", func(t *testing.T) {
		envFile := clearEnv(t)
		t.Setenv("ADMIN_JWT_SECRET", "0123456789abcdef")
		logs := captureLogs(t, zap.WarnLevel)

		_, err := run(t, "check", "--env-file", envFile, "--log-level", "error", "--strict=false")
		require.NoError(t, err)
		assert.Zero(t, logs.Len())
	})

	t.Run("PlaceholderSecretStrict", func(t *testing.T) {
		envFile := clearEnv(t)

		_, err := run(t, "check", "--env-file", envFile, "--log-level", "error", "--strict")
		assert.ErrorIs(t, err, errPlaceholderSecret)
	})

	t.Run("InvalidPort", func(t *testing.T) {
		envFile := clearEnv(t)
		t.Setenv("PORT", "70000")

		_, err := run(t, "check", "--env-file", envFile, "--log-level", "error", "--strict=false")
		assert.ErrorIs(t, err, server.ErrInvalidPort)
	})
}

func TestSecretCmd(t *testing.T) {
	out, err := run(t, "secret")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ADMIN_JWT_SECRET=[0-9a-f]{32}\n$`), out)
}
