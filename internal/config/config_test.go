package config

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	RegisterExtractFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper(), newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.DebugMode)
	assert.False(t, cfg.Parallel)
	assert.False(t, cfg.Overwrite)
}

func TestLoad_Flags(t *testing.T) {
	fs := newFlagSet(t, "-e", "shift_jis", "-o", "/tmp/out", "--format", "JSON", "-d", "-p", "-w", "8", "--overwrite")
	cfg, err := Load(NewViper(), fs)
	require.NoError(t, err)

	assert.Equal(t, "shift_jis", cfg.Encoding)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.DebugMode)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Overwrite)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TXTAR_ENCODING", "euc-jp")
	t.Setenv("TXTAR_OUTPUT", "/env/out")
	t.Setenv("TXTAR_WORKERS", "2")

	cfg, err := Load(NewViper(), newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, "euc-jp", cfg.Encoding)
	assert.Equal(t, "/env/out", cfg.OutputDir)
	assert.Equal(t, 2, cfg.Workers)

	// フラグが環境変数より優先される
	cfg, err = Load(NewViper(), newFlagSet(t, "-o", "/flag/out"))
	require.NoError(t, err)
	assert.Equal(t, "/flag/out", cfg.OutputDir)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(NewViper(), newFlagSet(t, "--format", "xml"))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Load(NewViper(), newFlagSet(t, "-w", "0"))
	assert.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestDebugLogger(t *testing.T) {
	var buf bytes.Buffer

	// デバッグモード有効
	logger := NewDebugLoggerWithWriter(true, &buf)
	logger.Printf("test message %d\n", 123)
	assert.Contains(t, buf.String(), "test message 123")

	// デバッグモード無効
	buf.Reset()
	logger = NewDebugLoggerWithWriter(false, &buf)
	logger.Printf("should not appear\n")
	assert.Empty(t, buf.String())
}
