package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactbook/contactbook/pkg/store"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("store", "", "")
	flags.StringP("output", "o", "", "")
	flags.String("log-level", "", "")
	flags.String("log-format", "", "")
	flags.String("log-file", "", "")
	return flags
}

// chdir moves into a fresh directory so no stray contactbook.yaml or .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONTACTBOOK_STORE", "CONTACTBOOK_OUTPUT", "CONTACTBOOK_LOG_LEVEL", "CONTACTBOOK_LOG_FORMAT", "CONTACTBOOK_LOG_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	clearEnv(t)

	cfg, err := Load(newFlags(), "")
	require.NoError(t, err)
	assert.Equal(t, store.DefaultPath, cfg.Store)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Log.Level)
}

func TestLoad_Precedence(t *testing.T) {
	dir := chdir(t)
	clearEnv(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "contactbook.yaml"), []byte(
		"store: from-file.json\noutput: yaml\nlog:\n  level: debug\n  format: json\n"), 0600))
	t.Setenv("CONTACTBOOK_OUTPUT", "json")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--store", "from-flag.json"}))

	cfg, err := Load(flags, "")
	require.NoError(t, err)
	assert.Equal(t, "from-flag.json", cfg.Store) // flag beats file
	assert.Equal(t, OutputJSON, cfg.Output)      // env beats file
	assert.Equal(t, "debug", cfg.Log.Level)      // file beats default
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	clearEnv(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CONTACTBOOK_STORE=dotenv.json\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("CONTACTBOOK_STORE") })

	cfg, err := Load(newFlags(), "")
	require.NoError(t, err)
	assert.Equal(t, "dotenv.json", cfg.Store)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	chdir(t)
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: custom.json\n"), 0600))

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.Store)

	_, err = Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidOutput(t *testing.T) {
	chdir(t)
	clearEnv(t)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"-o", "xml"}))

	_, err := Load(flags, "")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
