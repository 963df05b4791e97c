package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"OPTBIND_TYPES", "OPTBIND_SUFFIX", "OPTBIND_BIND_IMPORT", "OPTBIND_VERBOSE"} {
		t.Setenv(key, "") // restores the original value after the test
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	want := &Config{
		Packages:   []string{"."},
		Suffix:     "_optbind.go",
		BindImport: "optbind/bind",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "optbind.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
types: [Options, ServerOptions]
packages:
  - ./cmd/server
suffix: _bind.go
dryRun: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := &Config{
		Types:      []string{"Options", "ServerOptions"},
		Packages:   []string{"./cmd/server"},
		Suffix:     "_bind.go",
		BindImport: "optbind/bind",
		DryRun:     true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPTBIND_TYPES", "Flags, Settings")
	t.Setenv("OPTBIND_BIND_IMPORT", "example.com/rt/bind")
	t.Setenv("OPTBIND_VERBOSE", "true")

	path := filepath.Join(t.TempDir(), "optbind.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types: [Options]\nsuffix: _bind.go\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Flags", "Settings"}, cfg.Types)
	assert.Equal(t, "_bind.go", cfg.Suffix)
	assert.Equal(t, "example.com/rt/bind", cfg.BindImport)
	assert.True(t, cfg.Verbose)
}

func TestLoad_BadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPTBIND_VERBOSE", "loud")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read environment")
	assert.Contains(t, err.Error(), `"loud"`)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = Parse([]byte("tipes: [Options]\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Parse([]byte("types: {"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := &Config{Types: []string{"Options"}, Suffix: "_x.go", Verbose: true}

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, SplitList("A, B"))
	assert.Equal(t, []string{"A"}, SplitList(" A ,, "))
	assert.Nil(t, SplitList(""))
}

func TestConfig_GeneratorConfig(t *testing.T) {
	cfg := &Config{Suffix: "_x.go", BindImport: "example.com/bind"}

	g := cfg.GeneratorConfig()
	assert.Equal(t, "_x.go", g.Suffix)
	assert.Equal(t, "example.com/bind", g.BindImport)
	assert.True(t, g.DebugUnformatted)
}
