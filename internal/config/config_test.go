package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 4000.0, cfg.Materials.Fc)
	assert.Equal(t, 60000.0, cfg.Materials.Fy)
	assert.Equal(t, 29000000.0, cfg.Materials.Es)
	assert.Equal(t, 2.5, cfg.Geometry.Cover)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Output.Color)
}

func TestReadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acibeam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
materials:
  fc: 5000
  fy: 75000
geometry:
  cover: 3
server:
  addr: ":9090"
`), 0o644))

	t.Setenv("ACIBEAM_MATERIALS_FY", "80000")
	t.Setenv("ACIBEAM_OUTPUT_COLOR", "false")

	v := viper.New()
	Init(v, path)
	used, err := Read(v)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, cfg.Materials.Fc)
	assert.Equal(t, 80000.0, cfg.Materials.Fy, "env overrides file")
	assert.Equal(t, 29000000.0, cfg.Materials.Es, "default kept")
	assert.Equal(t, 3.0, cfg.Geometry.Cover)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.False(t, cfg.Output.Color)
}

func TestReadMissingSearchPathIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	Init(v, "")
	used, err := Read(v)
	require.NoError(t, err)
	assert.Empty(t, used)
}

func TestReadExplicitMissingFile(t *testing.T) {
	v := viper.New()
	Init(v, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Read(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("materials.fc", -1)

	_, err := Load(v)
	assert.ErrorContains(t, err, "materials.fc")
}
