package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-invaders/internal/defs"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 78, s.Wave.Size())
	assert.Less(t, s.Points[defs.Common], s.Points[defs.Rare])
	assert.Less(t, s.Points[defs.Rare], s.Points[defs.UltraRare])
	assert.Less(t, s.EnemyHealth[defs.Common], s.EnemyHealth[defs.UltraRare])
}

func TestDefaultDoesNotShareWaveRows(t *testing.T) {
	s := Default()
	s.Wave.Formations[0].Rows[0] = 999
	assert.Equal(t, 60, defs.DefaultWave.Formations[0].Rows[0])
}

func TestParseOverlaysDefaults(t *testing.T) {
	s, err := Parse([]byte(`{
		"player_health": 32,
		"enemy_health": {"Common": 2},
		"points": {"Ultra Rare": 75}
	}`))
	require.NoError(t, err)
	assert.Equal(t, 32, s.PlayerHealth)
	assert.Equal(t, 2, s.EnemyHealth[defs.Common])
	assert.Equal(t, 2, s.EnemyHealth[defs.Rare], "untouched keys keep their defaults")
	assert.Equal(t, 75, s.Points[defs.UltraRare])
	assert.Equal(t, ScreenWidth, s.ScreenWidth)
}

func TestParseRejectsUnknownRarityKey(t *testing.T) {
	_, err := Parse([]byte(`{"points": {"Legendary": 100}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, defs.ErrUnknownRarity)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte(`{"lives": 3}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseWaveReplacesDefaultFormations(t *testing.T) {
	_, err := Parse([]byte(`{"wave": {"formations": [{"rarity": "Common", "count": 2, "rows": [100]}]}}`))
	require.ErrorIs(t, err, ErrInvalid, "a formation without gap stacks its enemies")

	s, err := Parse([]byte(`{"wave": {"formations": [{"rarity": "Common", "start_x": 100, "gap": 60, "count": 2, "rows": [100]}]}}`))
	require.NoError(t, err)
	require.Len(t, s.Wave.Formations, 1)
	assert.Equal(t, []defs.Slot{
		{Rarity: defs.Common, X: 100, Y: 100},
		{Rarity: defs.Common, X: 160, Y: 100},
	}, s.Wave.Slots())
	assert.Equal(t, 78, Default().Wave.Size(), "defaults are untouched")
}

func TestParseRejectsNonPositiveValues(t *testing.T) {
	_, err := Parse([]byte(`{"projectile_speed": 0}`))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte(`{"enemy_health": {"Rare": -1}}`))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidateRequiresEveryRarity(t *testing.T) {
	s := Default()
	delete(s.Points, defs.Rare)
	err := s.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "points[Rare]")
}

func TestPointsForUnknownRarity(t *testing.T) {
	s := Default()
	_, err := s.PointsFor(defs.Rarity(42))
	assert.ErrorIs(t, err, defs.ErrUnknownRarity)

	p, err := s.PointsFor(defs.Common)
	require.NoError(t, err)
	assert.Equal(t, 10, p)
}

func TestEnemyDefinition(t *testing.T) {
	s := Default()
	def, err := s.Enemy(defs.UltraRare)
	require.NoError(t, err)
	assert.Equal(t, 16, def.Health)
	assert.Equal(t, 50, def.Points)
	assert.Equal(t, 8, def.ProjectileDamage)
	assert.Equal(t, 10, def.Speed)
	assert.Equal(t, 64, def.Width)

	_, err = s.Enemy(defs.Rarity(-1))
	assert.ErrorIs(t, err, defs.ErrUnknownRarity)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed": 7, "verbose": true}`), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.Seed)
	assert.True(t, s.Verbose)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSeed:      "1234",
		EnvAssetsDir: "/tmp/sprites",
		EnvVerbose:   "true",
	}
	s := Default()
	require.NoError(t, ApplyEnv(s, func(k string) string { return env[k] }))
	assert.Equal(t, int64(1234), s.Seed)
	assert.Equal(t, "/tmp/sprites", s.AssetsDir)
	assert.True(t, s.Verbose)

	env[EnvSeed] = "not-a-number"
	assert.ErrorIs(t, ApplyEnv(Default(), func(k string) string { return env[k] }), ErrInvalid)
}

func TestFromEnvironmentWithDotEnv(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(settingsPath, []byte(`{"player_health": 5}`), 0o600))
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte(EnvConfigPath+"="+settingsPath+"\n"+EnvSeed+"=99\n"), 0o600))

	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvConfigPath)
	os.Unsetenv(EnvSeed)

	s, err := FromEnvironment(envPath)
	require.NoError(t, err)
	assert.Equal(t, 5, s.PlayerHealth)
	assert.Equal(t, int64(99), s.Seed)
}

func TestFromEnvironmentWithoutDotEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvSeed, "")
	s, err := FromEnvironment(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, PlayerHealth, s.PlayerHealth)
}

func TestRestartButtonCentered(t *testing.T) {
	s := Default()
	r := s.RestartButton()
	assert.Equal(t, s.Sizes.RestartButton.W, r.Dx())
	assert.Equal(t, s.Sizes.RestartButton.H, r.Dy())
	assert.Equal(t, s.ScreenWidth/2, (r.Min.X+r.Max.X)/2)
}
