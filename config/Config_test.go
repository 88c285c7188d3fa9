package config

import (
	"PongArena/core"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, propertiesFolder), 0o755))
	path := filepath.Join(dir, propertiesFolder, env+".properties")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestReadProperties_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := ReadProperties(t.TempDir(), DefaultEnv)
	require.NoError(t, err)

	assert.False(t, cfg.FromFile)
	assert.Equal(t, 800.0, cfg.ArenaWidth)
	assert.Equal(t, 600.0, cfg.ArenaHeight)
	assert.Equal(t, 16*time.Millisecond, cfg.PhysicsPeriod)
	assert.Equal(t, 33*time.Millisecond, cfg.FramePeriod)
	assert.Equal(t, 250*time.Millisecond, cfg.KeyHold)
	assert.Equal(t, "Rune[w]", cfg.Keys[core.Player1Up])
	assert.Equal(t, "Down", cfg.Keys[core.Player2Down])
}

func TestReadProperties_Overrides(t *testing.T) {
	dir := writeProperties(t, "test", "ARENA_WIDTH=1024\nARENA_HEIGHT=768\nPHYSICS_TICK_MS=10\nP1_UP=Rune[e]\nP2_DOWN=PgDn\n")

	cfg, err := ReadProperties(dir, "test")
	require.NoError(t, err)

	assert.True(t, cfg.FromFile)
	assert.Equal(t, 1024.0, cfg.ArenaWidth)
	assert.Equal(t, 768.0, cfg.ArenaHeight)
	assert.Equal(t, 10*time.Millisecond, cfg.PhysicsPeriod)
	assert.Equal(t, 33*time.Millisecond, cfg.FramePeriod)
	assert.Equal(t, "Rune[e]", cfg.Keys[core.Player1Up])
	assert.Equal(t, "Rune[s]", cfg.Keys[core.Player1Down])
	assert.Equal(t, "PgDn", cfg.Keys[core.Player2Down])
}

func TestReadProperties_Invalid(t *testing.T) {
	testCases := map[string]string{
		"ZeroWidth":     "ARENA_WIDTH=0\n",
		"NegativeTick":  "PHYSICS_TICK_MS=-1\n",
		"ZeroFrame":     "FRAME_TICK_MS=0\n",
		"DuplicateKeys": "P1_UP=Up\n",
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			dir := writeProperties(t, DefaultEnv, content)
			_, err := ReadProperties(dir, DefaultEnv)
			assert.Error(t, err)
		})
	}
}

func TestConfig_KeyMap(t *testing.T) {
	km := Default().KeyMap()

	assert.Len(t, km, 4)
	assert.Equal(t, core.Player1Up, km.Lookup("Rune[w]"))
	assert.Equal(t, core.Player1Down, km.Lookup("Rune[s]"))
	assert.Equal(t, core.Player2Up, km.Lookup("Up"))
	assert.Equal(t, core.Player2Down, km.Lookup("Down"))
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
