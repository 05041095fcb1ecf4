package helpers

import (
	"os"
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/kcaldas/termfolio/cmd/tui/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigManagerDefaults(t *testing.T) {
	cm := NewConfigManager(t.TempDir())

	config := cm.GetConfig()
	assert.Equal(t, "true", config.OutputMode)
	assert.Equal(t, "auto", config.GlamourTheme)
	assert.True(t, config.ShowClock)
	assert.Equal(t, "%H:%M:%S", config.ClockFormat)
}

func TestConfigManagerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManager(dir)

	require.NoError(t, cm.UpdateConfig(func(c *types.Config) {
		c.OutputMode = "256"
		c.ShowClock = false
	}, true))

	reloaded := NewConfigManager(dir).GetConfig()
	assert.Equal(t, "256", reloaded.OutputMode)
	assert.False(t, reloaded.ShowClock)
	assert.Equal(t, "auto", reloaded.GlamourTheme)
}

func TestConfigManagerPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManager(dir)
	require.NoError(t, os.WriteFile(cm.Path(), []byte(`{"glamour_theme":"light"}`), 0644))

	config := cm.GetConfig()
	assert.Equal(t, "light", config.GlamourTheme)
	assert.True(t, config.ShowBorders)
}

func TestConfigManagerBrokenFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManager(dir)
	require.NoError(t, os.WriteFile(cm.Path(), []byte(`{`), 0644))

	_, err := cm.Load()
	assert.Error(t, err)
	assert.Equal(t, "true", cm.GetConfig().OutputMode)
}

func TestGetGocuiOutputMode(t *testing.T) {
	cm := NewConfigManager(t.TempDir())

	assert.Equal(t, gocui.OutputNormal, cm.GetGocuiOutputMode("normal"))
	assert.Equal(t, gocui.Output256, cm.GetGocuiOutputMode("256"))
	assert.Equal(t, gocui.OutputSimulator, cm.GetGocuiOutputMode("simulator"))
	assert.Equal(t, gocui.OutputTrue, cm.GetGocuiOutputMode(""))
	assert.Equal(t, gocui.OutputTrue, cm.GetGocuiOutputMode("bogus"))
}
