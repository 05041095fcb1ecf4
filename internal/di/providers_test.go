package di

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kcaldas/termfolio/pkg/config"
	"github.com/kcaldas/termfolio/pkg/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideCatalog(t *testing.T) {
	t.Setenv(config.EnvCatalog, "")
	cat, err := ProvideCatalog(ProvideConfigManager())
	require.NoError(t, err)
	assert.Equal(t, "bos", cat.Identity.User)

	t.Setenv(config.EnvCatalog, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = ProvideCatalog(ProvideConfigManager())
	assert.Error(t, err)
}

func TestInitializeLocalSession(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	t.Setenv(config.EnvCatalog, "")

	s, err := InitializeLocalSession()
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, LocalSessionID, s.ID())
	assert.Equal(t, preferences.ThemeDark, s.Theme())

	s.ToggleTheme()

	data, err := os.ReadFile(filepath.Join(dir, "preferences.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "light")
}

func TestSessionManagerDropsStoredTheme(t *testing.T) {
	t.Setenv(config.EnvCatalog, "")

	db, err := preferences.OpenBolt(filepath.Join(t.TempDir(), "termfolio.db"))
	require.NoError(t, err)
	defer db.Close()

	manager, err := InitializeSessionManager(db)
	require.NoError(t, err)

	s, err := manager.Create()
	require.NoError(t, err)

	s.ToggleTheme()

	theme, err := db.For(s.ID()).GetTheme()
	require.NoError(t, err)
	assert.Equal(t, preferences.ThemeLight, theme)

	require.NoError(t, manager.Delete(s.ID()))

	theme, err = db.For(s.ID()).GetTheme()
	require.NoError(t, err)
	assert.Equal(t, preferences.ThemeNone, theme)
}

func TestInitializeServer(t *testing.T) {
	t.Setenv(config.EnvCatalog, "")

	db, err := preferences.OpenBolt(filepath.Join(t.TempDir(), "termfolio.db"))
	require.NoError(t, err)
	defer db.Close()

	manager, err := InitializeSessionManager(db)
	require.NoError(t, err)
	defer manager.CloseAll()

	srv, err := InitializeServer(manager)
	require.NoError(t, err)
	assert.NotNil(t, srv)
}
