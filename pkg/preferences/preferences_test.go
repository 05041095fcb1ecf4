package preferences

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{in: "light", want: ThemeLight},
		{in: "DARK", want: ThemeDark},
		{in: " dark ", want: ThemeDark},
		{in: "", want: ThemeNone},
		{in: "solarized", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeNone.Toggle(), "unset toggles from the dark default")
}

func TestTheme_JSON(t *testing.T) {
	data, err := json.Marshal(fileDocument{Theme: ThemeLight})
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"light"}`, string(data))

	var doc fileDocument
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"dark"}`), &doc))
	assert.Equal(t, ThemeDark, doc.Theme)
}

func testStore(t *testing.T, store Store) {
	t.Helper()

	theme, err := store.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeNone, theme)

	require.NoError(t, store.SetTheme(ThemeLight))
	theme, err = store.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	require.NoError(t, store.SetTheme(ThemeDark))
	theme, err = store.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "settings")
	store := NewFileStore(dir)
	testStore(t, store)

	reopened := NewFileStore(dir)
	theme, err := reopened.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
}

func TestFileStore_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0644))

	store := NewFileStore(dir)
	_, err := store.GetTheme()
	assert.Error(t, err)

	require.NoError(t, store.SetTheme(ThemeLight))
	theme, err := store.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestBoltStore(t *testing.T) {
	db, err := OpenBolt(filepath.Join(t.TempDir(), "termfolio.db"))
	require.NoError(t, err)
	defer db.Close()

	testStore(t, db.For("session-a"))

	other, err := db.For("session-b").GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeNone, other, "keys are isolated")

	require.NoError(t, db.Delete("session-a"))
	theme, err := db.For("session-a").GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeNone, theme)
}

func TestBoltStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termfolio.db")

	db, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, db.For("k").SetTheme(ThemeLight))
	require.NoError(t, db.Close())

	db, err = OpenBolt(path)
	require.NoError(t, err)
	defer db.Close()

	theme, err := db.For("k").GetTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}
