package labels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTitleFallbacks(t *testing.T) {
	l, err := New("")
	require.NoError(t, err)

	assert.Equal(t, "Library", l.Title(pager.Route{Key: "library", Title: "Library"}))
	assert.Equal(t, "library", l.Title(pager.Route{Key: "library"}))
}

func TestAccessibilityLabelFallbacks(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "Your games", l.AccessibilityLabel(pager.Route{Key: "lib", Title: "Library", AccessibilityLabel: "Your games"}))
	assert.Equal(t, "Library", l.AccessibilityLabel(pager.Route{Key: "lib", Title: "Library"}))
	assert.Equal(t, "lib", l.AccessibilityLabel(pager.Route{Key: "lib"}))
}

func TestPositionBuiltinLanguages(t *testing.T) {
	en, err := New("en-US")
	require.NoError(t, err)
	assert.Equal(t, "Page 2 of 3", en.Position(1, 3))
	assert.Equal(t, "No pages", en.Position(0, 0))

	de, err := New("de")
	require.NoError(t, err)
	assert.Equal(t, "Seite 2 von 3", de.Position(1, 3))
	assert.Equal(t, language.German, de.Language())
}

func TestUnknownLanguageUsesEnglish(t *testing.T) {
	l, err := New("ja")
	require.NoError(t, err)

	assert.Equal(t, "Page 1 of 1", l.Position(0, 1))
	assert.Equal(t, language.English, l.Language())
}

func TestInvalidLanguage(t *testing.T) {
	_, err := New("not a tag!")
	assert.Error(t, err)
}

func TestLoadBytesTranslatesRoutes(t *testing.T) {
	l, err := New("de")
	require.NoError(t, err)

	require.NoError(t, l.LoadBytes([]byte(`
"route.library.title" = "Bibliothek"
"route.library.accessibility" = "Deine Spiele"
`), "active.de.toml"))

	route := pager.Route{Key: "library", Title: "Library"}
	assert.Equal(t, "Bibliothek", l.Title(route))
	assert.Equal(t, "Deine Spiele", l.AccessibilityLabel(route))
	assert.Equal(t, "Settings", l.Title(pager.Route{Key: "settings", Title: "Settings"}), "untranslated routes keep their title")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "active.fr.toml"), []byte(`
"route.recent.title" = "Récents"
"pager.position" = "Page {{.Current}} sur {{.Total}}"
`), 0600))

	l, err := New("fr")
	require.NoError(t, err)
	require.NoError(t, l.LoadDir(dir))

	assert.Equal(t, "Récents", l.Title(pager.Route{Key: "recent", Title: "Recent"}))
	assert.Equal(t, "Page 3 sur 4", l.Position(2, 4))
	assert.Equal(t, language.French, l.Language())
}

func TestLoadBytesRejectsBadFile(t *testing.T) {
	l, err := New("")
	require.NoError(t, err)
	assert.Error(t, l.LoadBytes([]byte("= broken"), "active.en.toml"))
}
