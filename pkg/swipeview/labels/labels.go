// Package labels resolves localised titles and accessibility labels for pager
// routes.
//
// Messages are TOML files named active.<lang>.toml. Route messages use the IDs
// route.<key>.title and route.<key>.accessibility; anything missing falls back
// to the Route fields and finally to the route key.
package labels

import (
	"embed"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var builtin embed.FS

// Localizer looks up route labels for one language.
type Localizer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	requested language.Tag
	logger    *slog.Logger
}

// New creates a Localizer for lang (a BCP 47 tag, empty for English) with the
// built-in messages loaded.
func New(lang string) (*Localizer, error) {
	requested := language.English
	if lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("parsing language %q: %w", lang, err)
		}
		requested = tag
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := builtin.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		path := "locales/" + entry.Name()
		data, err := builtin.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, path); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	l := &Localizer{
		bundle:    bundle,
		requested: requested,
		logger:    logging.GetInternalLogger(),
	}
	l.refresh()
	return l, nil
}

// LoadDir adds every *.toml message file in dir.
func (l *Localizer) LoadDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		if _, err := l.bundle.LoadMessageFile(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		l.logger.Debug("loaded message file", "path", path)
	}
	l.refresh()
	return nil
}

// LoadBytes adds one message file. name must follow the active.<lang>.toml
// pattern so the language can be derived from it.
func (l *Localizer) LoadBytes(data []byte, name string) error {
	if _, err := l.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	l.refresh()
	return nil
}

// Language returns the best available language for the requested one.
func (l *Localizer) Language() language.Tag {
	tags := l.bundle.LanguageTags()
	_, index, confidence := language.NewMatcher(tags).Match(l.requested)
	if confidence == language.No {
		return language.English
	}
	return tags[index]
}

// Title returns the localised title of route.
func (l *Localizer) Title(route pager.Route) string {
	fallback := route.Title
	if fallback == "" {
		fallback = route.Key
	}
	return l.localize("route."+route.Key+".title", fallback, nil)
}

// AccessibilityLabel returns the localised accessibility label of route,
// falling back to its title.
func (l *Localizer) AccessibilityLabel(route pager.Route) string {
	fallback := route.AccessibilityLabel
	if fallback == "" {
		fallback = l.Title(route)
	}
	return l.localize("route."+route.Key+".accessibility", fallback, nil)
}

// Position describes the page at index out of count, one-based.
func (l *Localizer) Position(index, count int) string {
	if count <= 0 {
		return l.localize("pager.empty", "No pages", nil)
	}
	return l.localize("pager.position", "Page {{.Current}} of {{.Total}}", map[string]any{
		"Current": index + 1,
		"Total":   count,
	})
}

func (l *Localizer) localize(id, fallback string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
		TemplateData:   data,
	})
	// A missing translation still renders the default message alongside
	// the error.
	if msg == "" {
		if err != nil {
			l.logger.Debug("message lookup failed", "id", id, "error", err)
		}
		return fallback
	}
	return msg
}

func (l *Localizer) refresh() {
	l.localizer = i18n.NewLocalizer(l.bundle, l.requested.String())
}
