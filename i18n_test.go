package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectKeys flattens a translation tree into its set of dotted leaf
// paths. List leaves record their length so a missing item in one locale
// shows up as an asymmetry.
func collectKeys(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case dict:
		for k, child := range v {
			p := k
			if prefix != "" {
				p = prefix + "." + k
			}
			collectKeys(p, child, out)
		}
	case []string:
		out[prefix] = fmt.Sprintf("list(%d)", len(v))
	case string:
		out[prefix] = "string"
	default:
		out[prefix] = fmt.Sprintf("unexpected %T", v)
	}
}

func TestTranslationParity(t *testing.T) {
	en := make(map[string]string)
	fr := make(map[string]string)
	collectKeys("", translations["en"], en)
	collectKeys("", translations["fr"], fr)

	for key, kind := range en {
		assert.Equal(t, kind, fr[key], "key %q present in en but not matching in fr", key)
	}
	for key, kind := range fr {
		assert.Equal(t, kind, en[key], "key %q present in fr but not matching in en", key)
	}
}

func TestResolveReturnsLeaf(t *testing.T) {
	tr := newTranslator(translations)

	assert.Equal(t, "Home", tr.Resolve("en", "nav.home"))
	assert.Equal(t, "Accueil", tr.Resolve("fr", "nav.home"))
	assert.Equal(t, "Get In Touch", tr.Resolve("en", "hero.actions.getInTouch"))
}

func TestResolveMissingKeyReturnsKey(t *testing.T) {
	tr := newTranslator(translations)

	assert.Equal(t, "nav.nonexistent", tr.Resolve("en", "nav.nonexistent"))
	assert.Equal(t, "no.such.path", tr.Resolve("fr", "no.such.path"))
	// A non-leaf path is not a usable value either.
	assert.Equal(t, "nav", tr.Resolve("en", "nav"))
	// Unknown locale degrades the same way.
	assert.Equal(t, "nav.home", tr.Resolve("de", "nav.home"))
}

func TestResolveListIndex(t *testing.T) {
	tr := newTranslator(translations)

	key := "experience.positions.leStud.responsibilities"
	first := tr.ResolveItem("en", key, 0)
	assert.Equal(t, "Development of web dashboards with React.js for user data visualization", first)

	// Out-of-range index falls back to the full dotted key.
	assert.Equal(t, key+".99", tr.ResolveItem("en", key, 99))
}

func TestSetLocaleIdempotent(t *testing.T) {
	tr := newTranslator(translations)
	require.Equal(t, 0, tr.Builds())

	tr.SetLocale("fr")
	require.Equal(t, "fr", tr.Locale())
	require.Equal(t, 1, tr.Builds())

	// Same locale again: no second rebind pass.
	tr.SetLocale("fr")
	assert.Equal(t, 1, tr.Builds())

	tr.SetLocale("en")
	assert.Equal(t, 2, tr.Builds())

	// Switching back reuses the cached page.
	tr.SetLocale("fr")
	assert.Equal(t, 2, tr.Builds())
}

func TestSetLocaleRejectsUnsupported(t *testing.T) {
	tr := newTranslator(translations)
	tr.SetLocale("de")
	assert.Equal(t, defaultLocale, tr.Locale())
	assert.Equal(t, 0, tr.Builds())
}

func TestPageResolvesEveryBinding(t *testing.T) {
	tr := newTranslator(translations)

	for _, locale := range supportedLocales {
		page := tr.Page(locale)
		for _, b := range pageBindings {
			value, ok := page[b.field]
			require.True(t, ok, "field %q missing from %s page", b.field, locale)
			// A value equal to its own key means the lookup fell through.
			assert.NotEqual(t, b.key, value, "field %q unresolved for %s", b.field, locale)
		}

		positions, ok := page["positions"].([]Position)
		require.True(t, ok)
		require.Len(t, positions, len(positionKeys))
		for _, p := range positions {
			assert.NotEmpty(t, p.Responsibilities)
		}

		projects, ok := page["projects"].([]Project)
		require.True(t, ok)
		require.Len(t, projects, len(projectKeys))
	}
}

func TestPageUnsupportedLocaleFallsBack(t *testing.T) {
	tr := newTranslator(translations)
	page := tr.Page("de")
	assert.Equal(t, "en", page["lang"])
}
