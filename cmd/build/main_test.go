package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteReplacesConfiguredTokens(t *testing.T) {
	env := map[string]string{
		"MIXPANEL_PROJECT_TOKEN": "mp-123",
		"GTM_CONTAINER_ID":       "GTM-REAL",
		"GA4_MEASUREMENT_ID":     "G-REAL",
	}
	html := `init('YOUR_MIXPANEL_PROJECT_TOKEN'); gtm.js?id=GTM-MKMMSLMW; gtag/js?id=GA_MEASUREMENT_ID`

	out := substitute(html, func(key string) string { return env[key] })

	assert.Contains(t, out, "mp-123")
	assert.Contains(t, out, "GTM-REAL")
	assert.Contains(t, out, "G-REAL")
	assert.NotContains(t, out, "YOUR_MIXPANEL_PROJECT_TOKEN")
	assert.NotContains(t, out, "GTM-MKMMSLMW")
	assert.NotContains(t, out, "GA_MEASUREMENT_ID")
}

func TestSubstituteLeavesUnsetTokensInPlace(t *testing.T) {
	html := `init('YOUR_MIXPANEL_PROJECT_TOKEN'); gtm.js?id=GTM-MKMMSLMW`

	out := substitute(html, func(string) string { return "" })

	assert.Equal(t, html, out)
}

// The shipped template must actually carry every placeholder, otherwise
// the build step rewrites nothing.
func TestDeployTemplateCarriesPlaceholders(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "templates", "index.html"))
	require.NoError(t, err)
	html := string(data)

	for placeholder := range replacements {
		assert.True(t, strings.Contains(html, placeholder), "missing placeholder %s", placeholder)
	}
}
