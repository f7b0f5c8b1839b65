// Command build substitutes analytics placeholder tokens in the deploy
// HTML with values from the environment. Unset variables leave the
// placeholder in place with a warning; the command always succeeds.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

var replacements = map[string]string{
	"YOUR_MIXPANEL_PROJECT_TOKEN": "MIXPANEL_PROJECT_TOKEN",
	"GTM-MKMMSLMW":                "GTM_CONTAINER_ID",
	"GA_MEASUREMENT_ID":           "GA4_MEASUREMENT_ID",
}

// substitute replaces each known placeholder with the value getenv
// returns for its environment key. Empty values leave the placeholder
// untouched.
func substitute(html string, getenv func(string) string) string {
	for placeholder, envKey := range replacements {
		value := getenv(envKey)
		if value == "" {
			log.Printf("Warning: %s not set, leaving %s in place", envKey, placeholder)
			continue
		}
		html = strings.ReplaceAll(html, placeholder, value)
		log.Printf("Replaced %s", placeholder)
	}
	return html
}

func main() {
	file := flag.String("file", "templates/index.html", "HTML file to rewrite in place")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Printf("Warning: could not read %s: %v", *file, err)
		return
	}

	html := substitute(string(data), os.Getenv)

	if err := os.WriteFile(*file, []byte(html), 0644); err != nil {
		log.Printf("Warning: could not write %s: %v", *file, err)
		return
	}
	log.Printf("Build completed, updated %s", *file)
}
