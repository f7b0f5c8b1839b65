// i18n.go - Translation engine and page binding registry
package main

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	defaultLocale = "en"
	localeCookie  = "lang"
)

var supportedLocales = []string{"en", "fr"}

// binding pairs a template field with the dotted translation key that
// fills it. The registry is built once; field-to-key correspondence is
// explicit rather than positional.
type binding struct {
	field string
	key   string
}

// pageBindings enumerates every scalar insertion point of the portfolio
// page: navigation, hero, section titles/subtitles, about, skills,
// contact details and form placeholders, footer, CV button.
var pageBindings = []binding{
	{"navHome", "nav.home"},
	{"navAbout", "nav.about"},
	{"navSkills", "nav.skills"},
	{"navExperience", "nav.experience"},
	{"navProjects", "nav.projects"},
	{"navContact", "nav.contact"},
	{"heroBadge", "hero.badge"},
	{"heroTitle", "hero.title"},
	{"heroName", "hero.name"},
	{"heroSubtitle", "hero.subtitle"},
	{"heroDescription", "hero.description"},
	{"statYears", "hero.stats.years"},
	{"statApps", "hero.stats.apps"},
	{"statSatisfaction", "hero.stats.satisfaction"},
	{"actionViewWork", "hero.actions.viewWork"},
	{"actionGetInTouch", "hero.actions.getInTouch"},
	{"aboutTitle", "about.title"},
	{"aboutSubtitle", "about.subtitle"},
	{"aboutHeading", "about.heading"},
	{"aboutDescription1", "about.description1"},
	{"aboutDescription2", "about.description2"},
	{"highlightPerformanceTitle", "about.highlights.performance.title"},
	{"highlightPerformanceDesc", "about.highlights.performance.description"},
	{"highlightAITitle", "about.highlights.ai.title"},
	{"highlightAIDesc", "about.highlights.ai.description"},
	{"highlightCollabTitle", "about.highlights.collaboration.title"},
	{"highlightCollabDesc", "about.highlights.collaboration.description"},
	{"skillsTitle", "skills.title"},
	{"skillsSubtitle", "skills.subtitle"},
	{"skillsMobile", "skills.categories.mobile"},
	{"skillsFullstack", "skills.categories.fullstack"},
	{"skillsCloud", "skills.categories.cloud"},
	{"experienceTitle", "experience.title"},
	{"experienceSubtitle", "experience.subtitle"},
	{"projectsTitle", "projects.title"},
	{"projectsSubtitle", "projects.subtitle"},
	{"contactTitle", "contact.title"},
	{"contactSubtitle", "contact.subtitle"},
	{"contactHeading", "contact.heading"},
	{"contactDescription", "contact.description"},
	{"contactEmailLabel", "contact.details.email"},
	{"contactPhoneLabel", "contact.details.phone"},
	{"contactLinkedInLabel", "contact.details.linkedin"},
	{"formName", "contact.form.name"},
	{"formEmail", "contact.form.email"},
	{"formSubject", "contact.form.subject"},
	{"formMessage", "contact.form.message"},
	{"formSend", "contact.form.send"},
	{"footerCopyright", "footer.copyright"},
	{"downloadCV", "downloadCV"},
}

// positionKeys and projectKeys order the timeline entries and project
// cards as they appear on the page.
var positionKeys = []string{"leStud", "ithake", "tifo", "genext"}
var projectKeys = []string{"ibitibi", "carteEco", "tifo", "womensDrive", "fridgee", "clicStore"}

// Position is one experience timeline entry, fully resolved for a locale.
type Position struct {
	Title            string
	Company          string
	Period           string
	Description      string
	Responsibilities []string
}

// Project is one project card, fully resolved for a locale.
type Project struct {
	Title       string
	Description string
	AppStore    string
	SourceCode  string
}

// Translator resolves dotted keys against the content table and owns the
// active locale. Page data is built per locale and cached; SetLocale with
// the already-active locale performs no rebuild.
type Translator struct {
	mu     sync.RWMutex
	table  map[string]dict
	locale string
	cache  map[string]gin.H
	builds int // rebuild counter, exported for tests via Builds()
}

func newTranslator(table map[string]dict) *Translator {
	return &Translator{
		table:  table,
		locale: defaultLocale,
		cache:  make(map[string]gin.H),
	}
}

// Resolve walks the nested table one dotted segment at a time. Numeric
// segments index into []string leaves. On any miss it logs a warning and
// returns the key itself so the gap stays visible instead of crashing
// the page.
func (t *Translator) Resolve(locale, key string) string {
	root, ok := t.table[locale]
	if !ok {
		log.Printf("Translation missing for key: %s in language: %s", key, locale)
		return key
	}
	var node any = root

	for _, segment := range strings.Split(key, ".") {
		switch v := node.(type) {
		case dict:
			child, ok := v[segment]
			if !ok {
				log.Printf("Translation missing for key: %s in language: %s", key, locale)
				return key
			}
			node = child
		case []string:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(v) {
				log.Printf("Translation missing for key: %s in language: %s", key, locale)
				return key
			}
			node = v[i]
		default:
			log.Printf("Translation missing for key: %s in language: %s", key, locale)
			return key
		}
	}

	s, ok := node.(string)
	if !ok {
		log.Printf("Translation missing for key: %s in language: %s", key, locale)
		return key
	}
	return s
}

// ResolveItem resolves one element of an itemized list key.
func (t *Translator) ResolveItem(locale, key string, index int) string {
	return t.Resolve(locale, key+"."+strconv.Itoa(index))
}

// resolveList returns a []string leaf, or nil (with a warning) when the
// path does not lead to a list.
func (t *Translator) resolveList(locale, key string) []string {
	var node any = t.table[locale]
	for _, segment := range strings.Split(key, ".") {
		v, ok := node.(dict)
		if !ok {
			node = nil
			break
		}
		node = v[segment]
	}
	list, ok := node.([]string)
	if !ok {
		log.Printf("Translation missing for key: %s in language: %s", key, locale)
		return nil
	}
	return list
}

// Locale returns the active locale.
func (t *Translator) Locale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.locale
}

// SetLocale switches the active locale and rebuilds the page bindings.
// Calling it with the already-active locale is a no-op.
func (t *Translator) SetLocale(locale string) {
	if !validLocale(locale) {
		log.Printf("Ignoring unsupported locale: %s", locale)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if locale == t.locale && t.cache[locale] != nil {
		return
	}
	t.locale = locale
	if t.cache[locale] == nil {
		t.cache[locale] = t.buildPage(locale)
	}
}

// Page returns the fully resolved template data for a locale, building
// and caching it on first use. Safe to call for any supported locale
// regardless of the active one.
func (t *Translator) Page(locale string) gin.H {
	if !validLocale(locale) {
		locale = defaultLocale
	}

	t.mu.RLock()
	page := t.cache[locale]
	t.mu.RUnlock()
	if page != nil {
		return page
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cache[locale] == nil {
		t.cache[locale] = t.buildPage(locale)
	}
	return t.cache[locale]
}

// Builds reports how many full rebind passes have run.
func (t *Translator) Builds() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.builds
}

// buildPage performs one full rebind pass: every registered binding is
// resolved against the given locale. Callers hold t.mu.
func (t *Translator) buildPage(locale string) gin.H {
	t.builds++

	page := gin.H{"lang": locale, "langToggle": strings.ToUpper(locale)}
	for _, b := range pageBindings {
		page[b.field] = t.Resolve(locale, b.key)
	}

	positions := make([]Position, 0, len(positionKeys))
	for _, k := range positionKeys {
		prefix := "experience.positions." + k
		positions = append(positions, Position{
			Title:            t.Resolve(locale, prefix+".title"),
			Company:          t.Resolve(locale, prefix+".company"),
			Period:           t.Resolve(locale, prefix+".period"),
			Description:      t.Resolve(locale, prefix+".description"),
			Responsibilities: t.resolveList(locale, prefix+".responsibilities"),
		})
	}
	page["positions"] = positions

	projects := make([]Project, 0, len(projectKeys))
	for _, k := range projectKeys {
		prefix := "projects.items." + k
		projects = append(projects, Project{
			Title:       t.Resolve(locale, prefix+".title"),
			Description: t.Resolve(locale, prefix+".description"),
			AppStore:    t.Resolve(locale, prefix+".appStore"),
			SourceCode:  t.Resolve(locale, prefix+".sourceCode"),
		})
	}
	page["projects"] = projects

	return page
}

func validLocale(locale string) bool {
	for _, l := range supportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// localeFromRequest reads the visitor's persisted locale preference,
// falling back to the default when absent or unsupported.
func localeFromRequest(c *gin.Context) string {
	locale, err := c.Cookie(localeCookie)
	if err != nil || !validLocale(locale) {
		return defaultLocale
	}
	return locale
}
