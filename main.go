package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	initDB()
	initAdminToken()
	initVisitorTracking()

	translator := newTranslator(translations)
	sink := newSinkFromEnv(db)
	tracker := newTracker(sink, db)
	tracker.Start()

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")
	r.Static("/files", "./files")

	r.Use(visitorTrackingMiddleware())

	// Home page route - rendered for the visitor's persisted locale
	r.GET("/", func(c *gin.Context) {
		locale := localeFromRequest(c)
		translator.SetLocale(locale)

		store := newCookieStore(c, visitorCookieMaxAge)
		visitorID := getVisitorID(store)
		sessionStore := newCookieStore(c, sessionCookieMaxAge)
		sessionID := getSessionID(sessionStore)
		tracker.Session(visitorID, sessionID)

		c.HTML(http.StatusOK, "index.html", translator.Page(locale))
	})

	// Locale toggle - persists the choice and sends the visitor back
	r.GET("/lang/:code", func(c *gin.Context) {
		code := c.Param("code")
		if !validLocale(code) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.SetCookie(localeCookie, code, visitorCookieMaxAge, "/", "", false, false)
		translator.SetLocale(code)

		if sid := sessionIDFromRequest(c); sid != "" {
			sink.Track("language_switch", map[string]any{
				"session_id": sid,
				"language":   code,
			})
		}
		c.Redirect(http.StatusFound, "/")
	})

	// CV download, localized
	r.GET("/cv", func(c *gin.Context) {
		locale := localeFromRequest(c)
		file := "files/Bouaziz-Ghassen-EN.pdf"
		if locale == "fr" {
			file = "files/Bouaziz-Ghassen-FR.pdf"
		}

		if sid := sessionIDFromRequest(c); sid != "" {
			sink.Track("cv_download", map[string]any{
				"session_id": sid,
				"language":   locale,
			})
		}
		c.FileAttachment(file, fmt.Sprintf("Bouaziz-Ghassen-CV-%s.pdf", locale))
	})

	// Contact form submission
	r.POST("/contact", func(c *gin.Context) {
		locale := localeFromRequest(c)

		var req ContactRequest
		if err := c.ShouldBind(&req); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": translator.Resolve(locale, "contact.form.error"),
			})
			return
		}

		if err := sendContactEmail(req); err != nil {
			sink.Track("form_error", map[string]any{"session_id": sessionIDFromRequest(c)})
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": translator.Resolve(locale, "contact.form.error"),
			})
			return
		}

		store := newCookieStore(c, visitorCookieMaxAge)
		trackLead(sink, getVisitorID(store), sessionIDFromRequest(c), req)

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": translator.Resolve(locale, "contact.form.success"),
		})
	})

	setupTrackingRoutes(r, tracker, sink)
	setupAdminRoutes(r)

	port := envOrDefault("PORT", "8080")
	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()
	log.Printf("Portfolio listening on :%s", port)

	// Flush live sessions before the process goes away.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	tracker.Stop()
}

// sessionIDFromRequest reads the session identity without creating one;
// sink emissions for sessionless requests are simply skipped upstream.
func sessionIDFromRequest(c *gin.Context) string {
	id, err := c.Cookie(sessionIDKey)
	if err != nil {
		return ""
	}
	return id
}

// TrackEventRequest is one raw interaction event posted by the page.
type TrackEventRequest struct {
	Type   string `json:"type" binding:"required"`
	Value  int    `json:"value"`
	Target string `json:"target"`
}

// IdentifyRequest carries the client-side context used for the visitor
// profile: locale, timezone (geolocation fallback key), and device info.
type IdentifyRequest struct {
	Timezone         string `json:"timezone"`
	Language         string `json:"language"`
	ScreenResolution string `json:"screen_resolution"`
	ViewportSize     string `json:"viewport_size"`
	Referrer         string `json:"referrer"`
	TouchSupport     bool   `json:"touch_support"`
}

func setupTrackingRoutes(r *gin.Engine, tracker *Tracker, sink EventSink) {
	track := r.Group("/track")

	// Raw interaction events. The tracker owns debouncing and counter
	// accrual; unknown session ids are dropped silently.
	track.POST("/event", func(c *gin.Context) {
		var req TrackEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event"})
			return
		}

		sessionID := sessionIDFromRequest(c)
		if sessionID == "" {
			c.Status(http.StatusNoContent)
			return
		}

		switch req.Type {
		case "scroll":
			tracker.RecordScroll(sessionID, req.Value)
		case "mousemove":
			tracker.RecordMouseMove(sessionID)
		case "click":
			tracker.RecordClick(sessionID, req.Target)
		case "keystroke":
			tracker.RecordKeystroke(sessionID)
		case "form_focus":
			tracker.RecordFormInteraction(sessionID)
		case "page_view":
			tracker.RecordPageView(sessionID)
		default:
			tracker.RecordVisibility(sessionID, req.Type)
		}
		c.Status(http.StatusNoContent)
	})

	// Visitor identification with geolocation enrichment.
	track.POST("/identify", func(c *gin.Context) {
		var req IdentifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		store := newCookieStore(c, visitorCookieMaxAge)
		visitorID := getVisitorID(store)
		sessionStore := newCookieStore(c, sessionCookieMaxAge)
		sessionID := getSessionID(sessionStore)
		tracker.Session(visitorID, sessionID)

		geo := lookupGeo(c.ClientIP(), req.Timezone)
		language := req.Language
		if language == "" {
			language = localeFromRequest(c)
		}
		tracker.SetContext(sessionID, language, geo.Country)

		sink.Identify(visitorID, map[string]any{
			"User Type":         "portfolio_visitor",
			"Country":           geo.Country,
			"City":              geo.City,
			"Region":            geo.Region,
			"ISP":               geo.ISP,
			"Timezone":          req.Timezone,
			"Language":          language,
			"Screen Resolution": req.ScreenResolution,
			"Viewport Size":     req.ViewportSize,
			"Referrer":          req.Referrer,
			"Touch Support":     req.TouchSupport,
		})

		c.JSON(http.StatusOK, gin.H{
			"visitor_id": visitorID,
			"session_id": sessionID,
			"country":    geo.Country,
		})
	})

	// Final flush, hit via sendBeacon on page unload.
	track.POST("/end", func(c *gin.Context) {
		if sessionID := sessionIDFromRequest(c); sessionID != "" {
			tracker.EndSession(sessionID)
		}
		c.Status(http.StatusNoContent)
	})
}
