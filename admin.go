// admin.go - Privacy-conscious admin dashboard over the analytics tables
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Privacy-conscious visitor tracking struct
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // Hashed instead of raw IP for privacy
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
	Country   string    `json:"country,omitempty"`
}

type SessionRecord struct {
	SessionID       string    `json:"session_id"`
	VisitorID       string    `json:"visitor_id"`
	StartedAt       time.Time `json:"started_at"`
	DurationSeconds int       `json:"duration_seconds"`
	EngagementScore int       `json:"engagement_score"`
	BounceRisk      string    `json:"bounce_risk"`
	MaxScrollDepth  int       `json:"max_scroll_depth"`
	PageViews       int       `json:"page_views"`
	Country         string    `json:"country,omitempty"`
	Language        string    `json:"language,omitempty"`
}

type AdminStats struct {
	TotalVisitors      int64            `json:"total_visitors"`
	UniqueVisitors     int64            `json:"unique_visitors"`
	VisitorsToday      int64            `json:"visitors_today"`
	VisitorsThisWeek   int64            `json:"visitors_this_week"`
	TotalSessions      int64            `json:"total_sessions"`
	TotalEvents        int64            `json:"total_events"`
	AvgEngagementScore float64          `json:"avg_engagement_score"`
	AvgSessionSeconds  float64          `json:"avg_session_seconds"`
	BounceRisk         map[string]int64 `json:"bounce_risk"`
	RecentSessions     []SessionRecord  `json:"recent_sessions"`
	RecentVisitors     []VisitorMetric  `json:"recent_visitors"`
}

var adminToken string
var hashingSalt string

// Initialize admin system with privacy considerations
func initAdminToken() {
	adminToken = generateAdminToken()
	hashingSalt = generateAdminToken() // Use for IP hashing

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", adminToken)
	}

	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address for privacy compliance (consistent per IP)
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16] // Truncate for storage efficiency
}

// Middleware to check admin authentication
func adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Privacy-conscious visitor tracking middleware
func visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip tracking for static files, tracking endpoints and admin pages
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/files/") ||
			strings.HasPrefix(path, "/track/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/privacy") {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		// Track visitor with hashed IP in background
		go trackVisitorPrivacy(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

// Track visitor with privacy protections
func trackVisitorPrivacy(ip, userAgent, path string) {
	hashedIP := hashIP(ip)

	_, err := db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, time.Now())

	if err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

// Initialize privacy-conscious visitor tracking
func initVisitorTracking() {
	// Clean up old analytics data for privacy compliance (run in background)
	go cleanupOldVisitorData()

	log.Println("Privacy-conscious visitor tracking initialized")
}

// Cleanup old analytics data for privacy compliance
func cleanupOldVisitorData() {
	for _, table := range []string{"visitors", "sessions", "events"} {
		col := "timestamp"
		if table == "sessions" {
			col = "started_at"
		}
		result, err := db.Exec(`DELETE FROM ` + table + ` WHERE ` + col + ` < datetime('now', '-12 months')`)
		if err != nil {
			log.Printf("Error cleaning up old %s data: %v", table, err)
			continue
		}
		if rowsDeleted, _ := result.RowsAffected(); rowsDeleted > 0 {
			log.Printf("Privacy cleanup: Removed %d %s records older than 12 months", rowsDeleted, table)
		}
	}
}

// Get comprehensive admin statistics
func getAdminStats() (*AdminStats, error) {
	stats := &AdminStats{BounceRisk: make(map[string]int64)}

	// Total visitors
	err := db.QueryRow("SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisitors)
	if err != nil {
		return nil, err
	}

	// Unique visitors (by hashed IP)
	err = db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors)
	if err != nil {
		return nil, err
	}

	// Visitors today
	err = db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.VisitorsToday)
	if err != nil {
		return nil, err
	}

	// Visitors this week
	err = db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.VisitorsThisWeek)
	if err != nil {
		return nil, err
	}

	// Session aggregates
	err = db.QueryRow(`
		SELECT COUNT(*), COALESCE(AVG(engagement_score), 0), COALESCE(AVG(duration_seconds), 0)
		FROM sessions
	`).Scan(&stats.TotalSessions, &stats.AvgEngagementScore, &stats.AvgSessionSeconds)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COUNT(*) FROM events").Scan(&stats.TotalEvents)
	if err != nil {
		return nil, err
	}

	// Bounce risk distribution
	rows, err := db.Query(`SELECT bounce_risk, COUNT(*) FROM sessions GROUP BY bounce_risk`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var risk string
		var count int64
		if err := rows.Scan(&risk, &count); err != nil {
			continue
		}
		stats.BounceRisk[risk] = count
	}

	// Recent sessions with engagement scores
	rows, err = db.Query(`
		SELECT session_id, visitor_id, started_at, duration_seconds, engagement_score,
			bounce_risk, max_scroll_depth, page_views, COALESCE(country, ''), COALESCE(language, '')
		FROM sessions
		ORDER BY started_at DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s SessionRecord
		err := rows.Scan(&s.SessionID, &s.VisitorID, &s.StartedAt, &s.DurationSeconds,
			&s.EngagementScore, &s.BounceRisk, &s.MaxScrollDepth, &s.PageViews, &s.Country, &s.Language)
		if err != nil {
			continue
		}
		stats.RecentSessions = append(stats.RecentSessions, s)
	}

	// Recent visitors (with hashed IPs for privacy)
	rows, err = db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var visitor VisitorMetric
		err := rows.Scan(&visitor.ID, &visitor.HashedIP, &visitor.UserAgent, &visitor.Path, &visitor.Timestamp)
		if err != nil {
			continue
		}
		stats.RecentVisitors = append(stats.RecentVisitors, visitor)
	}

	return stats, nil
}

// Setup all admin routes
func setupAdminRoutes(r *gin.Engine) {
	// Privacy policy route
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		// Get credentials from environment variables
		adminUsername := os.Getenv("ADMIN_USERNAME")
		adminPassword := os.Getenv("ADMIN_PASSWORD")

		// Default credentials for development (remove in production)
		if adminUsername == "" {
			adminUsername = "admin"
			if gin.Mode() == gin.DebugMode {
				log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
			}
		}
		if adminPassword == "" {
			adminPassword = "admin123"
			if gin.Mode() == gin.DebugMode {
				log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
			}
		}

		if username == adminUsername && password == adminPassword {
			// Set secure cookie (24 hours)
			c.SetCookie("admin_token", adminToken, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
		} else {
			log.Printf("Failed admin login attempt from %s", hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
		}
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(adminAuthMiddleware())

	// Admin dashboard
	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := getAdminStats()
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	// Admin API endpoints for HTMX/AJAX
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := getAdminStats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// View tracked sessions
	adminGroup.GET("/sessions", func(c *gin.Context) {
		rows, err := db.Query(`
			SELECT session_id, visitor_id, started_at, duration_seconds, engagement_score,
				bounce_risk, max_scroll_depth, page_views, COALESCE(country, ''), COALESCE(language, '')
			FROM sessions
			ORDER BY started_at DESC
			LIMIT 200
		`)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load sessions",
			})
			return
		}
		defer rows.Close()

		var sessions []SessionRecord
		for rows.Next() {
			var s SessionRecord
			err := rows.Scan(&s.SessionID, &s.VisitorID, &s.StartedAt, &s.DurationSeconds,
				&s.EngagementScore, &s.BounceRisk, &s.MaxScrollDepth, &s.PageViews, &s.Country, &s.Language)
			if err != nil {
				continue
			}
			sessions = append(sessions, s)
		}

		c.HTML(http.StatusOK, "admin-sessions.html", gin.H{
			"sessions": sessions,
		})
	})

	// View visitors
	adminGroup.GET("/visitors", func(c *gin.Context) {
		rows, err := db.Query(`
			SELECT id, hashed_ip, user_agent, path, timestamp
			FROM visitors
			ORDER BY timestamp DESC
			LIMIT 200
		`)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		defer rows.Close()

		var visitors []VisitorMetric
		for rows.Next() {
			var visitor VisitorMetric
			err := rows.Scan(&visitor.ID, &visitor.HashedIP, &visitor.UserAgent, &visitor.Path, &visitor.Timestamp)
			if err != nil {
				continue
			}
			visitors = append(visitors, visitor)
		}

		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	// Privacy compliance endpoint - allow users to request data deletion
	adminGroup.POST("/privacy/delete-visitor-data", func(c *gin.Context) {
		// This would require the user to provide their IP or some identifier
		// For now, just clean up old data
		go cleanupOldVisitorData()
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := getAdminStats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Set headers for file download
		c.Header("Content-Type", "application/json")
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")

		log.Printf("Admin stats exported by %s", hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
