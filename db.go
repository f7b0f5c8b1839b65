// db.go - SQLite storage for visitor, session and event records
package main

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

func initDB() {
	dbPath := envOrDefault("DB_PATH", "portfolio.db")

	var err error
	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,  -- Store hashed IP instead of raw IP
			user_agent TEXT,
			path TEXT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			country TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			visitor_id TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			duration_seconds INTEGER DEFAULT 0,
			engagement_score INTEGER DEFAULT 0,
			bounce_risk TEXT DEFAULT 'high',
			max_scroll_depth INTEGER DEFAULT 0,
			mouse_movements INTEGER DEFAULT 0,
			clicks INTEGER DEFAULT 0,
			keystrokes INTEGER DEFAULT 0,
			form_interactions INTEGER DEFAULT 0,
			page_views INTEGER DEFAULT 1,
			country TEXT,
			language TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT,
			name TEXT NOT NULL,
			properties TEXT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatal("Failed to create schema:", err)
		}
	}

	log.Printf("Database initialized at %s", dbPath)
}
