// sink.go - Best-effort analytics event sinks
package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

// EventSink receives named analytics events. Sinks are fire-and-forget:
// a failed or unconfigured sink loses the data point, it never fails the
// caller. Call sites always have a sink (noop when nothing is
// configured), so none of them branch on availability.
type EventSink interface {
	Track(name string, props map[string]any)
	Identify(id string, props map[string]any)
}

// noopSink is used when no collector is configured.
type noopSink struct{}

func (noopSink) Track(string, map[string]any)    {}
func (noopSink) Identify(string, map[string]any) {}

// multiSink fans every event out to all configured collectors.
type multiSink []EventSink

func (m multiSink) Track(name string, props map[string]any) {
	for _, s := range m {
		s.Track(name, props)
	}
}

func (m multiSink) Identify(id string, props map[string]any) {
	for _, s := range m {
		s.Identify(id, props)
	}
}

// newSinkFromEnv assembles the configured collectors: the product
// analytics API (Mixpanel), the tag-manager style collector (GA4
// measurement protocol), and the local events table that feeds the admin
// dashboard. With nothing configured the tracker still runs against a
// noop sink and keeps accruing state.
func newSinkFromEnv(db *sql.DB) EventSink {
	var sinks multiSink

	if token := os.Getenv("MIXPANEL_PROJECT_TOKEN"); token != "" {
		sinks = append(sinks, newMixpanelSink(token))
		log.Println("Analytics: Mixpanel sink enabled")
	}
	if id, secret := os.Getenv("GA4_MEASUREMENT_ID"), os.Getenv("GA4_API_SECRET"); id != "" && secret != "" {
		sinks = append(sinks, newGASink(id, secret))
		log.Println("Analytics: GA4 sink enabled")
	}
	if db != nil {
		sinks = append(sinks, &dbSink{db: db})
	}

	if len(sinks) == 0 {
		log.Println("Analytics: no sinks configured, events will be dropped")
		return noopSink{}
	}
	return sinks
}

// mixpanelSink sends events to the Mixpanel ingestion API.
type mixpanelSink struct {
	token     string
	trackURL  string
	engageURL string
	client    *http.Client
}

func newMixpanelSink(token string) *mixpanelSink {
	return &mixpanelSink{
		token:     token,
		trackURL:  "https://api.mixpanel.com/track",
		engageURL: "https://api.mixpanel.com/engage",
		client:    &http.Client{Timeout: 3 * time.Second},
	}
}

func (s *mixpanelSink) Track(name string, props map[string]any) {
	properties := map[string]any{
		"token": s.token,
		"time":  time.Now().Unix(),
	}
	for k, v := range props {
		properties[k] = v
	}
	if id, ok := props["session_id"]; ok {
		properties["distinct_id"] = id
	}

	s.post(s.trackURL, []map[string]any{{
		"event":      name,
		"properties": properties,
	}})
}

func (s *mixpanelSink) Identify(id string, props map[string]any) {
	s.post(s.engageURL, []map[string]any{{
		"$token":       s.token,
		"$distinct_id": id,
		"$set":         props,
	}})
}

func (s *mixpanelSink) post(endpoint string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	resp, err := s.client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return // best-effort, data point is lost
	}
	resp.Body.Close()
}

// gaSink sends events via the GA4 Measurement Protocol.
type gaSink struct {
	endpoint string
	client   *http.Client
}

func newGASink(measurementID, apiSecret string) *gaSink {
	return &gaSink{
		endpoint: fmt.Sprintf("https://www.google-analytics.com/mp/collect?measurement_id=%s&api_secret=%s",
			url.QueryEscape(measurementID), url.QueryEscape(apiSecret)),
		client: &http.Client{Timeout: 3 * time.Second},
	}
}

func (s *gaSink) Track(name string, props map[string]any) {
	clientID, _ := props["visitor_id"].(string)
	if clientID == "" {
		clientID = "anonymous"
	}

	payload := map[string]any{
		"client_id": clientID,
		"events": []map[string]any{{
			"name":   name,
			"params": props,
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return
	}
	resp.Body.Close()
}

func (s *gaSink) Identify(id string, props map[string]any) {
	// GA4 has no separate identify call; fold it into an event.
	merged := map[string]any{"visitor_id": id}
	for k, v := range props {
		merged[k] = v
	}
	s.Track("user_identification", merged)
}

// dbSink records events locally so the admin dashboard works without any
// external collector.
type dbSink struct {
	db *sql.DB
}

func (s *dbSink) Track(name string, props map[string]any) {
	sessionID, _ := props["session_id"].(string)
	properties, err := json.Marshal(props)
	if err != nil {
		properties = []byte("{}")
	}
	if _, err := s.db.Exec(
		`INSERT INTO events (session_id, name, properties, timestamp) VALUES (?, ?, ?, ?)`,
		sessionID, name, string(properties), time.Now(),
	); err != nil {
		log.Printf("Error recording event %s: %v", name, err)
	}
}

func (s *dbSink) Identify(id string, props map[string]any) {
	merged := map[string]any{"visitor_id": id}
	for k, v := range props {
		merged[k] = v
	}
	s.Track("user_identification", merged)
}
