// tracker.go - Session and engagement tracking
package main

import (
	"database/sql"
	"log"
	"sync"
	"time"
)

// Engagement score weighting. Time on page is capped at 30 of 100
// points, scroll depth at 25, pointer movement and clicks at 15 each,
// form interactions at 10, keystrokes at 5. Downstream dashboards key on
// these exact caps and divisors.
const (
	timeCap   = 30.0
	scrollCap = 25.0
	mouseCap  = 15.0
	clickCap  = 15.0
	formCap   = 10.0
	keyCap    = 5.0
)

const (
	scrollDebounceWait = 100 * time.Millisecond
	mouseDebounceWait  = 1000 * time.Millisecond

	timeTickInterval  = 5 * time.Second
	scoreTickInterval = 10 * time.Second
	idleSweepInterval = time.Minute
	idleTimeout       = 30 * time.Minute
)

// counters holds the raw per-session accrual state. Every field is
// monotonic; ScrollDepthMax is a running maximum, the rest only
// increment.
type counters struct {
	ScrollDepthMax   int
	MouseMovements   int
	Clicks           int
	Keystrokes       int
	FormInteractions int
	PageViews        int
}

// engagementScore derives the bounded 0-100 score and bounce risk from
// the counters and elapsed time. Pure function of its inputs.
func engagementScore(timeOnPage time.Duration, c counters) (int, string) {
	score := minf(timeOnPage.Seconds()/60, timeCap)
	score += minf(float64(c.ScrollDepthMax)/100*scrollCap, scrollCap)
	score += minf(float64(c.MouseMovements)/10, mouseCap)
	score += minf(float64(c.Clicks)*3, clickCap)
	score += minf(float64(c.FormInteractions)*5, formCap)
	score += minf(float64(c.Keystrokes)/20, keyCap)

	risk := "low"
	if score < 10 {
		risk = "high"
	} else if score < 30 {
		risk = "medium"
	}
	return int(score + 0.5), risk
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// debouncer coalesces bursts of calls into one invocation after a quiet
// window. A newer call always cancels the pending one, so the last
// write wins within the window.
type debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

func newDebouncer(wait time.Duration) *debouncer {
	return &debouncer{wait: wait}
}

func (d *debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// session is the per-visit engagement record. It lives from the first
// event until EndSession (or the idle sweeper) flushes it.
type session struct {
	mu sync.Mutex

	VisitorID string
	SessionID string
	StartedAt time.Time
	LastSeen  time.Time
	Language  string
	Country   string

	counters
	EngagementScore int
	BounceRisk      string

	pendingScroll int
	scrollDeb     *debouncer
	mouseDeb      *debouncer
	ended         bool
}

// SessionSummary is the final snapshot emitted and persisted when a
// session ends.
type SessionSummary struct {
	VisitorID       string
	SessionID       string
	StartedAt       time.Time
	EndedAt         time.Time
	Duration        time.Duration
	EngagementScore int
	BounceRisk      string
	counters
	Language string
	Country  string
}

// Tracker owns every live session. Raw interaction events posted by the
// page mutate counters; two periodic tasks (elapsed-time update every
// 5s, score recompute every 10s) emit derived values to the sink; an
// idle sweeper ends abandoned sessions so they still produce a summary
// row.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[string]*session

	sink EventSink
	db   *sql.DB
	now  func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func newTracker(sink EventSink, db *sql.DB) *Tracker {
	return &Tracker{
		sessions: make(map[string]*session),
		sink:     sink,
		db:       db,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start launches the periodic tasks. Stop cancels them and flushes every
// live session.
func (t *Tracker) Start() {
	t.wg.Add(1)
	go t.run()
}

func (t *Tracker) run() {
	defer t.wg.Done()

	timeTick := time.NewTicker(timeTickInterval)
	scoreTick := time.NewTicker(scoreTickInterval)
	sweepTick := time.NewTicker(idleSweepInterval)
	defer timeTick.Stop()
	defer scoreTick.Stop()
	defer sweepTick.Stop()

	for {
		select {
		case <-timeTick.C:
			t.emitTimeOnPage()
		case <-scoreTick.C:
			t.recomputeAll()
		case <-sweepTick.C:
			t.sweepIdle()
		case <-t.done:
			return
		}
	}
}

// Stop cancels the periodic tasks and synchronously flushes all live
// sessions. Safe to call more than once; only the first call does the
// work.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
		t.wg.Wait()

		t.mu.Lock()
		live := make([]*session, 0, len(t.sessions))
		for _, s := range t.sessions {
			live = append(live, s)
		}
		t.sessions = make(map[string]*session)
		t.mu.Unlock()

		for _, s := range live {
			t.finish(s)
		}
	})
}

// Session returns the live record for a session id, creating it on the
// first event. Creation emits the identify + page-view pair the way the
// page did on load.
func (t *Tracker) Session(visitorID, sessionID string) *session {
	t.mu.RLock()
	s := t.sessions[sessionID]
	t.mu.RUnlock()
	if s != nil {
		return s
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if s = t.sessions[sessionID]; s != nil {
		return s
	}

	now := t.now()
	s = &session{
		VisitorID:  visitorID,
		SessionID:  sessionID,
		StartedAt:  now,
		LastSeen:   now,
		BounceRisk: "high",
		counters:   counters{PageViews: 1},
		scrollDeb:  newDebouncer(scrollDebounceWait),
		mouseDeb:   newDebouncer(mouseDebounceWait),
	}
	t.sessions[sessionID] = s

	go t.sink.Track("session_start", map[string]any{
		"visitor_id": visitorID,
		"session_id": sessionID,
		"timestamp":  now.Format(time.RFC3339),
	})
	return s
}

// SetContext records locale and geolocation enrichment on the session.
func (t *Tracker) SetContext(sessionID, language, country string) {
	s := t.lookup(sessionID)
	if s == nil {
		return
	}
	s.mu.Lock()
	s.Language = language
	s.Country = country
	s.mu.Unlock()
}

func (t *Tracker) lookup(sessionID string) *session {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sessions[sessionID]
}

// RecordScroll feeds a raw scroll depth sample. Depth is a percentage;
// the wire value is untrusted, so it is clamped to [0,100] before the
// ratchet. Samples are debounced; once the burst quiets down the last
// value is applied to the monotonic ratchet and reported if it set a
// new maximum.
func (t *Tracker) RecordScroll(sessionID string, depth int) {
	s := t.lookup(sessionID)
	if s == nil {
		return
	}
	if depth < 0 {
		depth = 0
	} else if depth > 100 {
		depth = 100
	}

	s.mu.Lock()
	s.pendingScroll = depth
	s.LastSeen = t.now()
	s.mu.Unlock()

	s.scrollDeb.Call(func() {
		s.mu.Lock()
		d := s.pendingScroll
		newMax := d > s.ScrollDepthMax
		if newMax {
			s.ScrollDepthMax = d
		}
		s.mu.Unlock()
		if newMax {
			t.emitMetric(s, "scroll_depth", d)
		}
	})
}

// RecordMouseMove counts pointer activity. Raw movement events are
// extremely high-frequency, so a burst collapses into one increment.
func (t *Tracker) RecordMouseMove(sessionID string) {
	s := t.lookup(sessionID)
	if s == nil {
		return
	}

	s.mu.Lock()
	s.LastSeen = t.now()
	s.mu.Unlock()

	s.mouseDeb.Call(func() {
		s.mu.Lock()
		s.MouseMovements++
		v := s.MouseMovements
		s.mu.Unlock()
		t.emitMetric(s, "mouse_movement", v)
	})
}

// RecordClick increments synchronously; clicks are naturally
// low-frequency. target distinguishes link and button clicks.
func (t *Tracker) RecordClick(sessionID, target string) {
	s := t.lookup(sessionID)
	if s == nil {
		return
	}

	s.mu.Lock()
	s.Clicks++
	s.LastSeen = t.now()
	v := s.Clicks
	s.mu.Unlock()

	t.emitMetric(s, "click", v)
	switch target {
	case "link":
		t.emitMetric(s, "link_click", 1)
	case "button":
		t.emitMetric(s, "button_click", 1)
	}
}

func (t *Tracker) RecordKeystroke(sessionID string) {
	s := t.lookup(sessionID)
	if s == nil {
		return
	}

	s.mu.Lock()
	s.Keystrokes++
	s.LastSeen = t.now()
	v := s.Keystrokes
	s.mu.Unlock()

	t.emitMetric(s, "keystroke", v)
}

func (t *Tracker) RecordFormInteraction(sessionID string) {
	s := t.lookup(sessionID)
	if s == nil {
		return
	}

	s.mu.Lock()
	s.FormInteractions++
	s.LastSeen = t.now()
	v := s.FormInteractions
	s.mu.Unlock()

	t.emitMetric(s, "form_interaction", v)
}

// RecordVisibility notes visibility and focus transitions. They are
// reported but never pause counter accrual; there is no suspended state.
func (t *Tracker) RecordVisibility(sessionID, state string) {
	s := t.lookup(sessionID)
	if s == nil {
		return
	}

	switch state {
	case "page_hidden", "page_visible", "window_focus", "window_blur", "window_resize":
	default:
		return
	}

	s.mu.Lock()
	if state != "page_hidden" && state != "window_blur" {
		s.LastSeen = t.now()
	}
	s.mu.Unlock()

	t.emitMetric(s, state, 1)
}

// RecordPageView counts an additional page view within the session.
func (t *Tracker) RecordPageView(sessionID string) {
	s := t.lookup(sessionID)
	if s == nil {
		return
	}

	s.mu.Lock()
	s.PageViews++
	s.LastSeen = t.now()
	v := s.PageViews
	s.mu.Unlock()

	t.emitMetric(s, "page_view", v)
}

func (t *Tracker) emitMetric(s *session, metric string, value int) {
	go t.sink.Track("user_engagement", map[string]any{
		"visitor_id": s.VisitorID,
		"session_id": s.SessionID,
		"metric":     metric,
		"value":      value,
		"timestamp":  t.now().Format(time.RFC3339),
	})
}

// emitTimeOnPage reports elapsed time for every live session. Elapsed
// time is recomputed from the session start, never incremented.
func (t *Tracker) emitTimeOnPage() {
	for _, s := range t.snapshotSessions() {
		s.mu.Lock()
		elapsed := int(t.now().Sub(s.StartedAt).Seconds())
		s.mu.Unlock()
		t.emitMetric(s, "time_on_page", elapsed)
	}
}

// recomputeAll derives the score for every live session and reports it.
// Scoring is timer-driven, so it reflects state at sampling time rather
// than chasing every mutation.
func (t *Tracker) recomputeAll() {
	for _, s := range t.snapshotSessions() {
		score, risk, c, elapsed := t.recompute(s)
		go t.sink.Track("engagement_score_updated", map[string]any{
			"visitor_id":       s.VisitorID,
			"session_id":       s.SessionID,
			"engagement_score": score,
			"bounce_risk":      risk,
			"max_scroll_depth": c.ScrollDepthMax,
			"time_on_page":     int(elapsed.Seconds()),
			"timestamp":        t.now().Format(time.RFC3339),
		})
	}
}

func (t *Tracker) recompute(s *session) (int, string, counters, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := t.now().Sub(s.StartedAt)
	score, risk := engagementScore(elapsed, s.counters)
	s.EngagementScore = score
	s.BounceRisk = risk
	return score, risk, s.counters, elapsed
}

func (t *Tracker) snapshotSessions() []*session {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*session, 0, len(t.sessions))
	for _, s := range t.sessions {
		out = append(out, s)
	}
	return out
}

// sweepIdle ends sessions with no activity for idleTimeout, so abandoned
// tabs still get a summary row.
func (t *Tracker) sweepIdle() {
	cutoff := t.now().Add(-idleTimeout)
	for _, s := range t.snapshotSessions() {
		s.mu.Lock()
		idle := s.LastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			t.EndSession(s.SessionID)
		}
	}
}

// EndSession performs the terminal flush: a final recompute, a
// synchronous session-summary emit (the page context is about to
// disappear, so this one is never deferred), persistence, and teardown
// of the session's pending timers.
func (t *Tracker) EndSession(sessionID string) {
	t.mu.Lock()
	s := t.sessions[sessionID]
	delete(t.sessions, sessionID)
	t.mu.Unlock()
	if s == nil {
		return
	}
	t.finish(s)
}

func (t *Tracker) finish(s *session) {
	s.scrollDeb.Stop()
	s.mouseDeb.Stop()

	score, risk, c, elapsed := t.recompute(s)

	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	summary := SessionSummary{
		VisitorID:       s.VisitorID,
		SessionID:       s.SessionID,
		StartedAt:       s.StartedAt,
		EndedAt:         t.now(),
		Duration:        elapsed,
		EngagementScore: score,
		BounceRisk:      risk,
		counters:        c,
		Language:        s.Language,
		Country:         s.Country,
	}
	s.mu.Unlock()

	// Synchronous on purpose: the final snapshot must not be dropped.
	t.sink.Track("session_end", map[string]any{
		"visitor_id":        summary.VisitorID,
		"session_id":        summary.SessionID,
		"session_duration":  int(summary.Duration.Seconds()),
		"engagement_score":  summary.EngagementScore,
		"bounce_risk":       summary.BounceRisk,
		"max_scroll_depth":  summary.ScrollDepthMax,
		"mouse_movements":   summary.MouseMovements,
		"clicks":            summary.Clicks,
		"keystrokes":        summary.Keystrokes,
		"form_interactions": summary.FormInteractions,
		"page_views":        summary.PageViews,
		"timestamp":         summary.EndedAt.Format(time.RFC3339),
	})

	t.persist(summary)
}

func (t *Tracker) persist(sum SessionSummary) {
	if t.db == nil {
		return
	}
	_, err := t.db.Exec(`
		INSERT INTO sessions (session_id, visitor_id, started_at, ended_at, duration_seconds,
			engagement_score, bounce_risk, max_scroll_depth, mouse_movements, clicks,
			keystrokes, form_interactions, page_views, country, language)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			ended_at = excluded.ended_at,
			duration_seconds = excluded.duration_seconds,
			engagement_score = excluded.engagement_score,
			bounce_risk = excluded.bounce_risk,
			max_scroll_depth = excluded.max_scroll_depth,
			mouse_movements = excluded.mouse_movements,
			clicks = excluded.clicks,
			keystrokes = excluded.keystrokes,
			form_interactions = excluded.form_interactions,
			page_views = excluded.page_views`,
		sum.SessionID, sum.VisitorID, sum.StartedAt, sum.EndedAt, int(sum.Duration.Seconds()),
		sum.EngagementScore, sum.BounceRisk, sum.ScrollDepthMax, sum.MouseMovements, sum.Clicks,
		sum.Keystrokes, sum.FormInteractions, sum.PageViews, sum.Country, sum.Language,
	)
	if err != nil {
		log.Printf("Error persisting session %s: %v", sum.SessionID, err)
	}
}
