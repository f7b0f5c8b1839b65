package main

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkEvent struct {
	name  string
	props map[string]any
}

// recordingSink captures emissions for assertions. Tracker emissions are
// asynchronous, so access is mutex-guarded and tests poll with Eventually.
type recordingSink struct {
	mu     sync.Mutex
	events []sinkEvent
}

func (r *recordingSink) Track(name string, props map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, sinkEvent{name: name, props: props})
}

func (r *recordingSink) Identify(string, map[string]any) {}

func (r *recordingSink) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.name == name {
			n++
		}
	}
	return n
}

func (r *recordingSink) metricCount(metric string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.name == "user_engagement" && e.props["metric"] == metric {
			n++
		}
	}
	return n
}

func (r *recordingSink) last(name string) (sinkEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].name == name {
			return r.events[i], true
		}
	}
	return sinkEvent{}, false
}

func TestEngagementScoreExactBreakdown(t *testing.T) {
	// 2 (time) + 25 (scroll) + 5 (mouse) + 15 (clicks) + 10 (forms) + 2 (keys)
	score, risk := engagementScore(120*time.Second, counters{
		ScrollDepthMax:   100,
		MouseMovements:   50,
		Clicks:           5,
		Keystrokes:       40,
		FormInteractions: 2,
	})
	assert.Equal(t, 59, score)
	assert.Equal(t, "low", risk)
}

func TestEngagementScoreZeroSession(t *testing.T) {
	score, risk := engagementScore(0, counters{})
	assert.Equal(t, 0, score)
	assert.Equal(t, "high", risk)
}

func TestEngagementScoreBounded(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		c       counters
	}{
		{0, counters{}},
		{time.Hour * 1000, counters{ScrollDepthMax: 100, MouseMovements: 1 << 30, Clicks: 1 << 30, Keystrokes: 1 << 30, FormInteractions: 1 << 30}},
		{time.Second, counters{ScrollDepthMax: 100}},
		{30 * time.Minute, counters{Clicks: 7, Keystrokes: 3}},
		{0, counters{ScrollDepthMax: 100000}},
	}
	for _, tc := range cases {
		score, _ := engagementScore(tc.elapsed, tc.c)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}

	// Every component saturated lands exactly on the cap.
	score, risk := engagementScore(time.Hour, counters{
		ScrollDepthMax:   100,
		MouseMovements:   10000,
		Clicks:           10000,
		Keystrokes:       10000,
		FormInteractions: 10000,
	})
	assert.Equal(t, 100, score)
	assert.Equal(t, "low", risk)

	// An out-of-range depth contributes no more than the scroll cap.
	score, _ = engagementScore(0, counters{ScrollDepthMax: 100000})
	assert.Equal(t, 25, score)
}

func TestEngagementScoreMonotonic(t *testing.T) {
	// Counters only ever grow and elapsed time only advances, so the
	// score must never decrease across any accrual sequence.
	steps := []struct {
		elapsed time.Duration
		c       counters
	}{
		{0, counters{}},
		{5 * time.Second, counters{ScrollDepthMax: 10}},
		{10 * time.Second, counters{ScrollDepthMax: 10, MouseMovements: 3}},
		{20 * time.Second, counters{ScrollDepthMax: 45, MouseMovements: 3, Clicks: 1}},
		{40 * time.Second, counters{ScrollDepthMax: 45, MouseMovements: 12, Clicks: 2, Keystrokes: 10}},
		{90 * time.Second, counters{ScrollDepthMax: 80, MouseMovements: 40, Clicks: 4, Keystrokes: 30, FormInteractions: 1}},
		{5 * time.Minute, counters{ScrollDepthMax: 100, MouseMovements: 200, Clicks: 9, Keystrokes: 120, FormInteractions: 3}},
	}

	prev := -1
	for i, step := range steps {
		score, _ := engagementScore(step.elapsed, step.c)
		assert.GreaterOrEqual(t, score, prev, "score decreased at step %d", i)
		prev = score
	}
}

func TestBounceRiskThresholds(t *testing.T) {
	_, risk := engagementScore(0, counters{})
	assert.Equal(t, "high", risk)

	// 10 points of scroll and a bit of time lands in medium.
	_, risk = engagementScore(2*time.Minute, counters{ScrollDepthMax: 40})
	assert.Equal(t, "medium", risk)

	_, risk = engagementScore(30*time.Minute, counters{ScrollDepthMax: 100, Clicks: 5})
	assert.Equal(t, "low", risk)
}

func TestScrollDebounceCoalesces(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)
	s := tr.Session("user_test", "session_scroll")

	// A burst of ten samples inside the quiet window collapses into one
	// downstream update carrying the last value.
	for depth := 10; depth <= 100; depth += 10 {
		tr.RecordScroll("session_scroll", depth)
	}

	assert.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.ScrollDepthMax == 100
	}, time.Second, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return sink.metricCount("scroll_depth") == 1
	}, time.Second, 10*time.Millisecond)

	// Still exactly one after the window has long passed.
	time.Sleep(3 * scrollDebounceWait)
	assert.Equal(t, 1, sink.metricCount("scroll_depth"))
}

func TestScrollDepthRatchet(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)
	s := tr.Session("user_test", "session_ratchet")

	tr.RecordScroll("session_ratchet", 80)
	assert.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.ScrollDepthMax == 80
	}, time.Second, 10*time.Millisecond)

	// A lower sample after the window never lowers the maximum and is
	// not reported.
	tr.RecordScroll("session_ratchet", 50)
	time.Sleep(3 * scrollDebounceWait)

	s.mu.Lock()
	max := s.ScrollDepthMax
	s.mu.Unlock()
	assert.Equal(t, 80, max)
	assert.Equal(t, 1, sink.metricCount("scroll_depth"))
}

func TestScrollDepthClampedFromWire(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)
	s := tr.Session("user_test", "session_clamp")

	// Depth comes straight off the wire; an absurd value ratchets to the
	// percentage ceiling, never beyond it.
	tr.RecordScroll("session_clamp", 100000)
	assert.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.ScrollDepthMax == 100
	}, time.Second, 10*time.Millisecond)

	// Negative samples clamp to zero and never lower the maximum.
	tr.RecordScroll("session_clamp", -40)
	time.Sleep(3 * scrollDebounceWait)

	s.mu.Lock()
	max := s.ScrollDepthMax
	s.mu.Unlock()
	assert.Equal(t, 100, max)
}

func TestSynchronousCountersAccrue(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)
	s := tr.Session("user_test", "session_counters")

	tr.RecordClick("session_counters", "link")
	tr.RecordClick("session_counters", "button")
	tr.RecordClick("session_counters", "")
	tr.RecordKeystroke("session_counters")
	tr.RecordKeystroke("session_counters")
	tr.RecordFormInteraction("session_counters")
	tr.RecordPageView("session_counters")

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Equal(t, 3, s.Clicks)
	assert.Equal(t, 2, s.Keystrokes)
	assert.Equal(t, 1, s.FormInteractions)
	assert.Equal(t, 2, s.PageViews) // session creation counts the first view
}

func TestEventsForUnknownSessionAreDropped(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)

	// None of these should panic or create state.
	tr.RecordScroll("missing", 50)
	tr.RecordClick("missing", "link")
	tr.RecordKeystroke("missing")
	tr.EndSession("missing")

	tr.mu.RLock()
	defer tr.mu.RUnlock()
	assert.Empty(t, tr.sessions)
}

func TestEndSessionEmitsFinalSummary(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)
	s := tr.Session("user_final", "session_final")

	// Backdate the session to get nonzero duration into the summary.
	s.mu.Lock()
	s.StartedAt = s.StartedAt.Add(-2 * time.Minute)
	s.mu.Unlock()

	tr.RecordClick("session_final", "link")
	tr.RecordFormInteraction("session_final")

	tr.EndSession("session_final")

	// The final flush is synchronous, no polling needed.
	event, ok := sink.last("session_end")
	require.True(t, ok)
	assert.Equal(t, "user_final", event.props["visitor_id"])
	assert.Equal(t, 1, event.props["clicks"])
	assert.Equal(t, 1, event.props["form_interactions"])
	assert.GreaterOrEqual(t, event.props["session_duration"].(int), 119)

	// The session is gone; ending it again is a no-op.
	before := sink.count("session_end")
	tr.EndSession("session_final")
	assert.Equal(t, before, sink.count("session_end"))
}

func TestStopFlushesLiveSessions(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)
	tr.Start()

	tr.Session("user_a", "session_a")
	tr.Session("user_b", "session_b")

	tr.Stop()

	assert.Equal(t, 2, sink.count("session_end"))
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	assert.Empty(t, tr.sessions)
}

func TestStopIsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)
	tr.Start()

	tr.Session("user_a", "session_a")

	tr.Stop()
	tr.Stop()

	assert.Equal(t, 1, sink.count("session_end"))
}

func TestIdleSessionsAreSwept(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)

	clock := time.Now()
	tr.now = func() time.Time { return clock }

	tr.Session("user_idle", "session_idle")
	tr.Session("user_busy", "session_busy")

	// The abandoned tab goes quiet; the other session keeps producing
	// events as the clock advances.
	clock = clock.Add(idleTimeout + time.Minute)
	tr.RecordClick("session_busy", "link")

	tr.sweepIdle()

	event, ok := sink.last("session_end")
	require.True(t, ok)
	assert.Equal(t, "session_idle", event.props["session_id"])
	assert.GreaterOrEqual(t, event.props["session_duration"].(int), int(idleTimeout.Seconds()))

	tr.mu.RLock()
	defer tr.mu.RUnlock()
	assert.Nil(t, tr.sessions["session_idle"])
	assert.NotNil(t, tr.sessions["session_busy"])
}

func TestRecomputeUpdatesDerivedState(t *testing.T) {
	sink := &recordingSink{}
	tr := newTracker(sink, nil)
	s := tr.Session("user_c", "session_c")

	s.mu.Lock()
	s.StartedAt = s.StartedAt.Add(-10 * time.Minute)
	s.ScrollDepthMax = 100
	s.Clicks = 5
	s.mu.Unlock()

	tr.recomputeAll()

	s.mu.Lock()
	defer s.mu.Unlock()
	// 10 (time) + 25 (scroll) + 15 (clicks) = 50
	assert.Equal(t, 50, s.EngagementScore)
	assert.Equal(t, "low", s.BounceRisk)
}
