// Package session counts distinct engagement sessions and reports app-open
// activity to the backend. A new session starts when the app comes to the
// foreground more than the session window after the previous one.
package session

import (
	"context"
	"time"

	"github.com/featurepulse/featurepulse-go/internal/api"
	"github.com/featurepulse/featurepulse-go/internal/logging"
	"github.com/featurepulse/featurepulse-go/internal/repositories/metadata"
)

// ActivityAppOpen is the activity type reported for a new session.
const ActivityAppOpen = "app_open"

const (
	keyLastSessionTime = "last_session_time"
	keySessionCount    = "session_count"
)

// Tracker decides whether a foreground transition opens a new session.
// Tracking is best-effort: every failure is logged and swallowed, the app
// must never notice analytics problems.
type Tracker struct {
	client  api.Client
	meta    metadata.Repository
	log     logging.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewTracker(client api.Client, meta metadata.Repository, log logging.Logger, timeout time.Duration) *Tracker {
	return &Tracker{
		client:  client,
		meta:    meta,
		log:     log,
		timeout: timeout,
		now:     time.Now,
	}
}

// TrackAppOpen reports a session start when the last one ended more than
// the session window ago. Elapsed time exactly equal to the window still
// belongs to the previous session. The timestamp and the session counter
// are only persisted after the backend accepted the event, so a failed
// report is retried on the next foreground transition.
func (t *Tracker) TrackAppOpen(ctx context.Context) {
	now := t.now().Unix()

	last, ok, err := t.meta.GetInt64(ctx, keyLastSessionTime)
	if err != nil {
		t.log.Warn(ctx, "reading last session time failed", "error", err)
		return
	}
	if ok && now-last <= int64(t.timeout.Seconds()) {
		return
	}

	if err := t.client.TrackActivity(ctx, ActivityAppOpen); err != nil {
		t.log.Warn(ctx, "reporting app open failed", "error", err)
		return
	}

	if err := t.meta.SetInt64(ctx, keyLastSessionTime, now); err != nil {
		t.log.Warn(ctx, "persisting session time failed", "error", err)
		return
	}

	count, _, err := t.meta.GetInt64(ctx, keySessionCount)
	if err != nil {
		t.log.Warn(ctx, "reading session count failed", "error", err)
		return
	}
	if err := t.meta.SetInt64(ctx, keySessionCount, count+1); err != nil {
		t.log.Warn(ctx, "persisting session count failed", "error", err)
	}
}

// SessionCount returns the number of sessions recorded on this device.
func (t *Tracker) SessionCount(ctx context.Context) (int64, error) {
	count, _, err := t.meta.GetInt64(ctx, keySessionCount)
	return count, err
}
