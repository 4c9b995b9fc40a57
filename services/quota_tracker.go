package services

import (
	"context"
	"time"

	"sparkd_server/utils"
)

// DefaultDailyLikeLimit is the number of likes a user may spend per calendar
// day in the reference timezone.
const DefaultDailyLikeLimit = 10

// DefaultQuotaZoneOffsetHours is the reference timezone offset (UTC+9),
// applied uniformly regardless of the actor's locale.
const DefaultQuotaZoneOffsetHours = 9

// QuotaTracker computes the actor's current day window and like usage. The
// count is derived from Action rows on every call; nothing is cached, so a
// store hiccup only affects the request that saw it.
type QuotaTracker struct {
	Actions ActionStore
	Limit   int
	Zone    *time.Location
	Now     func() time.Time
}

// NewQuotaTracker builds a tracker with a real clock.
func NewQuotaTracker(actions ActionStore, limit int, zone *time.Location) *QuotaTracker {
	return &QuotaTracker{Actions: actions, Limit: limit, Zone: zone, Now: time.Now}
}

// Usage returns the number of likes spent in the current window and how many
// remain. It never rejects; the gate decides what to do with the numbers.
func (q *QuotaTracker) Usage(ctx context.Context, actorID string) (used, remaining int, err error) {
	windowStart := utils.DayWindowStart(q.Now(), q.Zone)
	since := windowStart.UTC().Format(time.RFC3339)

	used, err = q.Actions.CountLikesSince(ctx, actorID, since)
	if err != nil {
		return 0, 0, err
	}

	remaining = q.Limit - used
	if remaining < 0 {
		remaining = 0
	}
	return used, remaining, nil
}
