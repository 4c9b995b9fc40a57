package services

import (
	"context"
	"log"
	"time"

	"sparkd_server/models"
)

// MatchDetector decides whether a freshly recorded like completes a mutual
// match and, if so, promotes both action rows to the matched state.
//
// It runs after the actor's own like row is committed. Because both sides of
// a concurrent mutual like write before reading, at least one of them
// observes the other's row; the promotion updates are idempotent, so both
// observing is harmless.
type MatchDetector struct {
	Actions ActionStore
}

// DetectAndPromote returns true when the reciprocal like exists. Both rows
// carry the same matchedAt timestamp afterwards.
func (d *MatchDetector) DetectAndPromote(ctx context.Context, actorID, targetID string, now time.Time) (bool, error) {
	reciprocal, err := d.Actions.GetAction(ctx, targetID, actorID)
	if err != nil {
		return false, err
	}
	if reciprocal == nil || reciprocal.Kind != models.ActionKindLike {
		return false, nil
	}

	matchedAt := now.UTC().Format(time.RFC3339)
	if err := d.Actions.MarkMatched(ctx, actorID, targetID, matchedAt); err != nil {
		return false, err
	}
	if err := d.Actions.MarkMatched(ctx, targetID, actorID, matchedAt); err != nil {
		return false, err
	}

	log.Printf("🎉 Match confirmed: %s and %s", actorID, targetID)
	return true, nil
}
