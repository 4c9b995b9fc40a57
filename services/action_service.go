package services

import (
	"context"
	"log"
	"time"

	"sparkd_server/models"
)

// ActionResult is the terminal outcome of one pass through the gate.
type ActionResult struct {
	Accepted       bool
	Matched        bool
	Remaining      int
	ConversationID string
	// Notify reports best-effort notification delivery on a match. It never
	// affects Accepted or Matched.
	Notify DispatchOutcome
}

// ActionService is the matching gate: one like/pass request runs through
// validation, quota, recording, match detection, conversation provisioning,
// and notification dispatch, in that order. There is no retry loop; each
// request is a single pass.
type ActionService struct {
	Validator     *ActionValidator
	Quota         *QuotaTracker
	Detector      *MatchDetector
	Actions       ActionStore
	Conversations ConversationStore
	Notifier      *NotificationDispatcher
	Now           func() time.Time
}

// ProcessAction handles one like or pass from actorID on targetID.
func (s *ActionService) ProcessAction(ctx context.Context, actorID, targetID, kind string) (*ActionResult, error) {
	targetProfile, err := s.Validator.Validate(ctx, actorID, targetID, kind)
	if err != nil {
		return nil, err
	}

	// Quota is checked for likes only; a pass is always free but still
	// reports the caller's remaining budget.
	used, remaining, err := s.Quota.Usage(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if kind == models.ActionKindLike && used >= s.Quota.Limit {
		log.Printf("🚫 %s exhausted the daily like quota (%d/%d)", actorID, used, s.Quota.Limit)
		return nil, NewQuotaExceededError("daily like limit of %d reached", s.Quota.Limit)
	}

	now := s.now()
	action := &models.Action{
		PK:        models.ActionPK(actorID),
		SK:        models.ActionSK(targetID),
		ActorID:   actorID,
		TargetID:  targetID,
		Kind:      kind,
		IsMatched: false,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	// Record before looking for the reciprocal like. Two users liking each
	// other at the same instant both commit their rows first, so at least one
	// detector run sees the other side and promotes the pair.
	if err := s.Actions.CreateAction(ctx, action); err != nil {
		return nil, err
	}

	result := &ActionResult{Accepted: true, Remaining: remaining}
	if kind == models.ActionKindLike {
		result.Remaining = s.Quota.Limit - used - 1
		if result.Remaining < 0 {
			result.Remaining = 0
		}
	}

	if kind != models.ActionKindLike {
		return result, nil
	}

	matched, err := s.Detector.DetectAndPromote(ctx, actorID, targetID, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		return result, nil
	}
	result.Matched = true

	conversation, err := s.Conversations.Provision(ctx, actorID, targetID)
	if err != nil {
		// The matched action rows stay; the caller sees a store failure and
		// a retried like surfaces the existing conversation idempotently.
		return nil, err
	}
	result.ConversationID = conversation.ConversationID

	result.Notify = s.Notifier.DispatchMatch(ctx, actorID, targetProfile, conversation.ConversationID)
	return result, nil
}

func (s *ActionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
