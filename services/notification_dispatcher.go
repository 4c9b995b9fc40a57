package services

import (
	"context"
	"log"
	"time"

	"sparkd_server/models"
)

// MatchEvent is the payload pushed to a participant when a match forms.
type MatchEvent struct {
	ConversationID  string `json:"conversationId"`
	CounterpartID   string `json:"counterpartId"`
	CounterpartName string `json:"counterpartName"`
}

// MatchPusher delivers a match event to a connected user, if any.
type MatchPusher interface {
	PushMatch(userID string, event MatchEvent) error
}

// DispatchOutcome reports what the dispatcher managed to deliver. The gate
// returns it alongside the match result so callers and tests can see
// notification failures without the request having failed.
type DispatchOutcome struct {
	Dispatched int
	Failures   []error
}

// NotificationDispatcher emits match notifications to both participants.
// Strictly best-effort: every failure is logged and collected, none is
// propagated. The match and conversation are already durable by the time it
// runs.
type NotificationDispatcher struct {
	Notifications NotificationStore
	Profiles      ProfileStore
	Pusher        MatchPusher
}

// DispatchMatch notifies both sides of a new match. targetProfile is the
// profile the validator already fetched; the actor's profile is read here for
// the counterpart name shown to the target.
func (d *NotificationDispatcher) DispatchMatch(ctx context.Context, actorID string, targetProfile *models.UserProfile, conversationID string) DispatchOutcome {
	outcome := DispatchOutcome{}

	actorName := actorID
	actorProfile, err := d.Profiles.GetProfile(ctx, actorID)
	if err != nil {
		// Fall back to the raw id rather than dropping the notification.
		log.Printf("⚠️ Could not load profile for %s while dispatching: %v", actorID, err)
	} else if actorProfile != nil {
		actorName = actorProfile.Name
	}

	now := time.Now().UTC().Format(time.RFC3339)

	recipients := []struct {
		recipientID     string
		counterpartID   string
		counterpartName string
	}{
		{actorID, targetProfile.UserID, targetProfile.Name},
		{targetProfile.UserID, actorID, actorName},
	}

	for _, r := range recipients {
		notification := &models.Notification{
			RecipientID:     r.recipientID,
			Type:            models.NotificationTypeMatch,
			CounterpartID:   r.counterpartID,
			CounterpartName: r.counterpartName,
			IsRead:          false,
			CreatedAt:       now,
		}

		if err := d.Notifications.PutNotification(ctx, notification); err != nil {
			dispatchErr := NewNotificationDispatchError(r.recipientID, err, "failed to store match notification")
			log.Printf("⚠️ %v", dispatchErr)
			outcome.Failures = append(outcome.Failures, dispatchErr)
			continue
		}

		if d.Pusher != nil {
			event := MatchEvent{
				ConversationID:  conversationID,
				CounterpartID:   r.counterpartID,
				CounterpartName: r.counterpartName,
			}
			if err := d.Pusher.PushMatch(r.recipientID, event); err != nil {
				// The stored notification stands; only the live push failed.
				log.Printf("⚠️ Socket push to %s failed: %v", r.recipientID, err)
			}
		}

		outcome.Dispatched++
	}

	return outcome
}
