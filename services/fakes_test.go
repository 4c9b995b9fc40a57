package services

import (
	"context"
	"time"

	"sparkd_server/models"

	"github.com/google/uuid"
)

// In-memory store fakes backing the gate tests.

type fakeActionStore struct {
	actions   map[string]*models.Action
	getErr    error
	createErr error
	countErr  error
}

func newFakeActionStore() *fakeActionStore {
	return &fakeActionStore{actions: map[string]*models.Action{}}
}

func actionKey(actorID, targetID string) string {
	return actorID + "|" + targetID
}

func (f *fakeActionStore) GetAction(_ context.Context, actorID, targetID string) (*models.Action, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	action, ok := f.actions[actionKey(actorID, targetID)]
	if !ok {
		return nil, nil
	}
	copied := *action
	return &copied, nil
}

func (f *fakeActionStore) CreateAction(_ context.Context, action *models.Action) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := actionKey(action.ActorID, action.TargetID)
	if _, ok := f.actions[key]; ok {
		return NewDuplicateActionError("action already recorded for %s -> %s", action.ActorID, action.TargetID)
	}
	copied := *action
	f.actions[key] = &copied
	return nil
}

func (f *fakeActionStore) MarkMatched(_ context.Context, actorID, targetID, matchedAt string) error {
	action, ok := f.actions[actionKey(actorID, targetID)]
	if !ok {
		return NewTransientStoreError(nil, "action %s -> %s not found", actorID, targetID)
	}
	action.IsMatched = true
	action.MatchedAt = &matchedAt
	return nil
}

func (f *fakeActionStore) CountLikesSince(_ context.Context, actorID, since string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, action := range f.actions {
		if action.ActorID == actorID && action.Kind == models.ActionKindLike && action.CreatedAt >= since {
			count++
		}
	}
	return count, nil
}

// seedLike records a pre-existing like with the given creation time.
func (f *fakeActionStore) seedLike(actorID, targetID string, createdAt time.Time) {
	f.actions[actionKey(actorID, targetID)] = &models.Action{
		PK:        models.ActionPK(actorID),
		SK:        models.ActionSK(targetID),
		ActorID:   actorID,
		TargetID:  targetID,
		Kind:      models.ActionKindLike,
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
	}
}

type fakeProfileStore struct {
	profiles map[string]*models.UserProfile
	getErr   error
}

func newFakeProfileStore(userIDs ...string) *fakeProfileStore {
	store := &fakeProfileStore{profiles: map[string]*models.UserProfile{}}
	for _, id := range userIDs {
		store.profiles[id] = &models.UserProfile{UserID: id, Name: "name-" + id}
	}
	return store
}

func (f *fakeProfileStore) GetProfile(_ context.Context, userID string) (*models.UserProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

type fakeConversationStore struct {
	conversations  map[string]*models.Conversation
	provisionCalls int
	provisionErr   error
}

func newFakeConversationStore() *fakeConversationStore {
	return &fakeConversationStore{conversations: map[string]*models.Conversation{}}
}

func (f *fakeConversationStore) Provision(_ context.Context, userA, userB string) (*models.Conversation, error) {
	f.provisionCalls++
	if f.provisionErr != nil {
		return nil, f.provisionErr
	}
	pairID := models.CanonicalPairID(userA, userB)
	if existing, ok := f.conversations[pairID]; ok {
		copied := *existing
		return &copied, nil
	}
	low, high := models.CanonicalPair(userA, userB)
	conversation := &models.Conversation{
		PairID:          pairID,
		ConversationID:  uuid.NewString(),
		ParticipantLow:  low,
		ParticipantHigh: high,
	}
	f.conversations[pairID] = conversation
	copied := *conversation
	return &copied, nil
}

func (f *fakeConversationStore) ListForUser(_ context.Context, userID string) ([]models.Conversation, error) {
	var result []models.Conversation
	for _, conversation := range f.conversations {
		if conversation.ParticipantLow == userID || conversation.ParticipantHigh == userID {
			result = append(result, *conversation)
		}
	}
	return result, nil
}

type fakeNotificationStore struct {
	notifications []*models.Notification
	putErr        error
}

func (f *fakeNotificationStore) PutNotification(_ context.Context, notification *models.Notification) error {
	if f.putErr != nil {
		return f.putErr
	}
	copied := *notification
	f.notifications = append(f.notifications, &copied)
	return nil
}

func (f *fakeNotificationStore) ListForUser(_ context.Context, userID string, _ int32) ([]models.Notification, error) {
	var result []models.Notification
	for _, notification := range f.notifications {
		if notification.RecipientID == userID {
			result = append(result, *notification)
		}
	}
	return result, nil
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, userID, notificationID string) error {
	for _, notification := range f.notifications {
		if notification.RecipientID == userID && notification.NotificationID == notificationID {
			notification.IsRead = true
			return nil
		}
	}
	return NewNotFoundError("notification %s not found for %s", notificationID, userID)
}

type fakePusher struct {
	pushed  []string
	pushErr error
}

func (f *fakePusher) PushMatch(userID string, _ MatchEvent) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushed = append(f.pushed, userID)
	return nil
}
