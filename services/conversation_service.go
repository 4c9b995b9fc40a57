package services

import (
	"context"
	"errors"
	"log"
	"time"

	"sparkd_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ConversationStore provisions and lists pair-keyed conversations.
type ConversationStore interface {
	// Provision creates the conversation for the unordered user pair if it
	// does not exist yet and returns it. Safe to call more than once for the
	// same pair.
	Provision(ctx context.Context, userA, userB string) (*models.Conversation, error)
	// ListForUser returns every conversation the user participates in.
	ListForUser(ctx context.Context, userID string) ([]models.Conversation, error)
}

// ConversationDynamo is the slice of the DynamoDB layer this service uses.
type ConversationDynamo interface {
	PutItemWithCondition(ctx context.Context, tableName string, item interface{}, conditionExpression string) error
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, result interface{}) error
}

// ConversationService stores conversations keyed by the canonical pair id so
// both match directions resolve to one row.
type ConversationService struct {
	Dynamo ConversationDynamo
	Now    func() time.Time
}

func (s *ConversationService) Provision(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	low, high := models.CanonicalPair(userA, userB)
	now := s.now().UTC().Format(time.RFC3339)

	conversation := models.Conversation{
		PairID:          models.CanonicalPairID(userA, userB),
		ConversationID:  uuid.NewString(),
		ParticipantLow:  low,
		ParticipantHigh: high,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.Dynamo.PutItemWithCondition(ctx, models.ConversationsTable, conversation, "attribute_not_exists(pairId)")
	if err == nil {
		log.Printf("✅ Conversation %s created for %s and %s", conversation.ConversationID, low, high)
		return &conversation, nil
	}

	if !errors.Is(err, ErrConditionalCheckFailed) {
		return nil, NewTransientStoreError(err, "failed to create conversation for %s and %s", low, high)
	}

	// The pair already has a conversation (retry or the concurrent side of a
	// mutual match won the put). Read it back instead of creating a second.
	return s.getByPairID(ctx, conversation.PairID)
}

func (s *ConversationService) getByPairID(ctx context.Context, pairID string) (*models.Conversation, error) {
	key := map[string]types.AttributeValue{
		"pairId": &types.AttributeValueMemberS{Value: pairID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.ConversationsTable, key)
	if err != nil {
		return nil, NewTransientStoreError(err, "failed to fetch conversation %s", pairID)
	}
	if item == nil {
		return nil, NewTransientStoreError(nil, "conversation %s missing after conditional put", pairID)
	}

	var conversation models.Conversation
	if err := attributevalue.UnmarshalMap(item, &conversation); err != nil {
		return nil, NewTransientStoreError(err, "failed to unmarshal conversation %s", pairID)
	}
	return &conversation, nil
}

func (s *ConversationService) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := s.Dynamo.ScanWithFilter(ctx, models.ConversationsTable, func(item map[string]types.AttributeValue) bool {
		for _, field := range []string{"participantLow", "participantHigh"} {
			if attr, ok := item[field]; ok {
				if v, ok := attr.(*types.AttributeValueMemberS); ok && v.Value == userID {
					return true
				}
			}
		}
		return false
	}, &conversations)
	if err != nil {
		return nil, NewTransientStoreError(err, "failed to list conversations for %s", userID)
	}
	return conversations, nil
}

func (s *ConversationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

var _ ConversationStore = (*ConversationService)(nil)
