package services

import (
	"context"
	"testing"
	"time"

	"sparkd_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConversationDynamo reproduces the conditional-put contract the real
// store relies on: the second put for a pair key is rejected and the row has
// to be read back.
type stubConversationDynamo struct {
	items    map[string]models.Conversation
	putCalls int
}

func newStubConversationDynamo() *stubConversationDynamo {
	return &stubConversationDynamo{items: map[string]models.Conversation{}}
}

func (s *stubConversationDynamo) PutItemWithCondition(_ context.Context, _ string, item interface{}, _ string) error {
	s.putCalls++
	conversation := item.(models.Conversation)
	if _, ok := s.items[conversation.PairID]; ok {
		return ErrConditionalCheckFailed
	}
	s.items[conversation.PairID] = conversation
	return nil
}

func (s *stubConversationDynamo) GetItem(_ context.Context, _ string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	pairID := key["pairId"].(*types.AttributeValueMemberS).Value
	conversation, ok := s.items[pairID]
	if !ok {
		return nil, nil
	}
	return attributevalue.MarshalMap(conversation)
}

func (s *stubConversationDynamo) ScanWithFilter(_ context.Context, _ string, filterFunc func(map[string]types.AttributeValue) bool, result interface{}) error {
	var filtered []map[string]types.AttributeValue
	for _, conversation := range s.items {
		item, err := attributevalue.MarshalMap(conversation)
		if err != nil {
			return err
		}
		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}
	return attributevalue.UnmarshalListOfMaps(filtered, result)
}

func newTestConversationService(dynamo ConversationDynamo) *ConversationService {
	return &ConversationService{
		Dynamo: dynamo,
		Now:    func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestProvisionCreatesCanonicalConversation(t *testing.T) {
	dynamo := newStubConversationDynamo()
	service := newTestConversationService(dynamo)

	conversation, err := service.Provision(context.Background(), "u2", "u1")
	require.NoError(t, err)
	assert.Equal(t, "PAIR#u1#u2", conversation.PairID)
	assert.Equal(t, "u1", conversation.ParticipantLow)
	assert.Equal(t, "u2", conversation.ParticipantHigh)
	assert.Equal(t, "2025-06-01T12:00:00Z", conversation.CreatedAt)
	assert.NotEmpty(t, conversation.ConversationID)
}

func TestProvisionTwiceYieldsOneConversation(t *testing.T) {
	dynamo := newStubConversationDynamo()
	service := newTestConversationService(dynamo)

	first, err := service.Provision(context.Background(), "u1", "u2")
	require.NoError(t, err)

	// Retry with the participants reversed; the conditional put loses and
	// the existing row is read back.
	second, err := service.Provision(context.Background(), "u2", "u1")
	require.NoError(t, err)

	assert.Equal(t, first.ConversationID, second.ConversationID)
	assert.Equal(t, 2, dynamo.putCalls)
	assert.Len(t, dynamo.items, 1)
}

func TestListForUserFindsBothParticipants(t *testing.T) {
	dynamo := newStubConversationDynamo()
	service := newTestConversationService(dynamo)

	_, err := service.Provision(context.Background(), "u1", "u2")
	require.NoError(t, err)
	_, err = service.Provision(context.Background(), "u3", "u4")
	require.NoError(t, err)

	for _, userID := range []string{"u1", "u2"} {
		conversations, err := service.ListForUser(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, conversations, 1)
		assert.Equal(t, "PAIR#u1#u2", conversations[0].PairID)
	}

	conversations, err := service.ListForUser(context.Background(), "stranger")
	require.NoError(t, err)
	assert.Empty(t, conversations)
}
