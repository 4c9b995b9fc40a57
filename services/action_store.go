package services

import (
	"context"
	"errors"

	"sparkd_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ActionStore is the persistence surface the matching gate needs for Action
// rows.
type ActionStore interface {
	// GetAction returns the action for the ordered pair, or nil when absent.
	GetAction(ctx context.Context, actorID, targetID string) (*models.Action, error)
	// CreateAction inserts a new action row. Fails with DuplicateActionError
	// when a row for the ordered pair already exists.
	CreateAction(ctx context.Context, action *models.Action) error
	// MarkMatched flips the matched flag on an existing action row.
	MarkMatched(ctx context.Context, actorID, targetID, matchedAt string) error
	// CountLikesSince counts like-kind actions by the actor created at or
	// after the given RFC3339 UTC timestamp.
	CountLikesSince(ctx context.Context, actorID, since string) (int, error)
}

// DynamoActionStore stores Action rows in the Actions table, one row per
// ordered (actor, target) pair.
type DynamoActionStore struct {
	Dynamo *DynamoService
}

func (s *DynamoActionStore) GetAction(ctx context.Context, actorID, targetID string) (*models.Action, error) {
	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: models.ActionPK(actorID)},
		"SK": &types.AttributeValueMemberS{Value: models.ActionSK(targetID)},
	}

	item, err := s.Dynamo.GetItem(ctx, models.ActionsTable, key)
	if err != nil {
		return nil, NewTransientStoreError(err, "failed to fetch action %s -> %s", actorID, targetID)
	}
	if item == nil {
		return nil, nil
	}

	var action models.Action
	if err := attributevalue.UnmarshalMap(item, &action); err != nil {
		return nil, NewTransientStoreError(err, "failed to unmarshal action %s -> %s", actorID, targetID)
	}
	return &action, nil
}

func (s *DynamoActionStore) CreateAction(ctx context.Context, action *models.Action) error {
	// The conditional put makes one-row-per-ordered-pair atomic, so a racing
	// duplicate request loses here even if it passed the validator's read.
	err := s.Dynamo.PutItemWithCondition(ctx, models.ActionsTable, action, "attribute_not_exists(PK)")
	if errors.Is(err, ErrConditionalCheckFailed) {
		return NewDuplicateActionError("action already recorded for %s -> %s", action.ActorID, action.TargetID)
	}
	if err != nil {
		return NewTransientStoreError(err, "failed to record action %s -> %s", action.ActorID, action.TargetID)
	}
	return nil
}

func (s *DynamoActionStore) MarkMatched(ctx context.Context, actorID, targetID, matchedAt string) error {
	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: models.ActionPK(actorID)},
		"SK": &types.AttributeValueMemberS{Value: models.ActionSK(targetID)},
	}

	updateExpression := "SET isMatched = :matched, matchedAt = :matchedAt"
	expressionValues := map[string]types.AttributeValue{
		":matched":   &types.AttributeValueMemberBOOL{Value: true},
		":matchedAt": &types.AttributeValueMemberS{Value: matchedAt},
	}

	_, err := s.Dynamo.UpdateItem(ctx, models.ActionsTable, updateExpression, key, expressionValues, nil)
	if err != nil {
		return NewTransientStoreError(err, "failed to mark action %s -> %s as matched", actorID, targetID)
	}
	return nil
}

func (s *DynamoActionStore) CountLikesSince(ctx context.Context, actorID, since string) (int, error) {
	keyCondition := "PK = :pk"
	expressionValues := map[string]types.AttributeValue{
		":pk":    &types.AttributeValueMemberS{Value: models.ActionPK(actorID)},
		":kind":  &types.AttributeValueMemberS{Value: models.ActionKindLike},
		":since": &types.AttributeValueMemberS{Value: since},
	}
	expressionNames := map[string]string{
		"#kind":      "kind",
		"#createdAt": "createdAt",
	}

	// createdAt is RFC3339 in UTC, so string comparison orders correctly.
	filterExpression := "#kind = :kind AND #createdAt >= :since"

	items, err := s.Dynamo.QueryItemsWithFilters(ctx, models.ActionsTable, keyCondition, expressionValues, expressionNames, filterExpression)
	if err != nil {
		return 0, NewTransientStoreError(err, "failed to count likes for %s", actorID)
	}
	return len(items), nil
}

var _ ActionStore = (*DynamoActionStore)(nil)
