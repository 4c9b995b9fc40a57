package services

import (
	"context"
	"errors"
	"time"

	"sparkd_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// NotificationStore persists per-recipient notification records.
type NotificationStore interface {
	PutNotification(ctx context.Context, notification *models.Notification) error
	ListForUser(ctx context.Context, userID string, limit int32) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

// NotificationDynamo is the slice of the DynamoDB layer this service uses.
type NotificationDynamo interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	QueryItemsWithOptions(ctx context.Context, tableName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error)
	UpdateItemWithCondition(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, conditionExpression string) (map[string]types.AttributeValue, error)
}

// NotificationService stores notifications in the Notifications table,
// partitioned by recipient.
type NotificationService struct {
	Dynamo NotificationDynamo
}

func (s *NotificationService) PutNotification(ctx context.Context, notification *models.Notification) error {
	if notification.NotificationID == "" {
		notification.NotificationID = uuid.NewString()
	}
	notification.PK = models.NotificationPK(notification.RecipientID)
	notification.SK = models.NotificationSK(notification.NotificationID)
	if notification.CreatedAt == "" {
		notification.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.Dynamo.PutItem(ctx, models.NotificationsTable, notification); err != nil {
		return NewTransientStoreError(err, "failed to store notification for %s", notification.RecipientID)
	}
	return nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string, limit int32) ([]models.Notification, error) {
	keyCondition := "PK = :pk AND begins_with(SK, :prefix)"
	expressionValues := map[string]types.AttributeValue{
		":pk":     &types.AttributeValueMemberS{Value: models.NotificationPK(userID)},
		":prefix": &types.AttributeValueMemberS{Value: "NOTIFICATION#"},
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.NotificationsTable, keyCondition, expressionValues, nil, limit, true)
	if err != nil {
		return nil, NewTransientStoreError(err, "failed to list notifications for %s", userID)
	}

	var notifications []models.Notification
	if err := attributevalue.UnmarshalListOfMaps(items, &notifications); err != nil {
		return nil, NewTransientStoreError(err, "failed to unmarshal notifications for %s", userID)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: models.NotificationPK(userID)},
		"SK": &types.AttributeValueMemberS{Value: models.NotificationSK(notificationID)},
	}

	updateExpression := "SET isRead = :read"
	expressionValues := map[string]types.AttributeValue{
		":read": &types.AttributeValueMemberBOOL{Value: true},
	}

	// Guarded so a bogus id cannot upsert a phantom row; only the
	// dispatcher creates notifications.
	_, err := s.Dynamo.UpdateItemWithCondition(ctx, models.NotificationsTable, updateExpression, key, expressionValues, nil, "attribute_exists(PK)")
	if errors.Is(err, ErrConditionalCheckFailed) {
		return NewNotFoundError("notification %s not found for %s", notificationID, userID)
	}
	if err != nil {
		return NewTransientStoreError(err, "failed to mark notification %s read for %s", notificationID, userID)
	}
	return nil
}

var _ NotificationStore = (*NotificationService)(nil)
