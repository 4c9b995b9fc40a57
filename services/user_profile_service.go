package services

import (
	"context"
	"time"

	"sparkd_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProfileStore is the read surface the gate needs: existence checks and
// display names.
type ProfileStore interface {
	// GetProfile returns the profile for the user, or nil when absent.
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

type UserProfileService struct {
	Dynamo *DynamoService
}

// AddUserProfile adds a new user profile to DynamoDB
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	if profile.CreatedAt == "" {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, NewTransientStoreError(err, "failed to store profile %s", profile.UserID)
	}
	return &profile, nil
}

// GetProfile retrieves a user profile by ID. Absence is not an error here;
// callers decide whether a missing profile is a 404.
func (ups *UserProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, NewTransientStoreError(err, "failed to fetch profile %s", userID)
	}
	if item == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, NewTransientStoreError(err, "failed to unmarshal profile %s", userID)
	}
	return &profile, nil
}

// UpdateUserProfile overwrites mutable profile fields.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	existing, err := ups.GetProfile(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NewNotFoundError("profile %s not found", profile.UserID)
	}

	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, NewTransientStoreError(err, "failed to update profile %s", profile.UserID)
	}
	return &profile, nil
}

// DeleteUserProfile removes a user profile.
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	if err := ups.Dynamo.DeleteItem(ctx, models.UserProfilesTable, key); err != nil {
		return NewTransientStoreError(err, "failed to delete profile %s", userID)
	}
	return nil
}

var _ ProfileStore = (*UserProfileService)(nil)
