package models

// Action kinds
const (
	ActionKindLike = "like"
	ActionKindPass = "pass"
)

// Notification types
const (
	NotificationTypeMatch = "match"
)

// Table names
const (
	ActionsTable       = "Actions"
	ConversationsTable = "Conversations"
	NotificationsTable = "Notifications"
	UserProfilesTable  = "UserProfiles"
)
