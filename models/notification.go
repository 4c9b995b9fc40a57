package models

// Notification is a per-recipient event record. Match notifications are
// written by the dispatcher and only ever mutated by the read-state API.
type Notification struct {
	PK              string `dynamodbav:"PK" json:"PK"` // "USER#<recipientId>"
	SK              string `dynamodbav:"SK" json:"SK"` // "NOTIFICATION#<notificationId>"
	NotificationID  string `dynamodbav:"notificationId" json:"notificationId"`
	RecipientID     string `dynamodbav:"recipientId" json:"recipientId"`
	Type            string `dynamodbav:"type" json:"type"` // match
	CounterpartID   string `dynamodbav:"counterpartId" json:"counterpartId"`
	CounterpartName string `dynamodbav:"counterpartName" json:"counterpartName"`
	IsRead          bool   `dynamodbav:"isRead" json:"isRead"`
	CreatedAt       string `dynamodbav:"createdAt" json:"createdAt"`
}

// NotificationPK builds the partition key for a recipient's notifications.
func NotificationPK(recipientID string) string {
	return "USER#" + recipientID
}

// NotificationSK builds the sort key for a single notification.
func NotificationSK(notificationID string) string {
	return "NOTIFICATION#" + notificationID
}
