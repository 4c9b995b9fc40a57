package models

// Action is one directed like/pass record from an actor to a target.
// At most one row exists per ordered (actorId, targetId) pair; the store
// enforces this with a conditional put on the key.
type Action struct {
	PK        string  `dynamodbav:"PK" json:"PK"` // "USER#<actorId>"
	SK        string  `dynamodbav:"SK" json:"SK"` // "ACTION#<targetId>"
	ActorID   string  `dynamodbav:"actorId" json:"actorId"`
	TargetID  string  `dynamodbav:"targetId" json:"targetId"`
	Kind      string  `dynamodbav:"kind" json:"kind"` // like, pass
	IsMatched bool    `dynamodbav:"isMatched" json:"isMatched"`
	MatchedAt *string `dynamodbav:"matchedAt,omitempty" json:"matchedAt,omitempty"`
	CreatedAt string  `dynamodbav:"createdAt" json:"createdAt"` // RFC3339 UTC
}

// ActionPK builds the partition key for an actor's action rows.
func ActionPK(actorID string) string {
	return "USER#" + actorID
}

// ActionSK builds the sort key for the row targeting a given user.
func ActionSK(targetID string) string {
	return "ACTION#" + targetID
}
