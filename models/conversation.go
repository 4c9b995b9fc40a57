package models

// Conversation is the single record created for an unordered pair of users
// once they match. The pair id is derived from the canonically ordered
// participant ids, so both match directions map to the same row.
type Conversation struct {
	PairID          string `dynamodbav:"pairId" json:"pairId"` // "PAIR#<low>#<high>"
	ConversationID  string `dynamodbav:"conversationId" json:"conversationId"`
	ParticipantLow  string `dynamodbav:"participantLow" json:"participantLow"`
	ParticipantHigh string `dynamodbav:"participantHigh" json:"participantHigh"`
	CreatedAt       string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt       string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// CanonicalPair orders two user ids lexicographically.
func CanonicalPair(a, b string) (low, high string) {
	if a < b {
		return a, b
	}
	return b, a
}

// CanonicalPairID maps an unordered user pair to its storage key.
func CanonicalPairID(a, b string) string {
	low, high := CanonicalPair(a, b)
	return "PAIR#" + low + "#" + high
}
