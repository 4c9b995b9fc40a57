package models

// UserProfile holds the profile attributes this service reads and writes.
type UserProfile struct {
	UserID    string   `dynamodbav:"userId" json:"userId"`
	Name      string   `dynamodbav:"name" json:"name"`
	Gender    string   `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	Bio       string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Photos    []string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	CreatedAt string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string   `dynamodbav:"updatedAt" json:"updatedAt"`
}
