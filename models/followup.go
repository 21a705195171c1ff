package models

type FollowUp struct {
	EventCode     string `dynamodbav:"eventCode" json:"eventCode"`
	ParticipantID string `dynamodbav:"participantId" json:"participantId"`
	Reconnect     bool   `dynamodbav:"reconnect" json:"reconnect"`
	ContactInfo   string `dynamodbav:"contactInfo,omitempty" json:"contactInfo,omitempty"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
}

// FollowUpStats is the anonymized summary returned to the event host.
type FollowUpStats struct {
	TotalResponses int `json:"totalResponses"`
	WantReconnect  int `json:"wantReconnect"`
	MutualMatches  int `json:"mutualMatches"`
}

// FollowUpsTable is the DynamoDB table name for post-event follow-ups
const FollowUpsTable = "FollowUps"
