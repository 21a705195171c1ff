package models

// Question is one multiple-choice questionnaire entry for an event.
type Question struct {
	Text    string   `dynamodbav:"text" json:"text"`
	Options []string `dynamodbav:"options" json:"options"`
}

type Event struct {
	EventCode         string     `dynamodbav:"eventCode" json:"eventCode"`
	HostName          string     `dynamodbav:"hostName" json:"hostName"`
	Questions         []Question `dynamodbav:"questions" json:"questions"`
	CountdownDuration int        `dynamodbav:"countdownDuration" json:"countdownDuration"`
	StartTime         string     `dynamodbav:"startTime,omitempty" json:"startTime,omitempty"`
	IsActive          bool       `dynamodbav:"isActive" json:"isActive"`
	CreatedAt         string     `dynamodbav:"createdAt" json:"createdAt"`
}

// EventsTable is the DynamoDB table name for events
const EventsTable = "Events"
