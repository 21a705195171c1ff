package models

import "time"

// ChatMessage is one entry in a chat room's in-memory history. Chat history
// is ephemeral and never written to DynamoDB, so there are no dynamodbav tags.
type ChatMessage struct {
	MessageID   string    `json:"messageId"`
	SenderID    string    `json:"senderId"`
	DisplayName string    `json:"displayName"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}
