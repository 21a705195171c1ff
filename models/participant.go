package models

// Response is a participant's answer to one event question.
type Response struct {
	QuestionID int    `dynamodbav:"questionId" json:"questionId"`
	Answer     string `dynamodbav:"answer" json:"answer"`
}

type Participant struct {
	EventCode   string     `dynamodbav:"eventCode" json:"eventCode"`
	AnonymousID string     `dynamodbav:"anonymousId" json:"anonymousId"`
	DisplayName string     `dynamodbav:"displayName" json:"displayName"`
	Responses   []Response `dynamodbav:"responses" json:"responses"`
	Outfit      string     `dynamodbav:"outfit,omitempty" json:"outfit,omitempty"`
	IsActive    bool       `dynamodbav:"isActive" json:"isActive"`
	CreatedAt   string     `dynamodbav:"createdAt" json:"createdAt"`
}

// ResponseFor returns the participant's answer for a question, if present.
func (p Participant) ResponseFor(questionID int) (string, bool) {
	for _, r := range p.Responses {
		if r.QuestionID == questionID {
			return r.Answer, true
		}
	}
	return "", false
}

// ParticipantsTable is the DynamoDB table name for event participants
const ParticipantsTable = "Participants"
