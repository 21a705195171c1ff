package models

type Match struct {
	EventCode          string `dynamodbav:"eventCode" json:"eventCode"`
	MatchID            string `dynamodbav:"matchId" json:"matchId"` // Sort key: both participant ids sorted and joined
	Participant1ID     string `dynamodbav:"participant1Id" json:"participant1Id"`
	Participant2ID     string `dynamodbav:"participant2Id" json:"participant2Id"` // Empty for an unmatched leftover
	CompatibilityScore int    `dynamodbav:"compatibilityScore" json:"compatibilityScore"`
	IsWildCard         bool   `dynamodbav:"isWildCard" json:"isWildCard"`
	CreatedAt          string `dynamodbav:"createdAt" json:"createdAt"`
}

// Contains reports whether the given participant is one side of this match.
func (m Match) Contains(anonymousID string) bool {
	return m.Participant1ID == anonymousID || m.Participant2ID == anonymousID
}

// PartnerOf returns the other side of the match, empty if unmatched.
func (m Match) PartnerOf(anonymousID string) string {
	if m.Participant1ID == anonymousID {
		return m.Participant2ID
	}
	return m.Participant1ID
}

// MatchesTable is the DynamoDB table name for matchmaking results
const MatchesTable = "Matches"
