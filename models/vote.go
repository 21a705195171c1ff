package models

type Vote struct {
	EventCode     string `dynamodbav:"eventCode" json:"eventCode"`
	VoteID        string `dynamodbav:"voteId" json:"voteId"` // Sort key: voterId#outfitOwnerId
	VoterID       string `dynamodbav:"voterId" json:"voterId"`
	OutfitOwnerID string `dynamodbav:"outfitOwnerId" json:"outfitOwnerId"`
	Score         int    `dynamodbav:"score" json:"score"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
}

// LeaderboardEntry is one row of the outfit-vote leaderboard, computed on
// demand from participants and votes.
type LeaderboardEntry struct {
	AnonymousID  string  `json:"anonymousId"`
	Outfit       string  `json:"outfit"`
	AverageScore float64 `json:"averageScore"`
	VoteCount    int     `json:"voteCount"`
}

// VotesTable is the DynamoDB table name for outfit votes
const VotesTable = "Votes"
