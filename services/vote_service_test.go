package services_test

import (
	"testing"

	"vibematch_server/models"
	"vibematch_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLeaderboard(t *testing.T) {
	participants := []models.Participant{
		{AnonymousID: "P1", Outfit: "Red jacket"},
		{AnonymousID: "P2", Outfit: "Blue dress"},
		{AnonymousID: "P3"}, // No outfit: excluded
		{AnonymousID: "P4", Outfit: "Green hat"},
	}
	votes := []models.Vote{
		{VoterID: "P2", OutfitOwnerID: "P1", Score: 5},
		{VoterID: "P4", OutfitOwnerID: "P1", Score: 4},
		{VoterID: "P1", OutfitOwnerID: "P2", Score: 3},
	}

	leaderboard := services.BuildLeaderboard(participants, votes)
	require.Len(t, leaderboard, 3)

	assert.Equal(t, "P1", leaderboard[0].AnonymousID)
	assert.InDelta(t, 4.5, leaderboard[0].AverageScore, 0.001)
	assert.Equal(t, 2, leaderboard[0].VoteCount)

	assert.Equal(t, "P2", leaderboard[1].AnonymousID)
	assert.InDelta(t, 3.0, leaderboard[1].AverageScore, 0.001)

	// Unvoted outfit still appears, at the bottom.
	assert.Equal(t, "P4", leaderboard[2].AnonymousID)
	assert.Zero(t, leaderboard[2].AverageScore)
	assert.Zero(t, leaderboard[2].VoteCount)
}

func TestBuildLeaderboard_Empty(t *testing.T) {
	assert.Empty(t, services.BuildLeaderboard(nil, nil))
}
