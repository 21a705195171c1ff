package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"vibematch_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// VoteService struct
type VoteService struct {
	Dynamo       *DynamoService
	Events       *EventService
	Participants *ParticipantService
}

// SubmitVote records or updates one participant's 1-5 rating of another
// participant's outfit.
func (s *VoteService) SubmitVote(ctx context.Context, eventCode, voterID, outfitOwnerID string, score int) error {
	if voterID == "" || outfitOwnerID == "" {
		return fmt.Errorf("%w: voter ID and outfit owner ID are required", ErrValidation)
	}
	if score < 1 || score > 5 {
		return fmt.Errorf("%w: score must be an integer between 1 and 5", ErrValidation)
	}
	if voterID == outfitOwnerID {
		return fmt.Errorf("%w: cannot vote for your own outfit", ErrValidation)
	}

	event, err := s.Events.GetEventByCode(ctx, eventCode)
	if err != nil {
		return err
	}
	if _, err := s.Participants.GetParticipant(ctx, event.EventCode, voterID); err != nil {
		return err
	}
	owner, err := s.Participants.GetParticipant(ctx, event.EventCode, outfitOwnerID)
	if err != nil {
		return err
	}
	if owner.Outfit == "" {
		return fmt.Errorf("%w: target participant has not submitted an outfit", ErrValidation)
	}

	// PutItem overwrites, so a revote updates in place.
	vote := models.Vote{
		EventCode:     event.EventCode,
		VoteID:        voterID + "#" + outfitOwnerID,
		VoterID:       voterID,
		OutfitOwnerID: outfitOwnerID,
		Score:         score,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	return s.Dynamo.PutItem(ctx, models.VotesTable, vote)
}

// VotesByEvent lists every vote cast in an event.
func (s *VoteService) VotesByEvent(ctx context.Context, eventCode string) ([]models.Vote, error) {
	keyCondition := "eventCode = :eventCode"
	expressionValues := map[string]types.AttributeValue{
		":eventCode": &types.AttributeValueMemberS{Value: eventCode},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.VotesTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch votes: %w", err)
	}

	var votes []models.Vote
	if err := attributevalue.UnmarshalListOfMaps(items, &votes); err != nil {
		return nil, fmt.Errorf("failed to parse votes: %w", err)
	}
	return votes, nil
}

// Leaderboard computes the outfit leaderboard for an event, highest average
// score first.
func (s *VoteService) Leaderboard(ctx context.Context, eventCode string) ([]models.LeaderboardEntry, error) {
	event, err := s.Events.GetEventByCode(ctx, eventCode)
	if err != nil {
		return nil, err
	}

	participants, err := s.Participants.ParticipantsByEvent(ctx, event.EventCode)
	if err != nil {
		return nil, err
	}
	votes, err := s.VotesByEvent(ctx, event.EventCode)
	if err != nil {
		return nil, err
	}

	return BuildLeaderboard(participants, votes), nil
}

// BuildLeaderboard ranks participants with outfits by their average vote
// score. Participants without votes appear with a zero average.
func BuildLeaderboard(participants []models.Participant, votes []models.Vote) []models.LeaderboardEntry {
	totals := make(map[string]int)
	counts := make(map[string]int)
	for _, vote := range votes {
		totals[vote.OutfitOwnerID] += vote.Score
		counts[vote.OutfitOwnerID]++
	}

	leaderboard := make([]models.LeaderboardEntry, 0, len(participants))
	for _, p := range participants {
		if p.Outfit == "" {
			continue
		}
		entry := models.LeaderboardEntry{
			AnonymousID: p.AnonymousID,
			Outfit:      p.Outfit,
			VoteCount:   counts[p.AnonymousID],
		}
		if entry.VoteCount > 0 {
			entry.AverageScore = float64(totals[p.AnonymousID]) / float64(entry.VoteCount)
		}
		leaderboard = append(leaderboard, entry)
	}

	sort.SliceStable(leaderboard, func(i, j int) bool {
		return leaderboard[i].AverageScore > leaderboard[j].AverageScore
	})
	return leaderboard
}
