package services

import (
	"context"
	"fmt"
	"time"

	"vibematch_server/models"
	"vibematch_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FollowUpService struct
type FollowUpService struct {
	Dynamo       *DynamoService
	Events       *EventService
	Participants *ParticipantService
	Matches      MatchStore
}

// SubmitFollowUp records whether a matched participant wants to reconnect
// after the event. Re-submitting overwrites the earlier answer.
func (s *FollowUpService) SubmitFollowUp(ctx context.Context, eventCode, participantID string, reconnect bool, contactInfo string) error {
	if participantID == "" {
		return fmt.Errorf("%w: participant ID is required", ErrValidation)
	}

	event, err := s.Events.GetEventByCode(ctx, eventCode)
	if err != nil {
		return err
	}
	if _, err := s.Participants.GetParticipant(ctx, event.EventCode, participantID); err != nil {
		return err
	}

	// Only participants with an actual partner can follow up.
	matches, err := s.Matches.MatchesByEvent(ctx, event.EventCode)
	if err != nil {
		return err
	}
	hasPartner := false
	for _, match := range matches {
		if match.Contains(participantID) && match.PartnerOf(participantID) != "" {
			hasPartner = true
			break
		}
	}
	if !hasPartner {
		return fmt.Errorf("%w: participant does not have a valid match", ErrValidation)
	}

	followUp := models.FollowUp{
		EventCode:     event.EventCode,
		ParticipantID: participantID,
		Reconnect:     reconnect,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if reconnect {
		followUp.ContactInfo = contactInfo
	}
	return s.Dynamo.PutItem(ctx, models.FollowUpsTable, followUp)
}

// Stats aggregates anonymized follow-up numbers for the event host,
// including how many matched pairs both said yes.
func (s *FollowUpService) Stats(ctx context.Context, eventCode string) (*models.FollowUpStats, error) {
	event, err := s.Events.GetEventByCode(ctx, eventCode)
	if err != nil {
		return nil, err
	}

	keyCondition := "eventCode = :eventCode"
	expressionValues := map[string]types.AttributeValue{
		":eventCode": &types.AttributeValueMemberS{Value: event.EventCode},
	}
	items, err := s.Dynamo.QueryItems(ctx, models.FollowUpsTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch follow-ups: %w", err)
	}

	var followUps []models.FollowUp
	if err := attributevalue.UnmarshalListOfMaps(items, &followUps); err != nil {
		return nil, fmt.Errorf("failed to parse follow-ups: %w", err)
	}

	stats := &models.FollowUpStats{TotalResponses: len(followUps)}
	wantReconnect := make(map[string]bool, len(followUps))
	for _, f := range followUps {
		if f.Reconnect {
			stats.WantReconnect++
			wantReconnect[f.ParticipantID] = true
		}
	}

	// A mutual match is a pair where both sides answered yes.
	matches, err := s.Matches.MatchesByEvent(ctx, event.EventCode)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, match := range matches {
		if match.Participant2ID == "" {
			continue
		}
		pairKey := utils.BuildMatchID(match.Participant1ID, match.Participant2ID)
		if seen[pairKey] {
			continue
		}
		seen[pairKey] = true
		if wantReconnect[match.Participant1ID] && wantReconnect[match.Participant2ID] {
			stats.MutualMatches++
		}
	}

	return stats, nil
}
