package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"vibematch_server/models"
	"vibematch_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ParticipantService struct
type ParticipantService struct {
	Dynamo *DynamoService
	Events *EventService
}

// JoinEvent registers a new anonymous participant for an active event.
func (s *ParticipantService) JoinEvent(ctx context.Context, eventCode, displayName string) (*models.Participant, error) {
	event, err := s.Events.GetEventByCode(ctx, eventCode)
	if err != nil {
		return nil, err
	}
	if !event.IsActive {
		return nil, ErrEventInactive
	}

	// Retry the "PlayerNNN" id until it is unique within the event.
	var anonymousID string
	for {
		anonymousID = utils.GenerateAnonymousID()
		_, err := s.GetParticipant(ctx, eventCode, anonymousID)
		if errors.Is(err, ErrParticipantNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if displayName == "" {
		displayName = anonymousID
	}

	participant := models.Participant{
		EventCode:   eventCode,
		AnonymousID: anonymousID,
		DisplayName: displayName,
		Responses:   []models.Response{},
		IsActive:    true,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.ParticipantsTable, participant); err != nil {
		return nil, fmt.Errorf("failed to save participant: %w", err)
	}

	log.Printf("✅ %s joined event %s as %s", displayName, eventCode, anonymousID)
	return &participant, nil
}

// GetParticipant retrieves one participant of an event.
func (s *ParticipantService) GetParticipant(ctx context.Context, eventCode, anonymousID string) (*models.Participant, error) {
	key := map[string]types.AttributeValue{
		"eventCode":   &types.AttributeValueMemberS{Value: eventCode},
		"anonymousId": &types.AttributeValueMemberS{Value: anonymousID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.ParticipantsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	var participant models.Participant
	if err := attributevalue.UnmarshalMap(item, &participant); err != nil {
		return nil, fmt.Errorf("failed to parse participant: %w", err)
	}
	return &participant, nil
}

// ParticipantsByEvent lists every participant of an event.
func (s *ParticipantService) ParticipantsByEvent(ctx context.Context, eventCode string) ([]models.Participant, error) {
	keyCondition := "eventCode = :eventCode"
	expressionValues := map[string]types.AttributeValue{
		":eventCode": &types.AttributeValueMemberS{Value: eventCode},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.ParticipantsTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}

	var participants []models.Participant
	if err := attributevalue.UnmarshalListOfMaps(items, &participants); err != nil {
		return nil, fmt.Errorf("failed to parse participants: %w", err)
	}
	return participants, nil
}

// ParticipantsWithResponses lists the participants of an event that have
// submitted at least one questionnaire answer.
func (s *ParticipantService) ParticipantsWithResponses(ctx context.Context, eventCode string) ([]models.Participant, error) {
	participants, err := s.ParticipantsByEvent(ctx, eventCode)
	if err != nil {
		return nil, err
	}

	answered := participants[:0]
	for _, p := range participants {
		if len(p.Responses) > 0 {
			answered = append(answered, p)
		}
	}
	return answered, nil
}

// SubmitResponses replaces a participant's questionnaire answers.
func (s *ParticipantService) SubmitResponses(ctx context.Context, eventCode, anonymousID string, responses []models.Response) error {
	if len(responses) == 0 {
		return fmt.Errorf("%w: responses are required", ErrValidation)
	}
	for _, r := range responses {
		if r.QuestionID < 0 || r.Answer == "" {
			return fmt.Errorf("%w: each response must have questionId and answer", ErrValidation)
		}
	}

	participant, err := s.GetParticipant(ctx, eventCode, anonymousID)
	if err != nil {
		return err
	}

	participant.Responses = responses
	if err := s.Dynamo.PutItem(ctx, models.ParticipantsTable, *participant); err != nil {
		return fmt.Errorf("failed to save responses: %w", err)
	}
	return nil
}

// SubmitOutfit records a participant's outfit description.
func (s *ParticipantService) SubmitOutfit(ctx context.Context, eventCode, anonymousID, outfit string) error {
	if outfit == "" {
		return fmt.Errorf("%w: outfit description is required", ErrValidation)
	}

	participant, err := s.GetParticipant(ctx, eventCode, anonymousID)
	if err != nil {
		return err
	}

	participant.Outfit = outfit
	if err := s.Dynamo.PutItem(ctx, models.ParticipantsTable, *participant); err != nil {
		return fmt.Errorf("failed to save outfit: %w", err)
	}
	return nil
}
