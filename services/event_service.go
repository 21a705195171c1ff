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

// EventService struct
type EventService struct {
	Dynamo *DynamoService
}

const defaultCountdownDuration = 3600 // 1 hour in seconds

// CreateEvent creates a new event with a unique 6-character code. When the
// host supplies no questions the default question set is used.
func (s *EventService) CreateEvent(ctx context.Context, hostName string, questions []models.Question, countdownDuration int) (*models.Event, error) {
	if hostName == "" {
		return nil, fmt.Errorf("%w: host name is required", ErrValidation)
	}
	if questions == nil {
		questions = utils.DefaultQuestions
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: questions must be a non-empty array", ErrValidation)
	}
	if countdownDuration <= 0 {
		countdownDuration = defaultCountdownDuration
	}

	// Retry code generation until it does not collide.
	var eventCode string
	for {
		eventCode = utils.GenerateEventCode()
		_, err := s.GetEventByCode(ctx, eventCode)
		if errors.Is(err, ErrEventNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		log.Printf("Event code collision on %s, regenerating", eventCode)
	}

	event := models.Event{
		EventCode:         eventCode,
		HostName:          hostName,
		Questions:         questions,
		CountdownDuration: countdownDuration,
		IsActive:          true,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.EventsTable, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	log.Printf("✅ Created event %s hosted by %s", eventCode, hostName)
	return &event, nil
}

// GetEventByCode retrieves an event by its code.
func (s *EventService) GetEventByCode(ctx context.Context, eventCode string) (*models.Event, error) {
	if !utils.ValidateEventCode(eventCode) {
		return nil, fmt.Errorf("%w: invalid event code format", ErrValidation)
	}

	key := map[string]types.AttributeValue{
		"eventCode": &types.AttributeValueMemberS{Value: eventCode},
	}
	item, err := s.Dynamo.GetItem(ctx, models.EventsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var event models.Event
	if err := attributevalue.UnmarshalMap(item, &event); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}
	return &event, nil
}

// StartEvent stamps the event's start time.
func (s *EventService) StartEvent(ctx context.Context, eventCode string) (*models.Event, error) {
	event, err := s.GetEventByCode(ctx, eventCode)
	if err != nil {
		return nil, err
	}

	event.StartTime = time.Now().UTC().Format(time.RFC3339)
	if err := s.Dynamo.PutItem(ctx, models.EventsTable, *event); err != nil {
		return nil, fmt.Errorf("failed to start event: %w", err)
	}
	return event, nil
}

// EventQR renders the join QR code for an existing event.
func (s *EventService) EventQR(ctx context.Context, eventCode, baseURL string) (*utils.EventQR, error) {
	if _, err := s.GetEventByCode(ctx, eventCode); err != nil {
		return nil, err
	}
	return utils.GenerateEventQR(eventCode, baseURL)
}
