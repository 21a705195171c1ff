package services

import (
	"context"
	"fmt"

	"vibematch_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchRepository is the DynamoDB-backed store for matchmaking results.
type MatchRepository struct {
	Dynamo *DynamoService
}

// MatchesByEvent lists every match record of an event.
func (r *MatchRepository) MatchesByEvent(ctx context.Context, eventCode string) ([]models.Match, error) {
	keyCondition := "eventCode = :eventCode"
	expressionValues := map[string]types.AttributeValue{
		":eventCode": &types.AttributeValueMemberS{Value: eventCode},
	}

	items, err := r.Dynamo.QueryItems(ctx, models.MatchesTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse matches: %w", err)
	}
	return matches, nil
}

// SaveMatches writes a batch of match records.
func (r *MatchRepository) SaveMatches(ctx context.Context, matches []models.Match) error {
	writeRequests := make([]types.WriteRequest, 0, len(matches))
	for _, match := range matches {
		item, err := attributevalue.MarshalMap(match)
		if err != nil {
			return fmt.Errorf("failed to marshal match: %w", err)
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}
	return r.Dynamo.BatchWriteItems(ctx, models.MatchesTable, writeRequests)
}

// DeleteMatchesByEvent removes every match record of an event, used by the
// force re-run path before recomputing.
func (r *MatchRepository) DeleteMatchesByEvent(ctx context.Context, eventCode string) error {
	matches, err := r.MatchesByEvent(ctx, eventCode)
	if err != nil {
		return err
	}

	writeRequests := make([]types.WriteRequest, 0, len(matches))
	for _, match := range matches {
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"eventCode": &types.AttributeValueMemberS{Value: match.EventCode},
					"matchId":   &types.AttributeValueMemberS{Value: match.MatchID},
				},
			},
		})
	}
	return r.Dynamo.BatchWriteItems(ctx, models.MatchesTable, writeRequests)
}
