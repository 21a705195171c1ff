package services

import (
	"context"
	"fmt"
	"log"

	"vibematch_server/models"
)

// EventGetter is the slice of EventService the matchmaking engine needs.
type EventGetter interface {
	GetEventByCode(ctx context.Context, eventCode string) (*models.Event, error)
}

// ParticipantStore is the slice of ParticipantService the engine needs.
type ParticipantStore interface {
	ParticipantsWithResponses(ctx context.Context, eventCode string) ([]models.Participant, error)
	GetParticipant(ctx context.Context, eventCode, anonymousID string) (*models.Participant, error)
}

// MatchStore persists matchmaking results.
type MatchStore interface {
	MatchesByEvent(ctx context.Context, eventCode string) ([]models.Match, error)
	SaveMatches(ctx context.Context, matches []models.Match) error
	DeleteMatchesByEvent(ctx context.Context, eventCode string) error
}

// MatchService runs matchmaking for an event and serves match lookups.
type MatchService struct {
	Events       EventGetter
	Participants ParticipantStore
	Matches      MatchStore
	Matchmaker   *Matchmaker
}

// Run executes matchmaking for the event. A second run fails with
// ErrAlreadyMatched unless force is set, in which case existing matches are
// deleted before recomputing. The delete-then-write sequence is not atomic;
// a crash mid-run leaves the event match-less and a re-run recovers it.
func (s *MatchService) Run(ctx context.Context, eventCode string, force bool) ([]models.Match, error) {
	event, err := s.Events.GetEventByCode(ctx, eventCode)
	if err != nil {
		return nil, err
	}

	participants, err := s.Participants.ParticipantsWithResponses(ctx, event.EventCode)
	if err != nil {
		return nil, err
	}
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w (needed: 2, found: %d)", ErrInsufficientParticipants, len(participants))
	}

	existing, err := s.Matches.MatchesByEvent(ctx, event.EventCode)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		if !force {
			return nil, ErrAlreadyMatched
		}
		log.Printf("Force re-run: deleting %d existing matches for event %s", len(existing), event.EventCode)
		if err := s.Matches.DeleteMatchesByEvent(ctx, event.EventCode); err != nil {
			return nil, err
		}
	}

	matches := s.Matchmaker.Pair(event.EventCode, participants)
	if err := s.Matches.SaveMatches(ctx, matches); err != nil {
		return nil, err
	}

	log.Printf("✅ Matchmaking for event %s produced %d matches from %d participants",
		event.EventCode, len(matches), len(participants))
	return matches, nil
}

// ParticipantMatch is the client-facing view of one participant's match.
type ParticipantMatch struct {
	Matched            bool   `json:"matched"`
	MatchID            string `json:"matchId,omitempty"`
	MatchParticipantID string `json:"matchParticipantId,omitempty"`
	DisplayName        string `json:"displayName,omitempty"`
	CompatibilityScore int    `json:"compatibilityScore,omitempty"`
	IsWildCard         bool   `json:"isWildCard,omitempty"`
	Outfit             string `json:"outfit,omitempty"`
}

// GetMatchForParticipant resolves the match of one participant, including
// the partner's display name and outfit when available.
func (s *MatchService) GetMatchForParticipant(ctx context.Context, eventCode, anonymousID string) (*ParticipantMatch, error) {
	event, err := s.Events.GetEventByCode(ctx, eventCode)
	if err != nil {
		return nil, err
	}

	matches, err := s.Matches.MatchesByEvent(ctx, event.EventCode)
	if err != nil {
		return nil, err
	}

	for _, match := range matches {
		if !match.Contains(anonymousID) {
			continue
		}

		partnerID := match.PartnerOf(anonymousID)
		if partnerID == "" {
			return &ParticipantMatch{Matched: false}, nil
		}

		result := &ParticipantMatch{
			Matched:            true,
			MatchID:            match.MatchID,
			MatchParticipantID: partnerID,
			DisplayName:        partnerID,
			CompatibilityScore: match.CompatibilityScore,
			IsWildCard:         match.IsWildCard,
		}
		if partner, err := s.Participants.GetParticipant(ctx, event.EventCode, partnerID); err == nil {
			if partner.DisplayName != "" {
				result.DisplayName = partner.DisplayName
			}
			result.Outfit = partner.Outfit
		}
		return result, nil
	}

	return nil, ErrMatchNotFound
}
