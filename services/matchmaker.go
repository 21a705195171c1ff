package services

import (
	"sort"
	"time"

	"vibematch_server/models"
	"vibematch_server/utils"
)

// Matchmaker pairs all participants of one event. Pure computation: it does
// no I/O, so callers own persistence.
type Matchmaker struct {
	Scorer *CompatibilityScorer
}

func NewMatchmaker(scorer *CompatibilityScorer) *Matchmaker {
	return &Matchmaker{Scorer: scorer}
}

// Pair produces a full partition of the given participants into matches:
// a greedy best-score pass over all eligible pairs, then wild-card pairing
// of the leftovers, then a null-partner match if one participant remains.
func (m *Matchmaker) Pair(eventCode string, participants []models.Participant) []models.Match {
	now := time.Now().UTC().Format(time.RFC3339)

	// Score every unordered pair, dropping ineligible ones entirely.
	var candidates []CompatibilityPair
	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			pair, eligible := m.Scorer.Score(participants[i], participants[j])
			if eligible {
				candidates = append(candidates, pair)
			}
		}
	}

	// Highest score first. Stable keeps tie-break deterministic for a
	// fixed input order and jitter sequence.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	matches := make([]models.Match, 0, len(participants)/2+1)
	matched := make(map[string]bool, len(participants))

	// Greedy pass: accept a pair only if both sides are still free.
	for _, pair := range candidates {
		if matched[pair.Participant1ID] || matched[pair.Participant2ID] {
			continue
		}
		matches = append(matches, models.Match{
			EventCode:          eventCode,
			MatchID:            utils.BuildMatchID(pair.Participant1ID, pair.Participant2ID),
			Participant1ID:     pair.Participant1ID,
			Participant2ID:     pair.Participant2ID,
			CompatibilityScore: pair.Score,
			CreatedAt:          now,
		})
		matched[pair.Participant1ID] = true
		matched[pair.Participant2ID] = true
	}

	// Leftovers, in input order.
	var unmatched []models.Participant
	for _, p := range participants {
		if !matched[p.AnonymousID] {
			unmatched = append(unmatched, p)
		}
	}

	// Pair leftovers sequentially without regard to score; a final odd
	// participant gets a match with no partner.
	for i := 0; i < len(unmatched); i += 2 {
		if i+1 < len(unmatched) {
			matches = append(matches, models.Match{
				EventCode:      eventCode,
				MatchID:        utils.BuildMatchID(unmatched[i].AnonymousID, unmatched[i+1].AnonymousID),
				Participant1ID: unmatched[i].AnonymousID,
				Participant2ID: unmatched[i+1].AnonymousID,
				IsWildCard:     true,
				CreatedAt:      now,
			})
		} else {
			matches = append(matches, models.Match{
				EventCode:      eventCode,
				MatchID:        utils.BuildMatchID(unmatched[i].AnonymousID, ""),
				Participant1ID: unmatched[i].AnonymousID,
				CreatedAt:      now,
			})
		}
	}

	return matches
}
