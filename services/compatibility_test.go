package services_test

import (
	"testing"

	"vibematch_server/models"
	"vibematch_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func participant(id string, answers ...string) models.Participant {
	p := models.Participant{AnonymousID: id, EventCode: "ABC123"}
	for i, answer := range answers {
		p.Responses = append(p.Responses, models.Response{QuestionID: i, Answer: answer})
	}
	return p
}

func TestScore_OrientationGate(t *testing.T) {
	scorer := services.NewCompatibilityScorerWithSeed(1)

	tests := []struct {
		name     string
		a, b     string
		eligible bool
	}{
		{"both exclusively men", "Men", "Men", false},
		{"both exclusively women", "Women", "Women", false},
		{"men and women", "Men", "Women", true},
		{"open to all matches men", "I'm open to all gender identities", "Men", true},
		{"both open", "Both men and women", "Both men and women", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := participant("P1", tt.a, "Long-term relationship")
			b := participant("P2", tt.b, "Long-term relationship")
			_, eligible := scorer.Score(a, b)
			assert.Equal(t, tt.eligible, eligible)
		})
	}
}

func TestScore_RelationshipGoalGate(t *testing.T) {
	scorer := services.NewCompatibilityScorerWithSeed(1)

	a := participant("P1", "Women", "Friendship only")
	b := participant("P2", "Men", "Long-term relationship")
	_, eligible := scorer.Score(a, b)
	assert.False(t, eligible, "friendship-only vs differing goal is a hard exclusion")

	// Identical friendship-only goals are fine.
	b = participant("P2", "Men", "Friendship only")
	_, eligible = scorer.Score(a, b)
	assert.True(t, eligible)

	// Differing goals without friendship-only are allowed, just unboosted.
	a = participant("P1", "Women", "Casual dating or fling")
	b = participant("P2", "Men", "Long-term relationship")
	_, eligible = scorer.Score(a, b)
	assert.True(t, eligible)
}

// Base 75 scenario: +30 goal match, +30 for three identical answers,
// +15 high-percentage bonus, plus jitter in [0, 15).
func TestScore_ConcreteScenario(t *testing.T) {
	scorer := services.NewCompatibilityScorer()

	a := participant("P1", "Women", "Long-term relationship", "x", "y", "z")
	b := participant("P2", "Men", "Long-term relationship", "x", "y", "z")

	for i := 0; i < 50; i++ {
		pair, eligible := scorer.Score(a, b)
		require.True(t, eligible)
		assert.GreaterOrEqual(t, pair.Score, 75)
		assert.Less(t, pair.Score, 90)
		assert.InDelta(t, 100.0, pair.MatchPercentage, 0.001)
	}
}

func TestScore_ExactWithFixedSeed(t *testing.T) {
	// Two scorers with the same seed produce identical jitter sequences.
	s1 := services.NewCompatibilityScorerWithSeed(42)
	s2 := services.NewCompatibilityScorerWithSeed(42)

	a := participant("P1", "Women", "Long-term relationship", "x", "y", "z")
	b := participant("P2", "Men", "Long-term relationship", "x", "y", "z")

	p1, _ := s1.Score(a, b)
	p2, _ := s2.Score(a, b)
	assert.Equal(t, p1.Score, p2.Score)
}

func TestScore_MatchPercentageZeroWhenNoSharedQuestions(t *testing.T) {
	scorer := services.NewCompatibilityScorerWithSeed(1)

	a := participant("P1", "Women", "Long-term relationship")
	b := participant("P2", "Men", "Long-term relationship")
	pair, eligible := scorer.Score(a, b)
	require.True(t, eligible)
	assert.Zero(t, pair.MatchPercentage)
	// Goal bonus plus jitter only.
	assert.GreaterOrEqual(t, pair.Score, 30)
	assert.Less(t, pair.Score, 45)
}

// Score is monotonic in matched-answer count ignoring jitter: five shared
// answers beat two by at least 30 minus the maximum jitter delta.
func TestScore_MonotonicInMatchedAnswers(t *testing.T) {
	scorer := services.NewCompatibilityScorer()

	five1 := participant("A1", "Women", "Long-term relationship", "a", "b", "c", "d", "e", "q", "r")
	five2 := participant("A2", "Men", "Long-term relationship", "a", "b", "c", "d", "e", "s", "t")
	two1 := participant("B1", "Women", "Long-term relationship", "a", "b", "x", "y", "z", "q", "r")
	two2 := participant("B2", "Men", "Long-term relationship", "a", "b", "u", "v", "w", "s", "t")

	for i := 0; i < 50; i++ {
		pairFive, eligible := scorer.Score(five1, five2)
		require.True(t, eligible)
		pairTwo, eligible := scorer.Score(two1, two2)
		require.True(t, eligible)

		assert.GreaterOrEqual(t, pairFive.Score-pairTwo.Score, (5-2)*10-15)
	}
}

func TestScore_SkipsUnansweredQuestions(t *testing.T) {
	scorer := services.NewCompatibilityScorerWithSeed(7)

	a := participant("P1", "Women", "Long-term relationship", "a", "b")
	// Only answered questions 0-2; questions 3+ do not count toward the total.
	b := participant("P2", "Men", "Long-term relationship", "a")

	pair, eligible := scorer.Score(a, b)
	require.True(t, eligible)
	assert.InDelta(t, 100.0, pair.MatchPercentage, 0.001)
}
