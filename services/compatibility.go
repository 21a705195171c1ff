package services

import (
	"math/rand"
	"time"

	"vibematch_server/models"
)

// CompatibilityPair is one scored candidate pairing. Pairs are ephemeral:
// they feed the matchmaker and are never persisted.
type CompatibilityPair struct {
	Participant1ID  string
	Participant2ID  string
	Score           int
	MatchPercentage float64
}

// CompatibilityScorer scores two participants' questionnaire answers. The
// random jitter source is injected so tests can fix the seed and assert
// exact scores.
type CompatibilityScorer struct {
	rng *rand.Rand
}

func NewCompatibilityScorer() *CompatibilityScorer {
	return &CompatibilityScorer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewCompatibilityScorerWithSeed returns a scorer with a deterministic
// jitter sequence.
func NewCompatibilityScorerWithSeed(seed int64) *CompatibilityScorer {
	return &CompatibilityScorer{rng: rand.New(rand.NewSource(seed))}
}

// Score computes the compatibility of two participants. The second return
// value reports eligibility: orientation and relationship-goal conflicts are
// hard exclusions, not low scores.
func (cs *CompatibilityScorer) Score(a, b models.Participant) (CompatibilityPair, bool) {
	pair := CompatibilityPair{
		Participant1ID: a.AnonymousID,
		Participant2ID: b.AnonymousID,
	}

	// Orientation gate: two people exclusively attracted to the same
	// single gender cannot match. "Both"/"open to all" answers are
	// compatible with everyone.
	orientationA, okA := a.ResponseFor(models.QuestionOrientation)
	orientationB, okB := b.ResponseFor(models.QuestionOrientation)
	if okA && okB {
		if orientationA == models.OrientationMen && orientationB == models.OrientationMen {
			return pair, false
		}
		if orientationA == models.OrientationWomen && orientationB == models.OrientationWomen {
			return pair, false
		}
	}

	score := 0

	// Relationship-goal gate: differing goals are fine unless one side
	// wants friendship only. Identical goals earn a large bonus.
	goalA, okA := a.ResponseFor(models.QuestionRelationshipGoal)
	goalB, okB := b.ResponseFor(models.QuestionRelationshipGoal)
	if okA && okB {
		if goalA != goalB && (goalA == models.GoalFriendshipOnly || goalB == models.GoalFriendshipOnly) {
			return pair, false
		}
		if goalA == goalB {
			score += models.ScoreGoalMatch
		}
	}

	// Personality questions: +10 per identical answer over the questions
	// both answered, excluding the two gate questions.
	matchedAnswers := 0
	totalQuestions := 0
	for _, response := range a.Responses {
		if response.QuestionID <= models.QuestionRelationshipGoal {
			continue
		}
		answerB, ok := b.ResponseFor(response.QuestionID)
		if !ok {
			continue
		}
		totalQuestions++
		if response.Answer == answerB {
			score += models.ScorePerMatchedAnswer
			matchedAnswers++
		}
	}

	if totalQuestions > 0 {
		pair.MatchPercentage = float64(matchedAnswers) / float64(totalQuestions) * 100
	}
	if pair.MatchPercentage > models.HighMatchThreshold {
		score += models.ScoreHighMatchBonus
	}

	// Small random factor keeps pairings from being fully predictable.
	score += cs.rng.Intn(models.MaxScoreJitter)

	pair.Score = score
	return pair, true
}
