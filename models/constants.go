package models

// Question slots with fixed meaning for the compatibility gates
const (
	QuestionOrientation      = 0
	QuestionRelationshipGoal = 1
)

// Orientation answers that are a hard exclusion when both sides give them
const (
	OrientationMen   = "Men"
	OrientationWomen = "Women"
)

// Relationship-goal answer that blocks any differing-goal pairing
const GoalFriendshipOnly = "Friendship only"

// Scoring weights for the compatibility algorithm
const (
	ScoreGoalMatch        = 30
	ScorePerMatchedAnswer = 10
	ScoreHighMatchBonus   = 15
	HighMatchThreshold    = 70.0
	MaxScoreJitter        = 15
)
