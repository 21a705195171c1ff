package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
)

const eventCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var eventCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// GenerateEventCode returns a random 6-character alphanumeric event code.
// Uniqueness is the caller's job (retry against the store).
func GenerateEventCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = eventCodeChars[rand.Intn(len(eventCodeChars))]
	}
	return string(b)
}

// ValidateEventCode reports whether a code matches the expected format.
func ValidateEventCode(code string) bool {
	return eventCodePattern.MatchString(code)
}

// GenerateAnonymousID returns a "PlayerNNN" identifier with a random
// 3-digit suffix. Uniqueness within an event is the caller's job.
func GenerateAnonymousID() string {
	return fmt.Sprintf("Player%d", rand.Intn(900)+100)
}

// BuildMatchID derives the shared chat/match identifier for a pair: both
// participant ids sorted lexicographically and joined, so either side can
// compute it without a lookup. A solo (unmatched) participant gets their
// own id back.
func BuildMatchID(participant1ID, participant2ID string) string {
	if participant2ID == "" {
		return participant1ID
	}
	ids := []string{participant1ID, participant2ID}
	sort.Strings(ids)
	return strings.Join(ids, "#")
}
