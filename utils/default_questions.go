package utils

import "vibematch_server/models"

// DefaultQuestions is the question set used when the host supplies none.
// Slots 0 and 1 carry fixed meaning for compatibility gating and must stay
// first: orientation, then relationship goal.
var DefaultQuestions = []models.Question{
	{
		Text: "Which gender(s) are you attracted to?",
		Options: []string{
			"Men",
			"Women",
			"Both men and women",
			"I'm open to all gender identities",
		},
	},
	{
		Text: "What kind of connection are you looking for?",
		Options: []string{
			"Friendship only",
			"Casual dating or fling",
			"Long-term relationship",
			"Friends with benefits",
		},
	},
	{
		Text: "How do you usually handle conflicts?",
		Options: []string{
			"Talk it out immediately",
			"Take time to think before responding",
			"Avoid it and hope it resolves itself",
			"Joke about it to lighten the mood",
		},
	},
	{
		Text: "What's your love language?",
		Options: []string{
			"Words of affirmation",
			"Physical touch",
			"Quality time",
			"Acts of service",
			"Gifts",
		},
	},
	{
		Text: "You have an entire day off with no plans. What do you do?",
		Options: []string{
			"Go on a spontaneous adventure",
			"Stay in and relax",
			"Work on a personal project",
			"Meet up with friends",
		},
	},
	{
		Text: "How do you handle meeting new people?",
		Options: []string{
			"Super social, I talk to everyone",
			"I warm up after a bit",
			"I stick with the people I know",
			"I let others approach me first",
		},
	},
	{
		Text: "How do you like to flirt?",
		Options: []string{
			"Playful teasing",
			"Deep, meaningful convos",
			"Straightforward and direct",
			"Flirting? I'm clueless.",
		},
	},
	{
		Text: "What's your biggest turn-on in a person?",
		Options: []string{
			"Sense of humor",
			"Confidence",
			"Intelligence",
			"Kindness",
		},
	},
	{
		Text: "What's your role at a party?",
		Options: []string{
			"Dancing like no one's watching",
			"Making new friends everywhere",
			"Hosting or planning the fun",
			"Vibing in the background, watching the chaos unfold",
		},
	},
	{
		Text: "What's your ideal date night?",
		Options: []string{
			"Fancy dinner and deep convos",
			"Movie and chill",
			"Something adventurous (hiking, escape room)",
			"A fun night out",
		},
	},
	{
		Text: "How do you usually make decisions?",
		Options: []string{
			"I trust my gut instinct",
			"I analyze everything before deciding",
			"I ask others for advice first",
			"I just go with whatever feels easiest",
		},
	},
	{
		Text: "Do you believe in love at first sight?",
		Options: []string{
			"100%, instant connections are real",
			"Maybe, but love takes time to grow",
			"Not really, attraction is different from love",
			"No, love is built through experiences",
		},
	},
}
