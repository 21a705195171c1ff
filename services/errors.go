package services

import "errors"

// Sentinel errors returned by the event, participant and matchmaking
// services. Controllers map these onto HTTP statuses with errors.Is.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrEventInactive       = errors.New("event is no longer active")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrMatchNotFound       = errors.New("no match found for this participant")

	// ErrAlreadyMatched means matchmaking already ran for the event and
	// force was not set.
	ErrAlreadyMatched = errors.New("matchmaking has already been performed for this event")

	// ErrInsufficientParticipants means fewer than two participants have
	// submitted responses.
	ErrInsufficientParticipants = errors.New("not enough participants with responses for matchmaking")

	ErrValidation = errors.New("validation failed")
)
