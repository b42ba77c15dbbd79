package services

import "errors"

// Client-facing failures; handlers map these onto HTTP statuses.
var (
	ErrEventNotFound          = errors.New("event not found")
	ErrLoginStreakExceeded    = errors.New("login streak days cannot exceed the maximum")
	ErrMonsterIDRequired      = errors.New("hunt events require a monster id")
	ErrRewardNotFound         = errors.New("reward not found")
	ErrRewardRequestNotFound  = errors.New("reward request not found")
	ErrDuplicateRewardRequest = errors.New("a reward request for this event already exists")
)

// ErrUnsupportedEventType means an event type was introduced without a
// registered checker. That is a wiring bug, not user input — surface it loudly.
var ErrUnsupportedEventType = errors.New("unsupported event type")
