package ledger

import "errors"

var (
	// ErrInsufficientFunds is returned when a purchase or watering
	// costs more stars than the player holds. No state changes.
	ErrInsufficientFunds = errors.New("not enough stars")

	// ErrAlreadyUnlocked is returned when purchasing a cosmetic that
	// is already owned; callers should select it instead.
	ErrAlreadyUnlocked = errors.New("already unlocked")

	// ErrLocked is returned when selecting a cosmetic that has not
	// been purchased.
	ErrLocked = errors.New("not unlocked")

	// ErrQuestIncomplete is returned when claiming a daily quest whose
	// target has not been reached.
	ErrQuestIncomplete = errors.New("daily quest not complete")

	// ErrQuestClaimed is returned when claiming a daily quest twice.
	ErrQuestClaimed = errors.New("daily quest already claimed")

	// ErrUnknownCosmetic is returned for ids outside the catalog.
	ErrUnknownCosmetic = errors.New("unknown cosmetic")
)
