package services

import "errors"

// Errors shared across services
var (
	// ErrAdminRequired is returned when a non-admin actor invokes an
	// admin-only operation.
	ErrAdminRequired = errors.New("admin access required")

	// ErrNotOwner is returned when an actor reads a record belonging to
	// someone else.
	ErrNotOwner = errors.New("access denied")

	// ErrNumberExhausted is returned when generating a unique business
	// number keeps colliding after the retry budget.
	ErrNumberExhausted = errors.New("could not generate a unique reference number")
)

// maxNumberAttempts bounds the retry loop around business-number
// generation. The number format embeds unix millis plus five random
// characters, so collisions are astronomically rare; three attempts is
// already generous.
const maxNumberAttempts = 3
