package frost

import "errors"

// The protocol failure classes. Operations wrap these sentinels so callers
// can match with errors.Is while still seeing the failing index or cause in
// the message.
var (
	// ErrMissingData indicates that a required binding factor, commitment,
	// partial signature or share is absent for a given participant.
	ErrMissingData = errors.New("frost: missing data")

	// ErrDegenerateInterpolation indicates that the participant set does not
	// admit Lagrange interpolation, because it is empty, contains a
	// duplicate, or does not contain the requested participant.
	ErrDegenerateInterpolation = errors.New("frost: degenerate interpolation")

	// ErrPrimitiveFailure indicates that the hash to scalar or group
	// arithmetic layer reported a failure. Unreachable for well formed
	// inputs, but propagated rather than swallowed.
	ErrPrimitiveFailure = errors.New("frost: primitive failure")

	// ErrRandomnessExhausted indicates that nonce generation could not
	// obtain usable random bytes.
	ErrRandomnessExhausted = errors.New("frost: randomness exhausted")

	// ErrDuplicateIndex indicates that a participant appears twice, in a
	// commitment list or among the partial signatures of a session.
	ErrDuplicateIndex = errors.New("frost: duplicate participant index")

	// ErrNonceConsumed indicates an attempt to sign twice with the same
	// nonce. The first use wins, the nonce cannot be revived.
	ErrNonceConsumed = errors.New("frost: nonce already consumed")

	// ErrSessionState indicates a session operation invoked out of order.
	ErrSessionState = errors.New("frost: invalid session state")
)
