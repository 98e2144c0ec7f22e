package verifyconst

const (
	// OnlyGroupOwnerError is returned when a method restricted to the group
	// owner is called by someone else.
	OnlyGroupOwnerError = "only group owner can set delegate"

	// NotVerifierError is returned when scores are submitted by an account
	// that is neither the group owner nor its current delegate.
	NotVerifierError = "caller is not a verifier of the group"

	// LengthMismatchError is returned when member and score lists have
	// different lengths.
	LengthMismatchError = "member and score lists differ in length"

	// NegativeScoreError is returned on an attempt to submit a negative
	// score.
	NegativeScoreError = "score must not be negative"
)
