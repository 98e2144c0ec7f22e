package rewardconst

const (
	// MaxRecipientsKey is a key in activity config which contains the
	// recipient list length bound.
	MaxRecipientsKey = "MaxRecipients"

	// NotGroupOwnerError is returned when recipients are set by an account
	// that does not own the group.
	NotGroupOwnerError = "only group owner can set recipients"

	// LengthMismatchError is returned when recipient and share lists have
	// different lengths.
	LengthMismatchError = "recipient and share lists differ in length"

	// TooManyRecipientsError is returned when the recipient list exceeds
	// the configured bound.
	TooManyRecipientsError = "too many recipients"

	// ZeroAddressError is returned when a recipient account is zero.
	ZeroAddressError = "zero address recipient"

	// ZeroShareError is returned when a recipient share is zero.
	ZeroShareError = "zero recipient share"

	// InvalidShareError is returned when recipient shares sum up above one
	// full unit.
	InvalidShareError = "recipient shares exceed full unit"

	// SelfRecipientError is returned when the group owner is listed as a
	// recipient.
	SelfRecipientError = "recipient cannot be the group owner"

	// DuplicateRecipientError is returned when an account is listed twice.
	DuplicateRecipientError = "duplicate recipient"

	// RoundNotFinishedError is returned on claim or burn of a round that
	// has not finished yet.
	RoundNotFinishedError = "round is not finished"

	// AlreadyClaimedError is returned on a repeated claim of the same
	// round.
	AlreadyClaimedError = "reward is already claimed"
)
