package distrustconst

const (
	// ZeroAmountError is returned on an attempt to cast a distrust vote of
	// zero weight.
	ZeroAmountError = "distrust vote amount is zero"

	// InvalidReasonError is returned when the vote reason is empty.
	InvalidReasonError = "distrust reason is empty"

	// VerifyVotesZeroError is returned when the voter holds no verify votes
	// in the current round.
	VerifyVotesZeroError = "voter has no verify votes in the round"

	// ExceedsQuotaError is returned when the cumulative distrust weight of
	// the voter would exceed its verify votes.
	ExceedsQuotaError = "distrust votes exceed verify votes"

	// NoActiveGroupsError is returned when the vote target owns no active
	// groups.
	NoActiveGroupsError = "target owner has no active groups"
)
