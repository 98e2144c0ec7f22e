package groupconst

const (
	// MinJoinAmountKey is a key in activity config which contains the lower
	// join amount bound.
	MinJoinAmountKey = "MinJoinAmount"
	// MaxJoinAmountKey is a key in activity config which contains the upper
	// join amount bound.
	MaxJoinAmountKey = "MaxJoinAmount"
	// MaxGroupMembersKey is a key in activity config which contains the
	// group capacity.
	MaxGroupMembersKey = "MaxGroupMembers"

	// NotFoundError is returned if the group is missing.
	NotFoundError = "group does not exist"

	// NotActiveError is returned on attempt to join an inactive group.
	NotActiveError = "group is not active"

	// AlreadyMemberError is returned on attempt to join a second group of
	// the same activity instance.
	AlreadyMemberError = "account already participates in the activity"

	// CapacityError is returned when the group member limit is reached.
	CapacityError = "group member limit reached"

	// JoinAmountError is returned when the join amount is out of the
	// configured bounds.
	JoinAmountError = "join amount is out of bounds"
)
