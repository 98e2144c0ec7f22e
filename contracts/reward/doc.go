/*
Package reward implements the Reward contract of the group participation suite.

Reward contract turns round verification results into token payouts. The
The committee mints a service reward pool per activity round on the contract
account. Every verified group generates reward basis, its verified amount
scaled by the distrust reduction, and the pool divides between group owners
proportionally to the basis their groups generated.

Owners may forward parts of their group rewards with recipient splits. A
split lists accounts with shares in PRECISION units, the owner keeps the
remainder and absorbs truncation dust, so the parts always sum up exactly
to the group reward. Splits are stored as round history: the split in effect
at a round is the most recently set one at or before it.

Owner rewards are gated by the reward service roster kept in this contract.
An owner who was not enrolled during the round, or had resigned by it,
earns 0. Eligibility misses never fail queries, they resolve to 0.

Claims and burns are explicit records. A claim pays the computed amount
once and rejects repetition. A burn destroys the undistributed remainder of
a finished round pool and is a no-op when repeated.

# Contract notifications

RosterJoin and RosterExit notifications. Produced on reward service roster
changes.

	RosterJoin:
	  - name: account
	    type: Hash160

	RosterExit:
	  - name: account
	    type: Hash160

RecipientsSet notification. This notification is produced when a group
owner replaces the reward split.

	RecipientsSet:
	  - name: id
	    type: Integer
	  - name: round
	    type: Integer

ServiceRewardMinted notification. This notification is produced when the
The committee mints a round pool.

	ServiceRewardMinted:
	  - name: asset
	    type: Hash160
	  - name: activityID
	    type: Integer
	  - name: round
	    type: Integer
	  - name: amount
	    type: Integer

ClaimSuccess notification. This notification is produced when a reward is
paid out.

	ClaimSuccess:
	  - name: account
	    type: Hash160
	  - name: round
	    type: Integer
	  - name: amount
	    type: Integer

BurnSuccess notification. This notification is produced when the
undistributed remainder of a round pool is destroyed.

	BurnSuccess:
	  - name: asset
	    type: Hash160
	  - name: activityID
	    type: Integer
	  - name: round
	    type: Integer
	  - name: amount
	    type: Integer
*/
package reward

/*
Contract storage model.

# Summary
Key-value storage format (numeric key components are fixed-width integers):
 - 'activityScriptHash', 'groupScriptHash', 'verifyScriptHash',
   'distrustScriptHash', 'tokenScriptHash' -> interop.Hash160
   suite contract references
 - j<account> -> std.Serialize(RosterEntry)
   reward service roster with join and exit rounds
 - h<id><round> -> std.Serialize(SplitRecord)
   reward split history of the group
 - p<asset><activityID><round> -> int
   minted service reward pool of the activity round
 - r<round><account> -> std.Serialize(RewardRecord)
   claim records, write-once claimed flag
 - b<asset><activityID><round> -> std.Serialize(BurnRecord)
   burn records, write-once burned flag

# Rounds
Pools are minted for the current round, splits are written for the current
round. Claim and burn act on finished rounds only.
*/
