/*
Package verify implements the Verify contract of the group participation suite.

Verify contract records member scores of participation groups. Scoring is
round-scoped: a group starts every round unverified and becomes verified for
the round by the first score submission. Submissions within one round fully
replace each other, once the round counter advances the recorded scores are
frozen history.

Scoring rights belong to the group owner and to at most one delegate account
appointed by the owner. Setting a delegate revokes the previous one, the
owner keeps its rights in any case.

The contract also derives the verified amount of a group, the sum of the
scored members' stakes weighted by their scores, which the Reward contract
uses as the generation basis of the round.

# Contract notifications

DelegateSet notification. This notification is produced when the group owner
replaces or revokes the scoring delegate.

	DelegateSet:
	  - name: id
	    type: Integer
	  - name: delegate
	    type: Hash160

VerifySuccess notification. This notification is produced when a score
submission is recorded.

	VerifySuccess:
	  - name: id
	    type: Integer
	  - name: round
	    type: Integer
	  - name: amount
	    type: Integer
*/
package verify

/*
Contract storage model.

# Summary
Key-value storage format (numeric key components are fixed-width integers):
 - 'activityScriptHash' -> interop.Hash160
   Activity contract reference
 - 'groupScriptHash' -> interop.Hash160
   Group contract reference
 - d<id> -> interop.Hash160
   current scoring delegate of the group
 - s<id><round><account> -> int
   submitted member scores
 - g<id><round> -> int
   verified amount of the group for the round, presence of the key is the
   verified flag
 - v<asset><activityID><round><id> -> std.Serialize(VerifiedGroup)
   verified groups of the activity instance for the round

# Rounds
Score and verified amount records are written for the current round only.
*/
