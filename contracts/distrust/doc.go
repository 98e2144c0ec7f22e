/*
Package distrust implements the Distrust contract of the group participation suite.

Distrust contract lets holders of verification votes put bounded distrust
weight on group owners. Votes are round-scoped and strictly additive: weight
accumulates and never decreases within a round, and the total weight a voter
casts is capped by its verify votes quota sourced from the governance
results through the Activity contract.

From the per-target aggregates the contract derives two complementary
ratios in PRECISION units. Rate is the penalty view, the share of the
activity governance votes cast against the owner, resolving to 0 when no
information exists. Reduction is the pass-through multiplier applied to
reward generation, resolving to PRECISION when no information exists. The
two sum to PRECISION exactly when the group was verified in the round and
the activity had governance votes in it.

# Contract notifications

DistrustVoteSuccess notification. This notification is produced when
distrust weight is added.

	DistrustVoteSuccess:
	  - name: voter
	    type: Hash160
	  - name: target
	    type: Hash160
	  - name: round
	    type: Integer
	  - name: amount
	    type: Integer
*/
package distrust

/*
Contract storage model.

# Summary
Key-value storage format (numeric key components are fixed-width integers):
 - 'activityScriptHash' -> interop.Hash160
   Activity contract reference
 - 'groupScriptHash' -> interop.Hash160
   Group contract reference
 - 'verifyScriptHash' -> interop.Hash160
   Verify contract reference
 - u<asset><activityID><round><voter> -> int
   total distrust weight cast by the voter in the round
 - w<asset><activityID><round><voter><target> -> std.Serialize(Vote)
   cumulative votes per voter and target with the latest reason
 - z<asset><activityID><round><target> -> int
   total distrust weight against the target owner in the round

# Rounds
Vote records are written for the current round only.
*/
