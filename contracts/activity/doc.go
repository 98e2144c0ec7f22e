/*
Package activity implements the Activity contract of the group participation suite.

Activity contract is the coordination point of the group participation
system. It keeps the single monotone round counter shared by all activity
instances, the registry of activity instances (asset contract plus numeric
activity identifier), the runtime configuration of the suite and the
per-round distrust quotas sourced from the governance voting results.

Quotas are fed by the committee for the current round only. Once the round
counter moves forward, quota and total records of the passed rounds become
immutable history.

# Contract notifications

NewRound notification. This notification is produced when the round counter
is advanced by the committee.

	NewRound:
	  - name: round
	    type: Integer

ActivityAdded notification. This notification is produced when a new
activity instance is registered.

	ActivityAdded:
	  - name: asset
	    type: Hash160
	  - name: activityID
	    type: Integer
*/
package activity

/*
Contract storage model.

# Summary
Key-value storage format (numeric key components are fixed-width integers):
 - 'round' -> int
   current round number
 - 'config' + []byte -> []byte
   runtime configuration records of the suite
 - a<asset><activityID> -> std.Serialize(Instance)
   registered activity instances
 - q<asset><activityID><round><interop.Hash160> -> int
   distrust quota of the voter for the round
 - t<asset><activityID><round> -> int
   total governance votes of the activity for the round

# Rounds
Round-scoped records are written for the current round only. Records of the
passed rounds are read-only history.
*/
