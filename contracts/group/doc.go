/*
Package group implements the Group contract of the group participation suite.

Group contract keeps the registry of participation groups and the
multi-dimensional membership index of the suite. A group belongs to one
activity instance and is owned by the account that registered it. Members
join active groups with a staked amount of the activity asset; the stake is
held on the group contract account and returned on exit.

The index answers membership questions in every direction: members of a
group, groups of an account, groups of an owner, assets and accounts related
to each other, and the single group an account holds per activity instance.
Counts and totals are derived from the index itself, there are no separate
counters to keep in sync. Asset level entries are shared by all memberships
of an account under the asset and are removed only with the last of them.

# Contract notifications

GroupAdded notification. This notification is produced when a new group is
registered.

	GroupAdded:
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160

GroupActivated and GroupDeactivated notifications. Produced on lifecycle
transitions performed by the group owner.

	GroupActivated:
	  - name: id
	    type: Integer

	GroupDeactivated:
	  - name: id
	    type: Integer

JoinSuccess notification. This notification is produced when an account
joins a group.

	JoinSuccess:
	  - name: id
	    type: Integer
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

ExitSuccess notification. This notification is produced when an account
leaves a group and the stake is returned.

	ExitSuccess:
	  - name: id
	    type: Integer
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package group

/*
Contract storage model.

# Summary
Key-value storage format (numeric key components are fixed-width integers):
 - 'counter' -> int
   last assigned group ID
 - 'activityScriptHash' -> interop.Hash160
   Activity contract reference
 - x<id> -> std.Serialize(Group)
   groups (here Group is a structure defined in current package)
 - o<owner><id> -> int
   groups of the owner
 - m<id><account> -> int
   members of the group with staked amounts
 - g<account><id> -> int
   groups of the account
 - p<asset><activityID><account> -> int
   the group the account holds within the activity instance
 - q<account><asset><activityID> -> int
   activity instances of the account, the reference count source for the
   asset level entries
 - s<asset><account> -> []byte
   accounts under the asset
 - c<account><asset> -> []byte
   assets of the account

# Index consistency
Join writes every index level the membership touches, Exit removes the
membership levels unconditionally and the shared asset level entries only
when no other activity instance of the account remains under the asset.
*/
