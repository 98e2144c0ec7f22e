/*
Package token implements the Token contract of the group participation suite.

Token contract is a NEP-17 compatible contract holding the balances of the
group participation suite. Group stakes and service reward pools are kept on
the accounts of the Group and Reward contracts respectively, so every move of
staked or rewarded value is an ordinary token transfer that can be tracked by
N3 compatible network monitors and wallet software.

Mint and Burn adjust the total supply and are restricted to the committee:
minting backs service reward emission, burning destroys the undistributed
remainder of finished rounds.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with details.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'Circulation' -> int
   total amount of tokens in circulation in Fixed12
 - a<interop.Hash160> -> std.Serialize(Account)
   balance sheet of all token holders (here Account is a structure defined in current package)
*/
