/*
Package custody implements Custody contract which keeps tracked balances
of whitelisted clients backed by a pooled holding of a NEP-17 settlement
asset (native GAS by default).

The owner, an account fixed at deployment, curates the whitelist. Every
whitelisted client has exactly one balance entry, and a client without an
entry is not whitelisted. Clients deposit the asset into the contract holding
and withdraw it back; the sum of tracked balances is always equal to the part
of the holding received through the contract, so it never exceeds the holding
itself.

Clients can also deposit by transferring the asset to the contract address
directly; such transfers are credited like Deposit calls. Transfers from
accounts that are not whitelisted are rejected.

Removal from the whitelist releases the remaining balance of the client. The
released balance stays in the holding and is counted in the total until the
client claims it back.

# Contract notifications

Whitelisted notification. This notification is produced when a client is
added to the whitelist.

	Whitelisted:
	  - name: client
	    type: Hash160

RemovedFromWhitelist notification. This notification is produced when a
client is removed from the whitelist.

	RemovedFromWhitelist:
	  - name: client
	    type: Hash160

Deposited notification. This notification is produced when client's tracked
balance is credited.

	Deposited:
	  - name: client
	    type: Hash160
	  - name: amount
	    type: Integer

Withdrawn notification. This notification is produced when the asset is
transferred from the contract holding to the client.

	Withdrawn:
	  - name: client
	    type: Hash160
	  - name: amount
	    type: Integer

Released notification. This notification is produced when the balance of the
removed client becomes claimable.

	Released:
	  - name: client
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package custody
