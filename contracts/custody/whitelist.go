package custody

import (
	"github.com/nspcc-dev/custody-contract/common"
	"github.com/nspcc-dev/custody-contract/contracts/custody/custodyconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// IsWhitelisted returns true if the client is whitelisted.
func IsWhitelisted(client interop.Hash160) bool {
	return isWhitelisted(storage.GetReadOnlyContext(), client)
}

// ListClients returns an iterator over addresses of all whitelisted clients.
func ListClients() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{accountPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// AddToWhitelist whitelists the client with zero balance. It can be invoked
// only by the owner.
//
// It produces Whitelisted notification.
func AddToWhitelist(client interop.Hash160) {
	ctx := storage.GetContext()

	checkOwner(ctx)
	loadCustody(ctx)
	checkNotReentrant(ctx)
	checkAddress(client)

	if isWhitelisted(ctx, client) {
		panic(custodyconst.ErrAlreadyWhitelisted)
	}

	addClient(ctx, client)
}

// AddManyToWhitelist whitelists all clients in the given order. It can be
// invoked only by the owner. Either all clients are added, or none: if any of
// them is already whitelisted or is met twice in the list, the call fails.
//
// It produces Whitelisted notification for each client.
func AddManyToWhitelist(clients []interop.Hash160) {
	ctx := storage.GetContext()

	checkOwner(ctx)
	loadCustody(ctx)
	checkNotReentrant(ctx)

	for i := range clients {
		checkAddress(clients[i])

		if isWhitelisted(ctx, clients[i]) || seenBefore(clients, i) {
			panic(custodyconst.ErrAlreadyWhitelisted)
		}
	}

	for i := range clients {
		addClient(ctx, clients[i])
	}
}

// RemoveFromWhitelist removes the client from the whitelist. It can be
// invoked only by the owner. Remaining tracked balance is released: the
// client can take it back with Claim.
//
// It produces Released notification if the balance is not zero, then
// RemovedFromWhitelist notification.
func RemoveFromWhitelist(client interop.Hash160) {
	ctx := storage.GetContext()

	checkOwner(ctx)
	loadCustody(ctx)
	checkNotReentrant(ctx)

	if !isWhitelisted(ctx, client) {
		panic(custodyconst.ErrNotWhitelisted)
	}

	removeClient(ctx, client)
}

// RemoveManyFromWhitelist removes all clients in the given order. It can be
// invoked only by the owner. Either all clients are removed, or none: if any
// of them is not whitelisted or is met twice in the list, the call fails.
//
// Notifications are the same as for RemoveFromWhitelist, per client.
func RemoveManyFromWhitelist(clients []interop.Hash160) {
	ctx := storage.GetContext()

	checkOwner(ctx)
	loadCustody(ctx)
	checkNotReentrant(ctx)

	for i := range clients {
		if !isWhitelisted(ctx, clients[i]) || seenBefore(clients, i) {
			panic(custodyconst.ErrNotWhitelisted)
		}
	}

	for i := range clients {
		removeClient(ctx, clients[i])
	}
}

func isWhitelisted(ctx storage.Context, client interop.Hash160) bool {
	return storage.Get(ctx, accountKey(client)) != nil
}

func addClient(ctx storage.Context, client interop.Hash160) {
	common.SetSerialized(ctx, accountKey(client), Account{
		Balance: 0,
		Since:   ledger.CurrentIndex(),
	})

	runtime.Log("client whitelisted")
	runtime.Notify("Whitelisted", client)
}

func removeClient(ctx storage.Context, client interop.Hash160) {
	acc := getAccount(ctx, client)

	storage.Delete(ctx, accountKey(client))

	if acc.Balance > 0 {
		// nothing is sent here, so the client can not prevent its removal
		release(ctx, client, acc.Balance)
	}

	runtime.Log("client removed from whitelist")
	runtime.Notify("RemovedFromWhitelist", client)
}

// seenBefore checks whether list[i] occurs in list[:i].
func seenBefore(list []interop.Hash160, i int) bool {
	for j := 0; j < i; j++ { //nolint:intrange // Not supported by NeoGo
		if list[j].Equals(list[i]) {
			return true
		}
	}

	return false
}

func accountKey(client interop.Hash160) []byte {
	return append([]byte{accountPrefix}, client...)
}
