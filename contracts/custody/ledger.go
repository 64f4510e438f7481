package custody

import (
	"github.com/nspcc-dev/custody-contract/common"
	"github.com/nspcc-dev/custody-contract/contracts/custody/custodyconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetBalance returns tracked balance of the whitelisted client. It fails if
// the client is not whitelisted.
func GetBalance(client interop.Hash160) int {
	return getAccount(storage.GetReadOnlyContext(), client).Balance
}

// TotalTracked returns the sum of balances of all whitelisted clients and
// released balances not claimed yet. It never exceeds the custody holding of
// the settlement asset.
func TotalTracked() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalKey)
}

// Deposit transfers amount of the settlement asset from the client account
// to the custody and credits it to the client's tracked balance. It can be
// invoked only by the whitelisted client itself.
//
// It produces Deposited notification.
func Deposit(client interop.Hash160, amount int) {
	ctx := storage.GetContext()

	cst := loadCustody(ctx)
	checkNotReentrant(ctx)
	checkAmount(amount)
	common.CheckClientWitness(client)

	acc := getAccount(ctx, client)

	if cst.externalBalance(client) < amount {
		panic(custodyconst.ErrInsufficientExternalBalance)
	}

	// asset is moved before the credit: a failed transfer aborts the whole
	// invocation, so there is no credit without a matching debit
	cst.pullIn(ctx, client, amount)

	credit(ctx, client, acc, amount)
}

// Withdraw debits the client's tracked balance and transfers amount of the
// settlement asset from the custody to the client account. It can be invoked
// only by the whitelisted client itself.
//
// It produces Withdrawn notification.
func Withdraw(client interop.Hash160, amount int) {
	ctx := storage.GetContext()

	cst := loadCustody(ctx)
	checkNotReentrant(ctx)
	checkAmount(amount)
	common.CheckClientWitness(client)

	acc := getAccount(ctx, client)

	if acc.Balance < amount {
		panic(custodyconst.ErrInsufficientBalance)
	}

	// balance is debited before the asset leaves the custody so that the
	// receiver can not spend it twice
	acc.Balance -= amount
	common.SetSerialized(ctx, accountKey(client), acc)
	subTotal(ctx, amount)

	cst.payOut(ctx, client, amount)

	runtime.Log("funds have been withdrawn")
	runtime.Notify("Withdrawn", client, amount)
}

// GetReleased returns balance released by the removal of the client from the
// whitelist and not claimed yet. It returns 0 if there is nothing to claim.
func GetReleased(client interop.Hash160) int {
	return common.GetInt(storage.GetReadOnlyContext(), releasedKey(client))
}

// Claim transfers the whole released balance of the client from the custody
// to the client account. It can be invoked only by the client itself, the
// client does not have to be whitelisted.
//
// It produces Withdrawn notification.
func Claim(client interop.Hash160) {
	ctx := storage.GetContext()

	cst := loadCustody(ctx)
	checkNotReentrant(ctx)
	common.CheckClientWitness(client)

	amount := common.GetInt(ctx, releasedKey(client))
	if amount == 0 {
		panic(custodyconst.ErrNothingToClaim)
	}

	storage.Delete(ctx, releasedKey(client))
	subTotal(ctx, amount)

	cst.payOut(ctx, client, amount)

	runtime.Log("released funds have been claimed")
	runtime.Notify("Withdrawn", client, amount)
}

// OnNEP17Payment is a callback for NEP-17 compatible settlement asset
// contract. Direct transfers from whitelisted clients are credited to their
// tracked balances the same way Deposit does. Transfers of any other token,
// from unknown senders or nested into another operation of this contract are
// rejected.
//
// It produces Deposited notification for direct transfers.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	cst := loadCustody(ctx)

	if !runtime.GetCallingScriptHash().Equals(cst.Asset) {
		panic(custodyconst.ErrUnexpectedPayment + ": only settlement asset is accepted")
	}

	guard := storage.Get(ctx, guardKey)
	if guard != nil {
		if common.BytesEqual(guard.([]byte), from) {
			// requested by Deposit which credits the balance itself
			return
		}

		panic(custodyconst.ErrReentrantCall)
	}

	if from == nil || len(from) != interop.Hash160Len {
		panic(custodyconst.ErrUnexpectedPayment + ": missing sender")
	}

	checkAmount(amount)

	acc := getAccount(ctx, from)

	credit(ctx, from, acc, amount)
}

func getAccount(ctx storage.Context, client interop.Hash160) Account {
	data := storage.Get(ctx, accountKey(client))
	if data == nil {
		panic(custodyconst.ErrNotWhitelisted)
	}

	return std.Deserialize(data.([]byte)).(Account)
}

func credit(ctx storage.Context, client interop.Hash160, acc Account, amount int) {
	acc.Balance += amount
	common.SetSerialized(ctx, accountKey(client), acc)
	storage.Put(ctx, totalKey, common.GetInt(ctx, totalKey)+amount)

	runtime.Log("funds have been deposited")
	runtime.Notify("Deposited", client, amount)
}

// release moves amount to the released balance of the client. Total is not
// changed: the funds stay in the custody until claimed.
func release(ctx storage.Context, client interop.Hash160, amount int) {
	key := releasedKey(client)
	storage.Put(ctx, key, common.GetInt(ctx, key)+amount)

	runtime.Log("client balance released")
	runtime.Notify("Released", client, amount)
}

func releasedKey(client interop.Hash160) []byte {
	return append([]byte{releasedPrefix}, client...)
}

func subTotal(ctx storage.Context, amount int) {
	storage.Put(ctx, totalKey, common.GetInt(ctx, totalKey)-amount)
}
