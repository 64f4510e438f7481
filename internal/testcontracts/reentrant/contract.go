package reentrant

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	custodyKey = "custody"
	armedKey   = "armed"
	refuseKey  = "refuse"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	storage.Put(storage.GetContext(), custodyKey, data.(interop.Hash160))
}

// Fund transfers GAS owned by the contract to the custody directly.
func Fund(amount int) {
	if !gas.Transfer(runtime.GetExecutingScriptHash(), getCustody(), amount, nil) {
		panic("fund failed")
	}
}

// Withdraw withdraws amount from the custody. If reenter is set, the
// contract calls withdraw once more from inside the payment callback.
func Withdraw(amount int, reenter bool) {
	ctx := storage.GetContext()
	if reenter {
		storage.Put(ctx, armedKey, amount)
	}

	contract.Call(getCustody(), "withdraw", contract.All, runtime.GetExecutingScriptHash(), amount)

	storage.Delete(ctx, armedKey)
}

// Deposit deposits amount to the custody the same way an ordinary account
// does.
func Deposit(amount int) {
	contract.Call(getCustody(), "deposit", contract.All, runtime.GetExecutingScriptHash(), amount)
}

// Refuse makes the contract reject or accept payments from the custody.
func Refuse(refuse bool) {
	ctx := storage.GetContext()
	if refuse {
		storage.Put(ctx, refuseKey, true)
	} else {
		storage.Delete(ctx, refuseKey)
	}
}

// Claim claims balance released by the custody.
func Claim() {
	contract.Call(getCustody(), "claim", contract.All, runtime.GetExecutingScriptHash())
}

func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	if storage.Get(ctx, refuseKey) != nil && from.Equals(getCustody()) {
		panic("payment refused")
	}

	armed := storage.Get(ctx, armedKey)
	if armed == nil || !from.Equals(getCustody()) {
		return
	}

	storage.Delete(ctx, armedKey)
	contract.Call(getCustody(), "withdraw", contract.All, runtime.GetExecutingScriptHash(), armed.(int))
}

func getCustody() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), custodyKey).(interop.Hash160)
}
