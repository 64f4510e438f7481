package custody

import (
	"github.com/nspcc-dev/custody-contract/contracts/custody/custodyconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// payoutGuard is a guard value set while the asset leaves the custody. It can
// never be equal to any sender address.
var payoutGuard = []byte{0x01}

// custody is the authority of the ledger over its pooled holding. Pool is
// the address of the contract itself, so only code executed by the contract
// can move the funds out. The value is created once by Initialize, kept in
// storage and never returned by any method.
type custody struct {
	Pool  interop.Hash160
	Asset interop.Hash160
}

// externalBalance returns balance of the settlement asset on the given
// account.
func (c custody) externalBalance(acc interop.Hash160) int {
	return contract.Call(c.Asset, "balanceOf", contract.ReadStates, acc).(int)
}

// pullIn transfers amount of the asset from the given account to the pool.
// Transfer is authorized by the account witness.
func (c custody) pullIn(ctx storage.Context, from interop.Hash160, amount int) {
	storage.Put(ctx, guardKey, from)

	ok := contract.Call(c.Asset, "transfer", contract.All, from, c.Pool, amount, nil).(bool)
	if !ok {
		panic(custodyconst.ErrTransferFailed)
	}

	storage.Delete(ctx, guardKey)
}

// payOut transfers amount of the asset from the pool to the given account.
// Transfer is authorized by the contract itself.
func (c custody) payOut(ctx storage.Context, to interop.Hash160, amount int) {
	storage.Put(ctx, guardKey, payoutGuard)

	ok := contract.Call(c.Asset, "transfer", contract.All, c.Pool, to, amount, nil).(bool)
	if !ok {
		panic(custodyconst.ErrTransferFailed)
	}

	storage.Delete(ctx, guardKey)
}
