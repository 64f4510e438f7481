package custody

import (
	"github.com/nspcc-dev/custody-contract/common"
	"github.com/nspcc-dev/custody-contract/contracts/custody/custodyconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// checkOwner panics unless the transaction is witnessed by the owner.
func checkOwner(ctx storage.Context) {
	common.CheckOwnerWitness(getOwner(ctx))
}

// loadCustody returns the custody record and panics if the ledger has not
// been initialized yet.
func loadCustody(ctx storage.Context) custody {
	data := storage.Get(ctx, custodyKey)
	if data == nil {
		panic(custodyconst.ErrUninitialized)
	}

	return std.Deserialize(data.([]byte)).(custody)
}

// checkNotReentrant panics if an asset transfer of this contract is in
// progress.
func checkNotReentrant(ctx storage.Context) {
	if storage.Get(ctx, guardKey) != nil {
		panic(custodyconst.ErrReentrantCall)
	}
}

func checkAddress(addr interop.Hash160) {
	if len(addr) != interop.Hash160Len {
		panic(custodyconst.ErrInvalidAddress)
	}
}

func checkAmount(amount int) {
	if amount < 0 {
		panic(custodyconst.ErrInvalidAmount + ": negative amount")
	}
}
