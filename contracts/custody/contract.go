package custody

import (
	"github.com/nspcc-dev/custody-contract/common"
	"github.com/nspcc-dev/custody-contract/contracts/custody/custodyconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Account structure stores tracked balance of a whitelisted client.
	Account struct {
		// Tracked balance in base units of the settlement asset.
		Balance int
		// Index of the block the client was whitelisted at.
		Since int
	}
)

const (
	ownerKey   = "owner"
	assetKey   = "asset"
	custodyKey = "custody"
	totalKey   = "total"
	guardKey   = "guard"

	accountPrefix  = 'w'
	releasedPrefix = 'r'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner interop.Hash160
		asset interop.Hash160
	})

	if len(args.owner) != interop.Hash160Len {
		panic(custodyconst.ErrInvalidAddress + ": owner")
	}

	asset := args.asset
	switch len(asset) {
	case 0:
		asset = interop.Hash160(gas.Hash)
	case interop.Hash160Len:
	default:
		panic(custodyconst.ErrInvalidAddress + ": asset")
	}

	// owner is written once here and never again
	storage.Put(ctx, ownerKey, args.owner)
	storage.Put(ctx, assetKey, asset)

	runtime.Log("custody contract deployed")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the owner.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	checkOwner(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("custody contract updated")
}

// Initialize creates the ledger. It can be invoked only once and only by
// the owner. Until it is done, every whitelist and balance operation fails.
func Initialize() {
	ctx := storage.GetContext()

	checkOwner(ctx)

	if storage.Get(ctx, custodyKey) != nil {
		panic(custodyconst.ErrAlreadyInitialized)
	}

	cst := custody{
		Pool:  runtime.GetExecutingScriptHash(),
		Asset: getAsset(ctx),
	}

	common.SetSerialized(ctx, custodyKey, cst)
	storage.Put(ctx, totalKey, 0)

	runtime.Log("ledger initialized")
}

// Owner returns the address of the account managing the whitelist.
func Owner() interop.Hash160 {
	return getOwner(storage.GetReadOnlyContext())
}

// Asset returns the address of the NEP-17 contract the balances are
// settled in.
func Asset() interop.Hash160 {
	return getAsset(storage.GetReadOnlyContext())
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func getAsset(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, assetKey).(interop.Hash160)
}
