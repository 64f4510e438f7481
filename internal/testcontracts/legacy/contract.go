// Package legacy contains contract standing for Custody contract of the
// previous version. It is updated to the actual Custody contract in tests.
package legacy

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
)

// Update updates the contract reporting from as the version it is updated
// from.
func Update(nefFile, manifest []byte, from int) {
	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, []any{from})
}
