package verifier

import (
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
)

// VerifyRaw is similar to VerifySignature, but passes the public key as is.
// Keys that can not be decoded are sent to the contract unchanged and make
// it return false.
func (c *ContractReader) VerifyRaw(sig, pub, msg []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "verifySignature", sig, pub, msg))
}
