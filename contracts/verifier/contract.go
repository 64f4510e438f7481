package verifier

import (
	"github.com/nspcc-dev/custody-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

const (
	signatureLen = 64

	publicKeyUncompressedLen = 65
)

// nolint:unused
func _deploy(_ any, _ bool) {
	runtime.Log("verifier contract deployed")
}

// VerifySignature checks that sig is a valid secp256r1 signature of the
// SHA256 hash of msg made with the private key paired to pub. The key must
// be encoded in compressed (33 bytes) or uncompressed (65 bytes) form, the
// signature must be 64 bytes (r || s).
//
// VerifySignature never fails: malformed signature, malformed key or key
// which is not a point of the curve make it return false.
func VerifySignature(sig interop.Signature, pub interop.PublicKey, msg []byte) bool {
	if len(sig) != signatureLen || !isPublicKey(pub) {
		return false
	}

	return crypto.VerifyWithECDsa(msg, pub, sig, crypto.Secp256r1)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// isPublicKey checks that pub is a compressed or uncompressed encoding of
// P-256 point. CryptoLib aborts on keys failing this check.
func isPublicKey(pub interop.PublicKey) bool {
	switch len(pub) {
	case interop.PublicKeyCompressedLen:
		if pub[0] != 0x02 && pub[0] != 0x03 {
			return false
		}
	case publicKeyUncompressedLen:
		if pub[0] != 0x04 {
			return false
		}
	default:
		return false
	}

	b := []byte(pub)

	x0, x1, x2, x3, x4, x5, x6, x7 := feFromBytes(b, 1)
	if !feLessP(x0, x1, x2, x3, x4, x5, x6, x7) {
		return false
	}

	r0, r1, r2, r3, r4, r5, r6, r7 := feCurve(x0, x1, x2, x3, x4, x5, x6, x7)

	if len(pub) == interop.PublicKeyCompressedLen {
		// decoder computes y as a square root of the curve equation
		return feIsSquare(r0, r1, r2, r3, r4, r5, r6, r7)
	}

	y0, y1, y2, y3, y4, y5, y6, y7 := feFromBytes(b, 1+32)
	if !feLessP(y0, y1, y2, y3, y4, y5, y6, y7) {
		return false
	}

	y0, y1, y2, y3, y4, y5, y6, y7 = feMul(y0, y1, y2, y3, y4, y5, y6, y7, y0, y1, y2, y3, y4, y5, y6, y7)

	return y0 == r0 && y1 == r1 && y2 == r2 && y3 == r3 &&
		y4 == r4 && y5 == r5 && y6 == r6 && y7 == r7
}
