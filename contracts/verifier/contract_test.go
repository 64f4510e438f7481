package verifier_test

import (
	"bytes"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const verifierPath = "."

func newVerifierInvoker(t *testing.T) *neotest.ContractInvoker {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	c := neotest.CompileFile(t, e.CommitteeHash, verifierPath, path.Join(verifierPath, "config.yml"))
	e.DeployContract(t, c, nil)

	return e.CommitteeInvoker(c.Hash)
}

func TestVerifySignature(t *testing.T) {
	c := newVerifierInvoker(t)

	priv, err := keys.NewPrivateKey()
	require.NoError(t, err)

	msg := []byte("custody ledger message")
	sig := priv.Sign(msg)
	pub := priv.PublicKey()

	verify := func(t *testing.T, expected bool, sig, pub, msg []byte) {
		c.Invoke(t, stackitem.NewBool(expected), "verifySignature", sig, pub, msg)
	}

	t.Run("valid", func(t *testing.T) {
		verify(t, true, sig, pub.Bytes(), msg)
	})

	t.Run("uncompressed key", func(t *testing.T) {
		verify(t, true, sig, pub.UncompressedBytes(), msg)
	})

	t.Run("empty message", func(t *testing.T) {
		verify(t, true, priv.Sign([]byte{}), pub.Bytes(), []byte{})
	})

	t.Run("other message", func(t *testing.T) {
		verify(t, false, sig, pub.Bytes(), []byte("other message"))
	})

	t.Run("other key", func(t *testing.T) {
		other, err := keys.NewPrivateKey()
		require.NoError(t, err)

		verify(t, false, sig, other.PublicKey().Bytes(), msg)
	})

	t.Run("malformed key", func(t *testing.T) {
		compressed := pub.Bytes()

		verify(t, false, sig, []byte{}, msg)
		verify(t, false, sig, compressed[:32], msg)
		verify(t, false, sig, append(compressed, 0), msg)

		badPrefix := append([]byte{0x05}, compressed[1:]...)
		verify(t, false, sig, badPrefix, msg)

		uncompressed := pub.UncompressedBytes()
		badPrefix = append([]byte{0x02}, uncompressed[1:]...)
		verify(t, false, sig, badPrefix, msg)
	})

	t.Run("malformed signature", func(t *testing.T) {
		verify(t, false, []byte{}, pub.Bytes(), msg)
		verify(t, false, sig[:63], pub.Bytes(), msg)
		verify(t, false, append(sig, 0), pub.Bytes(), msg)
		verify(t, false, make([]byte, 64), pub.Bytes(), msg)
	})

	t.Run("off-curve key", func(t *testing.T) {
		// x is not less than field prime
		verify(t, false, sig, append([]byte{0x02}, bytes.Repeat([]byte{0xff}, 32)...), msg)

		// x^3 - 3x + b has no square root for x = 1
		x := make([]byte, 32)
		x[31] = 1
		verify(t, false, sig, append([]byte{0x03}, x...), msg)

		verify(t, false, sig, append([]byte{0x04}, bytes.Repeat([]byte{0x01}, 64)...), msg)

		uncompressed := pub.UncompressedBytes()
		uncompressed[64] ^= 0x01
		verify(t, false, sig, uncompressed, msg)
	})

	t.Run("foreign curve point", func(t *testing.T) {
		// x = 5 is on the curve
		x := make([]byte, 32)
		x[31] = 5
		verify(t, false, sig, append([]byte{0x02}, x...), msg)
	})

	t.Run("random keys", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			priv, err := keys.NewPrivateKey()
			require.NoError(t, err)

			sig := priv.Sign(msg)
			verify(t, true, sig, priv.PublicKey().Bytes(), msg)
			verify(t, true, sig, priv.PublicKey().UncompressedBytes(), msg)
		}
	})

	t.Run("tampered signature", func(t *testing.T) {
		tampered := make([]byte, len(sig))
		copy(tampered, sig)
		tampered[10] ^= 0xff

		verify(t, false, tampered, pub.Bytes(), msg)
	})
}

func TestVersion(t *testing.T) {
	c := newVerifierInvoker(t)

	s, err := c.TestInvoke(t, "version")
	require.NoError(t, err)
	require.Positive(t, s.Pop().BigInt().Int64())
}
