package deploy

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/opcode"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type sentCall struct {
	contract util.Uint160
	method   string
	params   []any
}

type testActor struct {
	sender      util.Uint160
	whitelisted map[util.Uint160]bool
	sendErr     map[string]error

	// faults by transaction, missing transactions are never accepted, they
	// expire or wait for the context
	faults  map[util.Uint256]string
	missing bool
	expired bool

	sent []sentCall
	txs  byte
}

var errUnexpectedCall = errors.New("unexpected call")

func (a *testActor) Call(_ util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	if operation != "isWhitelisted" {
		return nil, errUnexpectedCall
	}

	return &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.Make(a.whitelisted[params[0].(util.Uint160)])},
	}, nil
}

func (a *testActor) CallAndExpandIterator(util.Uint160, string, int, ...any) (*result.Invoke, error) {
	return nil, errUnexpectedCall
}

func (a *testActor) TerminateSession(uuid.UUID) error { return errUnexpectedCall }

func (a *testActor) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, errUnexpectedCall
}

func (a *testActor) MakeCall(util.Uint160, string, ...any) (*transaction.Transaction, error) {
	return nil, errUnexpectedCall
}

func (a *testActor) MakeRun([]byte) (*transaction.Transaction, error) { return nil, errUnexpectedCall }

func (a *testActor) MakeUnsignedCall(util.Uint160, string, []transaction.Attribute, ...any) (*transaction.Transaction, error) {
	return nil, errUnexpectedCall
}

func (a *testActor) MakeUnsignedRun([]byte, []transaction.Attribute) (*transaction.Transaction, error) {
	return nil, errUnexpectedCall
}

func (a *testActor) SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	a.sent = append(a.sent, sentCall{contract: contract, method: method, params: params})

	if err := a.sendErr[method]; err != nil {
		return util.Uint256{}, 0, err
	}

	a.txs++
	return util.Uint256{a.txs}, 100, nil
}

func (a *testActor) SendRun([]byte) (util.Uint256, uint32, error) {
	return util.Uint256{}, 0, errUnexpectedCall
}

func (a *testActor) Sender() util.Uint160 { return a.sender }

func (a *testActor) Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error) {
	if err != nil {
		return nil, err
	}
	return a.WaitAny(context.TODO(), vub, h)
}

func (a *testActor) WaitAny(ctx context.Context, _ uint32, hashes ...util.Uint256) (*state.AppExecResult, error) {
	if a.missing {
		if a.expired {
			return nil, actor.ErrTxNotAccepted
		}

		<-ctx.Done()
		return nil, fmt.Errorf("%w: %v", actor.ErrContextDone, ctx.Err())
	}

	res := &state.AppExecResult{
		Container: hashes[0],
		Execution: state.Execution{VMState: vmstate.Halt},
	}
	if msg, ok := a.faults[hashes[0]]; ok {
		res.VMState = vmstate.Fault
		res.FaultException = msg
	}

	return res, nil
}

type testChain struct {
	deployed map[util.Uint160]bool
}

func (c *testChain) GetContractStateByHash(addr util.Uint160) (*state.Contract, error) {
	if c.deployed[addr] {
		return new(state.Contract), nil
	}
	return nil, errors.New("Unknown contract")
}

func testContractPrm(t *testing.T, name string) CommonDeployPrm {
	f, err := nef.NewFile([]byte{byte(opcode.RET)})
	require.NoError(t, err)

	return CommonDeployPrm{
		NEF:      *f,
		Manifest: *manifest.NewManifest(name),
	}
}

func newTestPrm(t *testing.T, a *testActor, c *testChain) Prm {
	return Prm{
		Logger:          zaptest.NewLogger(t),
		Blockchain:      c,
		Actor:           a,
		CustodyContract: CustodyContractPrm{Common: testContractPrm(t, "Custody")},
	}
}

func methods(calls []sentCall) []string {
	res := make([]string, len(calls))
	for i := range calls {
		res[i] = calls[i].method
	}
	return res
}

func TestDeploy(t *testing.T) {
	sender := util.Uint160{1, 2, 3}
	clients := []util.Uint160{{10}, {11}, {12}}

	a := &testActor{
		sender:      sender,
		whitelisted: map[util.Uint160]bool{clients[1]: true},
	}
	c := new(testChain)

	prm := newTestPrm(t, a, c)
	prm.VerifierContract = &VerifierContractPrm{Common: testContractPrm(t, "Verifier")}
	prm.CustodyContract.Clients = []util.Uint160{clients[0], clients[1], clients[2], clients[0]}

	res, err := Deploy(context.Background(), prm)
	require.NoError(t, err)

	custodyPrm := prm.CustodyContract.Common
	require.Equal(t, state.CreateContractHash(sender, custodyPrm.NEF.Checksum, "Custody"), res.Custody)
	verifierPrm := prm.VerifierContract.Common
	require.Equal(t, state.CreateContractHash(sender, verifierPrm.NEF.Checksum, "Verifier"), res.Verifier)

	require.Equal(t, []string{"deploy", "deploy", "initialize", "addManyToWhitelist"}, methods(a.sent))

	require.Equal(t, management.Hash, a.sent[0].contract)
	require.Nil(t, a.sent[0].params[2])

	require.Equal(t, management.Hash, a.sent[1].contract)
	require.Equal(t, []any{sender, []byte{}}, a.sent[1].params[2])

	require.Equal(t, res.Custody, a.sent[2].contract)

	require.Equal(t, res.Custody, a.sent[3].contract)
	require.Equal(t, []any{[]util.Uint160{clients[0], clients[2]}}, a.sent[3].params)
}

func TestDeploy_Idempotent(t *testing.T) {
	sender := util.Uint160{1, 2, 3}
	client := util.Uint160{10}

	a := &testActor{
		sender:      sender,
		whitelisted: map[util.Uint160]bool{client: true},
		sendErr: map[string]error{
			"initialize": errors.New("script failed (FAULT state) due to an error: at instruction 42 (THROW): ledger is already initialized"),
		},
	}

	prm := newTestPrm(t, a, nil)
	prm.CustodyContract.Clients = []util.Uint160{client}

	addr := state.CreateContractHash(sender, prm.CustodyContract.Common.NEF.Checksum, "Custody")
	prm.Blockchain = &testChain{deployed: map[util.Uint160]bool{addr: true}}

	res, err := Deploy(context.Background(), prm)
	require.NoError(t, err)
	require.Equal(t, addr, res.Custody)
	require.Equal(t, []string{"initialize"}, methods(a.sent))
}

func TestDeploy_CustomParameters(t *testing.T) {
	sender := util.Uint160{1, 2, 3}
	a := &testActor{sender: sender}

	prm := newTestPrm(t, a, new(testChain))
	prm.CustodyContract.Owner = util.Uint160{4, 5, 6}
	prm.CustodyContract.Asset = util.Uint160{7, 8, 9}
	prm.CustodyContract.Clients = []util.Uint160{{10}}

	_, err := Deploy(context.Background(), prm)
	require.NoError(t, err)

	// foreign owner initializes the ledger itself
	require.Equal(t, []string{"deploy"}, methods(a.sent))
	require.Equal(t, []any{prm.CustodyContract.Owner, prm.CustodyContract.Asset}, a.sent[0].params[2])
}

func TestDeploy_Failures(t *testing.T) {
	sender := util.Uint160{1, 2, 3}

	t.Run("deploy error", func(t *testing.T) {
		a := &testActor{sender: sender, sendErr: map[string]error{"deploy": errors.New("insufficient funds")}}

		_, err := Deploy(context.Background(), newTestPrm(t, a, new(testChain)))
		require.ErrorContains(t, err, "insufficient funds")
	})

	t.Run("initialize error", func(t *testing.T) {
		a := &testActor{sender: sender, sendErr: map[string]error{"initialize": errors.New("permission denied")}}

		_, err := Deploy(context.Background(), newTestPrm(t, a, new(testChain)))
		require.ErrorContains(t, err, "initialize ledger")
	})

	t.Run("fault", func(t *testing.T) {
		a := &testActor{sender: sender, faults: map[util.Uint256]string{{1}: "invalid address: owner"}}

		_, err := Deploy(context.Background(), newTestPrm(t, a, new(testChain)))
		require.ErrorContains(t, err, "invalid address: owner")
	})

	t.Run("expired", func(t *testing.T) {
		a := &testActor{sender: sender, missing: true, expired: true}

		_, err := Deploy(context.Background(), newTestPrm(t, a, new(testChain)))
		require.ErrorIs(t, err, actor.ErrTxNotAccepted)
	})

	t.Run("context", func(t *testing.T) {
		a := &testActor{sender: sender, missing: true}

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := Deploy(ctx, newTestPrm(t, a, new(testChain)))
		require.ErrorIs(t, err, actor.ErrContextDone)
	})

	t.Run("await timeout", func(t *testing.T) {
		a := &testActor{sender: sender, missing: true}

		prm := newTestPrm(t, a, new(testChain))
		prm.AwaitTimeout = 50 * time.Millisecond

		_, err := Deploy(context.Background(), prm)
		require.ErrorIs(t, err, actor.ErrContextDone)
		require.Equal(t, []string{"deploy"}, methods(a.sent))
	})
}

func TestCheckExecResult(t *testing.T) {
	res := &state.AppExecResult{
		Container: util.Uint256{1},
		Execution: state.Execution{VMState: vmstate.Halt},
	}
	require.NoError(t, CheckExecResult(res))

	res.VMState = vmstate.Fault
	res.FaultException = "insufficient balance"
	require.ErrorContains(t, CheckExecResult(res), "insufficient balance")
}
