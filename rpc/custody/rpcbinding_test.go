package custody

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	method string
	params []any

	pages      [][]stackitem.Item
	traverses  int
	terminated bool
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	if t.traverses >= len(t.pages) {
		return nil, nil
	}
	t.traverses++
	return t.pages[t.traverses-1], nil
}

func (t *testInv) TerminateSession(uuid.UUID) error {
	t.terminated = true
	return nil
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{
		State: "HALT",
		Stack: items,
	}
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	client := util.Uint160{4, 5, 6}

	ti.err = errors.New("bad")
	_, err := r.GetBalance(client)
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{
		State:          "FAULT",
		FaultException: "client is not whitelisted",
	}
	_, err = r.GetBalance(client)
	require.ErrorContains(t, err, "client is not whitelisted")

	ti.res = halt(stackitem.Make(60))
	b, err := r.GetBalance(client)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(60), b)
	require.Equal(t, "getBalance", ti.method)
	require.Equal(t, []any{client}, ti.params)

	ti.res = halt(stackitem.Make(50))
	released, err := r.GetReleased(client)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(50), released)
	require.Equal(t, "getReleased", ti.method)

	ti.res = halt(stackitem.Make(true))
	ok, err := r.IsWhitelisted(client)
	require.NoError(t, err)
	require.True(t, ok)

	ti.res = halt(stackitem.Make(client.BytesBE()))
	owner, err := r.Owner()
	require.NoError(t, err)
	require.Equal(t, client, owner)

	ti.res = halt(stackitem.Make([]byte{1, 2}))
	_, err = r.Asset()
	require.Error(t, err)
}

func TestReader_Clients(t *testing.T) {
	clients := make([]util.Uint160, ClientsBatchSize+1)
	for i := range clients {
		clients[i] = util.Uint160{byte(i), 0xff}
	}

	items := make([]stackitem.Item, len(clients))
	for i := range clients {
		items[i] = stackitem.Make(clients[i].BytesBE())
	}

	iterID := uuid.New()
	ti := &testInv{
		res: &result.Invoke{
			State:   "HALT",
			Session: uuid.New(),
			Stack: []stackitem.Item{
				stackitem.NewInterop(result.Iterator{ID: &iterID}),
			},
		},
		pages: [][]stackitem.Item{items[:ClientsBatchSize], items[ClientsBatchSize:]},
	}

	res, err := NewReader(ti, util.Uint160{1, 2, 3}).Clients()
	require.NoError(t, err)
	require.Equal(t, clients, res)
	require.Equal(t, 2, ti.traverses)
	require.True(t, ti.terminated)

	t.Run("expanded", func(t *testing.T) {
		res, err := ClientsFromStackItems(items[:2])
		require.NoError(t, err)
		require.Equal(t, clients[:2], res)

		_, err = ClientsFromStackItems([]stackitem.Item{stackitem.Make([]byte{1})})
		require.Error(t, err)
	})
}

func TestEventsFromApplicationLog(t *testing.T) {
	client := util.Uint160{7, 8, 9}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "Transfer",
					Item: stackitem.NewArray([]stackitem.Item{stackitem.Null{}}),
				},
				{
					Name: "Deposited",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(client.BytesBE()),
						stackitem.Make(80),
					}),
				},
				{
					Name: "Whitelisted",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(client.BytesBE()),
					}),
				},
				{
					Name: "Released",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(client.BytesBE()),
						stackitem.Make(60),
					}),
				},
			},
		}},
	}

	deposits, err := DepositedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	require.Equal(t, client, deposits[0].Client)
	require.Equal(t, big.NewInt(80), deposits[0].Amount)

	whitelisted, err := WhitelistedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*WhitelistedEvent{{Client: client}}, whitelisted)

	released, err := ReleasedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*ReleasedEvent{{Client: client, Amount: big.NewInt(60)}}, released)

	withdrawals, err := WithdrawnEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, withdrawals)

	_, err = DepositedEventsFromApplicationLog(nil)
	require.Error(t, err)

	log.Executions[0].Events[1].Item = stackitem.NewArray([]stackitem.Item{
		stackitem.Make(client.BytesBE()),
	})
	_, err = DepositedEventsFromApplicationLog(log)
	require.Error(t, err)
}
