package custody

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ClientsBatchSize is the number of clients fetched by a single iterator
// traversal request in Clients.
const ClientsBatchSize = 100

// Clients returns all whitelisted clients. It requires server-side sessions
// to be enabled, see ListClientsExpanded otherwise.
func (c *ContractReader) Clients() ([]util.Uint160, error) {
	sess, iter, err := c.ListClients()
	if err != nil {
		return nil, fmt.Errorf("call listClients: %w", err)
	}
	defer func() { _ = c.invoker.TerminateSession(sess) }()

	var res []util.Uint160
	for {
		items, err := c.invoker.TraverseIterator(sess, &iter, ClientsBatchSize)
		if err != nil {
			return nil, fmt.Errorf("traverse clients iterator: %w", err)
		}

		for i := range items {
			h, err := clientFromStackItem(items[i])
			if err != nil {
				return nil, fmt.Errorf("client #%d: %w", len(res), err)
			}
			res = append(res, h)
		}

		if len(items) < ClientsBatchSize {
			return res, nil
		}
	}
}

// ClientsFromStackItems decodes items returned by ListClientsExpanded.
func ClientsFromStackItems(items []stackitem.Item) ([]util.Uint160, error) {
	res := make([]util.Uint160, 0, len(items))
	for i := range items {
		h, err := clientFromStackItem(items[i])
		if err != nil {
			return nil, fmt.Errorf("client #%d: %w", i, err)
		}
		res = append(res, h)
	}

	return res, nil
}

func clientFromStackItem(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}

	return util.Uint160DecodeBytesBE(b)
}
