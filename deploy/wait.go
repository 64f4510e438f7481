package deploy

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"go.uber.org/zap"
)

func (d deployer) await(ctx context.Context, txHash util.Uint256, vub uint32) error {
	if d.prm.AwaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.prm.AwaitTimeout)
		defer cancel()
	}

	d.prm.Logger.Debug("waiting for transaction...", zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	res, err := d.prm.Actor.WaitAny(ctx, vub, txHash)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}

	return CheckExecResult(res)
}

// CheckExecResult checks that the awaited transaction has been successfully
// executed.
func CheckExecResult(res *state.AppExecResult) error {
	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction %s failed with %s state: %s", res.Container.StringLE(), res.VMState, res.FaultException)
	}

	return nil
}
