package deploy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// deployContract deploys the contract from Actor's sender and waits for the
// transaction to be accepted. It returns address of the contract that is
// predicted from the sender, the NEF checksum and the contract name, so
// already deployed contract is detected without sending anything.
func (d deployer) deployContract(ctx context.Context, prm CommonDeployPrm, data any) (util.Uint160, error) {
	addr := state.CreateContractHash(d.prm.Actor.Sender(), prm.NEF.Checksum, prm.Manifest.Name)
	l := d.prm.Logger.With(zap.String("contract", prm.Manifest.Name), zap.Stringer("address", addr))

	_, err := d.prm.Blockchain.GetContractStateByHash(addr)
	if err == nil {
		l.Info("contract is already deployed")
		return addr, nil
	}

	if !isErrContractNotFound(err) {
		return addr, fmt.Errorf("get contract state: %w", err)
	}

	nefBytes, err := prm.NEF.Bytes()
	if err != nil {
		return addr, fmt.Errorf("encode NEF: %w", err)
	}

	manifestJSON, err := json.Marshal(prm.Manifest)
	if err != nil {
		return addr, fmt.Errorf("encode manifest to JSON: %w", err)
	}

	l.Info("contract is missing on the chain, sending deploy transaction...")

	txHash, vub, err := d.prm.Actor.SendCall(management.Hash, "deploy", nefBytes, manifestJSON, data)
	if err != nil {
		return addr, fmt.Errorf("send deploy transaction: %w", err)
	}

	err = d.await(ctx, txHash, vub)
	if err != nil {
		return addr, err
	}

	l.Info("contract successfully deployed", zap.Stringer("tx", txHash))

	return addr, nil
}
