package deploy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nspcc-dev/custody-contract/contracts/custody/custodyconst"
	"github.com/nspcc-dev/custody-contract/rpc/custody"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the custody deployment.
type Blockchain interface {
	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Actor composes and sends transactions on behalf of the single account.
// [actor.Actor] implements it.
type Actor interface {
	custody.Actor

	// Waits for the sent transactions to be accepted by the chain.
	actor.Waiter

	// Sender returns the account paying for transactions.
	Sender() util.Uint160
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// CustodyContractPrm groups deployment parameters of the Custody contract.
type CustodyContractPrm struct {
	Common CommonDeployPrm

	// Owner of the ledger. Zero value means the Actor's sender.
	Owner util.Uint160

	// NEP-17 settlement asset. Zero value means GAS.
	Asset util.Uint160

	// Clients to be whitelisted after initialization.
	Clients []util.Uint160
}

// VerifierContractPrm groups deployment parameters of the Verifier contract.
type VerifierContractPrm struct {
	Common CommonDeployPrm
}

// Prm groups all parameters of the custody deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	Blockchain Blockchain

	// Sends transactions, must be backed by an unlocked account.
	Actor Actor

	// Limits each transaction wait. Zero means waiting until the context is
	// done or the transaction expires.
	AwaitTimeout time.Duration

	CustodyContract CustodyContractPrm

	// Optional, Verifier is not deployed if nil.
	VerifierContract *VerifierContractPrm
}

// Result groups addresses of the deployed contracts.
type Result struct {
	Custody  util.Uint160
	Verifier util.Uint160
}

// Deploy deploys Custody contract (and optionally Verifier contract) and
// makes the ledger ready to use: initializes it and whitelists configured
// clients. Deploy is idempotent: contracts that are already on the chain are
// not redeployed, initialized ledger is not initialized again and clients
// already in the whitelist are skipped.
//
// Initialization and whitelisting require the Actor to sign for the owner.
// Otherwise, they are skipped with a warning.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	if prm.Logger == nil {
		prm.Logger = zap.NewNop()
	}

	d := deployer{prm: prm}

	var err error

	if prm.VerifierContract != nil {
		prm.Logger.Info("synchronizing Verifier contract with the chain...")

		res.Verifier, err = d.deployContract(ctx, prm.VerifierContract.Common, nil)
		if err != nil {
			return res, fmt.Errorf("deploy Verifier contract: %w", err)
		}

		prm.Logger.Info("Verifier contract successfully synchronized", zap.Stringer("address", res.Verifier))
	}

	owner := prm.CustodyContract.Owner
	if owner.Equals(util.Uint160{}) {
		owner = prm.Actor.Sender()
	}

	var asset any = []byte{}
	if !prm.CustodyContract.Asset.Equals(util.Uint160{}) {
		asset = prm.CustodyContract.Asset
	}

	prm.Logger.Info("synchronizing Custody contract with the chain...")

	res.Custody, err = d.deployContract(ctx, prm.CustodyContract.Common, []any{owner, asset})
	if err != nil {
		return res, fmt.Errorf("deploy Custody contract: %w", err)
	}

	prm.Logger.Info("Custody contract successfully synchronized", zap.Stringer("address", res.Custody))

	if !owner.Equals(prm.Actor.Sender()) {
		prm.Logger.Warn("local account is not the ledger owner, initialization is skipped",
			zap.Stringer("owner", owner), zap.Stringer("sender", prm.Actor.Sender()))
		return res, nil
	}

	contract := custody.New(prm.Actor, res.Custody)

	err = d.initialize(ctx, contract)
	if err != nil {
		return res, fmt.Errorf("initialize ledger: %w", err)
	}

	err = d.whitelist(ctx, contract, prm.CustodyContract.Clients)
	if err != nil {
		return res, fmt.Errorf("whitelist clients: %w", err)
	}

	return res, nil
}

type deployer struct {
	prm Prm
}

func (d deployer) initialize(ctx context.Context, contract *custody.Contract) error {
	d.prm.Logger.Info("initializing the ledger...")

	txHash, vub, err := contract.Initialize()
	if err != nil {
		if strings.Contains(err.Error(), custodyconst.ErrAlreadyInitialized) {
			d.prm.Logger.Debug("ledger is already initialized")
			return nil
		}

		return fmt.Errorf("send transaction: %w", err)
	}

	err = d.await(ctx, txHash, vub)
	if err != nil {
		return err
	}

	d.prm.Logger.Info("ledger successfully initialized", zap.Stringer("tx", txHash))

	return nil
}

func (d deployer) whitelist(ctx context.Context, contract *custody.Contract, clients []util.Uint160) error {
	var missing []util.Uint160

	for i := range clients {
		ok, err := contract.IsWhitelisted(clients[i])
		if err != nil {
			return fmt.Errorf("check client %s: %w", clients[i].StringLE(), err)
		}

		if ok {
			d.prm.Logger.Debug("client is already whitelisted", zap.Stringer("client", clients[i]))
			continue
		}

		if !containsAddress(missing, clients[i]) {
			missing = append(missing, clients[i])
		}
	}

	if len(missing) == 0 {
		return nil
	}

	d.prm.Logger.Info("whitelisting clients...", zap.Int("count", len(missing)))

	txHash, vub, err := contract.AddManyToWhitelist(missing)
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	err = d.await(ctx, txHash, vub)
	if err != nil {
		return err
	}

	d.prm.Logger.Info("clients successfully whitelisted", zap.Stringer("tx", txHash))

	return nil
}

func containsAddress(list []util.Uint160, addr util.Uint160) bool {
	for i := range list {
		if list[i].Equals(addr) {
			return true
		}
	}
	return false
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}
