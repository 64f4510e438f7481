package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/custody-contract/deploy"
	"github.com/nspcc-dev/custody-contract/internal/config"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// session groups resources shared by command handlers. Each request is done
// within configured request timeout, each transaction is awaited within
// configured await timeout.
type session struct {
	cfg config.Config
	log *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	rpc *rpcclient.Client
	act *actor.Actor
}

func newSession(c *cli.Context) (*session, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	s := &session{cfg: cfg, log: log}

	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.rpc, err = rpcclient.New(s.ctx, cfg.RPC.Endpoint, rpcclient.Options{
		DialTimeout:    cfg.RPC.DialTimeout,
		RequestTimeout: cfg.RPC.RequestTimeout,
	})
	if err != nil {
		s.cancel()
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = s.rpc.Init()
	if err != nil {
		s.close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	log.Debug("connected to RPC server", zap.String("endpoint", cfg.RPC.Endpoint))

	return s, nil
}

func (s *session) close() {
	if s.rpc != nil {
		s.rpc.Close()
	}
	s.cancel()
	_ = s.log.Sync()
}

// account opens the wallet and decrypts configured account.
func (s *session) account() (*wallet.Account, error) {
	if s.cfg.Wallet.Path == "" {
		return nil, errors.New("missing wallet path")
	}

	w, err := wallet.NewWalletFromFile(s.cfg.Wallet.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var addr util.Uint160
	if s.cfg.Wallet.Address != "" {
		addr, err = config.ParseHash(s.cfg.Wallet.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address: %w", err)
		}
	} else {
		addr = w.GetChangeAddress()
	}

	acc := w.GetAccount(addr)
	if acc == nil {
		return nil, fmt.Errorf("account %s is missing in the wallet", addr.StringLE())
	}

	err = acc.Decrypt(s.cfg.Wallet.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

// actor returns transaction sender signing with the account and makes it
// the one awaited transactions are sent by. If contracts are specified, the
// witness is valid for them only (including the nested calls), otherwise it
// is valid in the entry script only.
func (s *session) actor(acc *wallet.Account, contracts ...util.Uint160) (*actor.Actor, error) {
	var err error

	if len(contracts) == 0 {
		s.act, err = actor.NewSimple(s.rpc, acc)
	} else {
		s.act, err = actor.New(s.rpc, []actor.SignerAccount{{
			Signer: transaction.Signer{
				Account:          acc.ScriptHash(),
				Scopes:           transaction.CustomContracts,
				AllowedContracts: contracts,
			},
			Account: acc,
		}})
	}

	return s.act, err
}

func (s *session) invoker() *invoker.Invoker {
	return invoker.New(s.rpc, nil)
}

// await waits for the transaction sent by the session actor to be
// successfully executed.
func (s *session) await(txHash util.Uint256, vub uint32, err error) error {
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	s.log.Info("transaction sent, waiting for acceptance...", zap.Stringer("tx", txHash))

	ctx := s.ctx
	if s.cfg.RPC.AwaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RPC.AwaitTimeout)
		defer cancel()
	}

	res, err := s.act.WaitAny(ctx, vub, txHash)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}

	err = deploy.CheckExecResult(res)
	if err != nil {
		return err
	}

	s.log.Info("transaction successfully executed", zap.Stringer("tx", txHash))

	return nil
}
