package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"

	"github.com/nspcc-dev/custody-contract/contracts"
	"github.com/nspcc-dev/custody-contract/deploy"
	"github.com/nspcc-dev/custody-contract/internal/config"
	"github.com/nspcc-dev/custody-contract/rpc/custody"
	"github.com/nspcc-dev/custody-contract/rpc/verifier"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// maxExpandedClients limits client listing when the RPC server does not
// support iterator sessions.
const maxExpandedClients = 1000

func deployAction(c *cli.Context) error {
	var (
		prm deploy.Prm
		err error
	)

	if dir := c.String("contracts-dir"); dir != "" {
		err = readContractsDir(&prm, dir)
		if err != nil {
			return err
		}
	} else {
		prm.CustodyContract.Common, err = readContract(c.String("nef"), c.String("manifest"))
		if err != nil {
			return fmt.Errorf("read Custody contract: %w", err)
		}

		if p := c.String("verifier-nef"); p != "" {
			verifierPrm, err := readContract(p, c.String("verifier-manifest"))
			if err != nil {
				return fmt.Errorf("read Verifier contract: %w", err)
			}

			prm.VerifierContract = &deploy.VerifierContractPrm{Common: verifierPrm}
		}
	}

	if s := c.String("owner"); s != "" {
		prm.CustodyContract.Owner, err = config.ParseHash(s)
		if err != nil {
			return fmt.Errorf("invalid owner: %w", err)
		}
	}

	if s := c.String("asset"); s != "" {
		prm.CustodyContract.Asset, err = config.ParseHash(s)
		if err != nil {
			return fmt.Errorf("invalid asset: %w", err)
		}
	}

	if clients := c.StringSlice("client"); len(clients) > 0 {
		prm.CustodyContract.Clients, err = parseAddresses(clients)
		if err != nil {
			return err
		}
	}

	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	acc, err := s.account()
	if err != nil {
		return err
	}

	prm.Actor, err = s.actor(acc)
	if err != nil {
		return fmt.Errorf("init actor: %w", err)
	}

	prm.Logger = s.log
	prm.Blockchain = s.rpc
	prm.AwaitTimeout = s.cfg.RPC.AwaitTimeout

	res, err := deploy.Deploy(s.ctx, prm)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Custody: %s (%s)\n", address.Uint160ToString(res.Custody), res.Custody.StringLE())
	if prm.VerifierContract != nil {
		fmt.Fprintf(c.App.Writer, "Verifier: %s (%s)\n", address.Uint160ToString(res.Verifier), res.Verifier.StringLE())
	}

	return nil
}

// readContractsDir reads compiled contracts from the directory. Verifier is
// optional.
func readContractsDir(prm *deploy.Prm, dir string) error {
	fsys := os.DirFS(dir)

	c, err := contracts.GetCustody(fsys)
	if err != nil {
		return fmt.Errorf("read Custody contract: %w", err)
	}

	prm.CustodyContract.Common = deploy.CommonDeployPrm{NEF: c.NEF, Manifest: c.Manifest}

	c, err = contracts.GetVerifier(fsys)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read Verifier contract: %w", err)
	}

	prm.VerifierContract = &deploy.VerifierContractPrm{
		Common: deploy.CommonDeployPrm{NEF: c.NEF, Manifest: c.Manifest},
	}

	return nil
}

func readContract(nefPath, manifestPath string) (deploy.CommonDeployPrm, error) {
	var res deploy.CommonDeployPrm

	if nefPath == "" || manifestPath == "" {
		return res, errors.New("both NEF and manifest files are required")
	}

	data, err := os.ReadFile(nefPath)
	if err != nil {
		return res, fmt.Errorf("read NEF file: %w", err)
	}

	res.NEF, err = nef.FileFromBytes(data)
	if err != nil {
		return res, fmt.Errorf("decode NEF file: %w", err)
	}

	data, err = os.ReadFile(manifestPath)
	if err != nil {
		return res, fmt.Errorf("read manifest file: %w", err)
	}

	m := new(manifest.Manifest)

	err = json.Unmarshal(data, m)
	if err != nil {
		return res, fmt.Errorf("decode manifest file: %w", err)
	}

	res.Manifest = *m

	return res, nil
}

// ownerCommand runs f with Contract signed by the wallet account in entry
// script scope.
func ownerCommand(c *cli.Context, f func(*session, *custody.Contract) error) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	h, err := s.cfg.Contracts.CustodyHash()
	if err != nil {
		return err
	}

	acc, err := s.account()
	if err != nil {
		return err
	}

	act, err := s.actor(acc)
	if err != nil {
		return fmt.Errorf("init actor: %w", err)
	}

	return f(s, custody.New(act, h))
}

func whitelistAddAction(c *cli.Context) error {
	clients, err := parseAddresses(c.Args())
	if err != nil {
		return err
	}

	return ownerCommand(c, func(s *session, contract *custody.Contract) error {
		if len(clients) == 1 {
			return s.await(contract.AddToWhitelist(clients[0]))
		}
		return s.await(contract.AddManyToWhitelist(clients))
	})
}

func whitelistRemoveAction(c *cli.Context) error {
	clients, err := parseAddresses(c.Args())
	if err != nil {
		return err
	}

	return ownerCommand(c, func(s *session, contract *custody.Contract) error {
		if len(clients) == 1 {
			return s.await(contract.RemoveFromWhitelist(clients[0]))
		}
		return s.await(contract.RemoveManyFromWhitelist(clients))
	})
}

func whitelistCheckAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("exactly one address expected")
	}

	return readerCommand(c, func(s *session, r *custody.ContractReader) error {
		client, err := config.ParseHash(c.Args().First())
		if err != nil {
			return fmt.Errorf("invalid address: %w", err)
		}

		ok, err := r.IsWhitelisted(client)
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, ok)

		return nil
	})
}

// clientCommand runs f with Contract signed by the wallet account. The
// witness is valid in the custody and the settlement asset contracts, so that
// the custody can move client's funds.
func clientCommand(c *cli.Context, f func(*session, *custody.Contract, util.Uint160) error) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	h, err := s.cfg.Contracts.CustodyHash()
	if err != nil {
		return err
	}

	asset, err := custody.NewReader(s.invoker(), h).Asset()
	if err != nil {
		return fmt.Errorf("get settlement asset: %w", err)
	}

	acc, err := s.account()
	if err != nil {
		return err
	}

	act, err := s.actor(acc, h, asset)
	if err != nil {
		return fmt.Errorf("init actor: %w", err)
	}

	return f(s, custody.New(act, h), acc.ScriptHash())
}

func amountArg(c *cli.Context) (*big.Int, error) {
	if !c.IsSet("amount") {
		return nil, errors.New("missing amount")
	}

	return big.NewInt(c.Int64("amount")), nil
}

func depositAction(c *cli.Context) error {
	amount, err := amountArg(c)
	if err != nil {
		return err
	}

	return clientCommand(c, func(s *session, contract *custody.Contract, client util.Uint160) error {
		s.log.Info("depositing funds...", zap.Stringer("client", client), zap.Stringer("amount", amount))
		return s.await(contract.Deposit(client, amount))
	})
}

func withdrawAction(c *cli.Context) error {
	amount, err := amountArg(c)
	if err != nil {
		return err
	}

	return clientCommand(c, func(s *session, contract *custody.Contract, client util.Uint160) error {
		s.log.Info("withdrawing funds...", zap.Stringer("client", client), zap.Stringer("amount", amount))
		return s.await(contract.Withdraw(client, amount))
	})
}

func claimAction(c *cli.Context) error {
	return clientCommand(c, func(s *session, contract *custody.Contract, client util.Uint160) error {
		released, err := contract.GetReleased(client)
		if err != nil {
			return fmt.Errorf("get released balance: %w", err)
		}

		if released.Sign() == 0 {
			return errors.New("nothing to claim")
		}

		s.log.Info("claiming released funds...", zap.Stringer("client", client), zap.Stringer("amount", released))
		return s.await(contract.Claim(client))
	})
}

func readerCommand(c *cli.Context, f func(*session, *custody.ContractReader) error) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	h, err := s.cfg.Contracts.CustodyHash()
	if err != nil {
		return err
	}

	return f(s, custody.NewReader(s.invoker(), h))
}

func balanceAction(c *cli.Context) error {
	return readerCommand(c, func(s *session, r *custody.ContractReader) error {
		var client util.Uint160

		if c.NArg() > 0 {
			var err error

			client, err = config.ParseHash(c.Args().First())
			if err != nil {
				return fmt.Errorf("invalid address: %w", err)
			}
		} else {
			acc, err := s.account()
			if err != nil {
				return err
			}

			client = acc.ScriptHash()
		}

		whitelisted, err := r.IsWhitelisted(client)
		if err != nil {
			return err
		}

		if whitelisted {
			b, err := r.GetBalance(client)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, b)
		}

		released, err := r.GetReleased(client)
		if err != nil {
			return err
		}

		if !whitelisted || released.Sign() > 0 {
			fmt.Fprintf(c.App.Writer, "released: %s\n", released)
		}

		return nil
	})
}

func clientsAction(c *cli.Context) error {
	return readerCommand(c, func(s *session, r *custody.ContractReader) error {
		clients, err := r.Clients()
		if err != nil {
			s.log.Debug("failed to list clients within a session, expanding iterator", zap.Error(err))

			items, err := r.ListClientsExpanded(maxExpandedClients)
			if err != nil {
				return err
			}

			clients, err = custody.ClientsFromStackItems(items)
			if err != nil {
				return err
			}
		}

		for i := range clients {
			fmt.Fprintln(c.App.Writer, address.Uint160ToString(clients[i]))
		}

		return nil
	})
}

func verifyAction(c *cli.Context) error {
	var args [3][]byte

	for i, name := range []string{"sig", "pub", "msg"} {
		var err error

		args[i], err = decodeBytes(c.String(name))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	h, err := s.cfg.Contracts.VerifierHash()
	if err != nil {
		return err
	}

	ok, err := verifier.NewReader(s.invoker(), h).VerifyRaw(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, ok)

	return nil
}
