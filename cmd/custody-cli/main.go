package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "custody-cli"
	app.Usage = "Manage custody ledger deployed in Neo network"
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "Path to YAML configuration file"},
		cli.StringFlag{Name: "rpc, r", Usage: "Neo RPC server endpoint"},
		cli.StringFlag{Name: "wallet, w", Usage: "Path to NEP-6 wallet file"},
		cli.StringFlag{Name: "address, a", Usage: "Wallet account address (default account if omitted)"},
		cli.StringFlag{Name: "contract", Usage: "Custody contract address"},
		cli.StringFlag{Name: "verifier", Usage: "Verifier contract address"},
		cli.StringFlag{Name: "log-level", Usage: "Logging level (debug, info, warn, error)"},
	}

	amountFlag := cli.Int64Flag{Name: "amount", Usage: "Amount in base units of the settlement asset"}

	app.Commands = []cli.Command{
		{
			Name:  "deploy",
			Usage: "Deploy and initialize custody contracts",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "contracts-dir", Usage: "Directory with compiled contracts (<name>/contract.nef and <name>/manifest.json)"},
				cli.StringFlag{Name: "nef", Usage: "Path to Custody contract NEF file"},
				cli.StringFlag{Name: "manifest", Usage: "Path to Custody contract manifest"},
				cli.StringFlag{Name: "verifier-nef", Usage: "Path to Verifier contract NEF file, Verifier is not deployed if omitted"},
				cli.StringFlag{Name: "verifier-manifest", Usage: "Path to Verifier contract manifest"},
				cli.StringFlag{Name: "owner", Usage: "Ledger owner address (deploying account if omitted)"},
				cli.StringFlag{Name: "asset", Usage: "Settlement NEP-17 asset address (GAS if omitted)"},
				cli.StringSliceFlag{Name: "client", Usage: "Client to whitelist, can be repeated"},
			},
			Action: deployAction,
		},
		{
			Name:  "whitelist",
			Usage: "Manage the whitelist",
			Subcommands: []cli.Command{
				{
					Name:      "add",
					Usage:     "Whitelist clients",
					ArgsUsage: "<address> [<address>...]",
					Action:    whitelistAddAction,
				},
				{
					Name:      "remove",
					Usage:     "Remove clients from the whitelist releasing their balances",
					ArgsUsage: "<address> [<address>...]",
					Action:    whitelistRemoveAction,
				},
				{
					Name:      "check",
					Usage:     "Check whether client is whitelisted",
					ArgsUsage: "<address>",
					Action:    whitelistCheckAction,
				},
			},
		},
		{
			Name:   "deposit",
			Usage:  "Deposit funds of the wallet account",
			Flags:  []cli.Flag{amountFlag},
			Action: depositAction,
		},
		{
			Name:   "withdraw",
			Usage:  "Withdraw funds to the wallet account",
			Flags:  []cli.Flag{amountFlag},
			Action: withdrawAction,
		},
		{
			Name:   "claim",
			Usage:  "Claim balance released on removal of the wallet account from the whitelist",
			Action: claimAction,
		},
		{
			Name:      "balance",
			Usage:     "Print tracked and released balances of the client",
			ArgsUsage: "[<address>]",
			Action:    balanceAction,
		},
		{
			Name:   "clients",
			Usage:  "List whitelisted clients",
			Action: clientsAction,
		},
		{
			Name:  "verify",
			Usage: "Verify secp256r1 signature using Verifier contract",
			Description: `Values are hex-encoded by default, 'b64:' and 'b58:' prefixes select
   base64 and base58 encodings, 'str:' passes the rest of the string as is.`,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "sig", Usage: "64-byte signature"},
				cli.StringFlag{Name: "pub", Usage: "Compressed or uncompressed public key"},
				cli.StringFlag{Name: "msg", Usage: "Signed message"},
			},
			Action: verifyAction,
		},
	}

	return app
}
