package main

import (
	"fmt"

	"github.com/nspcc-dev/custody-contract/internal/config"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loadConfig reads configuration file if any and applies global flags on
// top of it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if p := c.GlobalString("config"); p != "" {
		var err error
		cfg, err = config.Load(p)
		if err != nil {
			return cfg, err
		}
	}

	for _, o := range []struct {
		flag string
		dst  *string
	}{
		{"rpc", &cfg.RPC.Endpoint},
		{"wallet", &cfg.Wallet.Path},
		{"address", &cfg.Wallet.Address},
		{"contract", &cfg.Contracts.Custody},
		{"verifier", &cfg.Contracts.Verifier},
		{"log-level", &cfg.Logger.Level},
	} {
		if c.GlobalIsSet(o.flag) {
			*o.dst = c.GlobalString(o.flag)
		}
	}

	err := cfg.Validate()
	if err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg config.Logger) (*zap.Logger, error) {
	lvl, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}

	c := zap.NewDevelopmentConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	c.DisableStacktrace = true

	return c.Build()
}
