// Package config describes configuration of the custody command line tool.
//
// Configuration is read from YAML file, environment variables referenced as
// ${NAME} are expanded before decoding. Command line flags override values
// from the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the root of the configuration.
type Config struct {
	RPC       RPC       `yaml:"rpc"`
	Wallet    Wallet    `yaml:"wallet"`
	Contracts Contracts `yaml:"contracts"`
	Logger    Logger    `yaml:"logger"`
}

// RPC configures connection to the Neo RPC server.
type RPC struct {
	// Endpoint is an HTTP(S) address of the server.
	Endpoint string `yaml:"endpoint"`

	// DialTimeout limits establishing of the connection (default: 5s).
	DialTimeout time.Duration `yaml:"dial_timeout"`

	// RequestTimeout limits each request (default: 1m).
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// AwaitTimeout limits waiting for each sent transaction to be accepted
	// (default: 2m). Zero means waiting until the transaction expires.
	AwaitTimeout time.Duration `yaml:"await_timeout"`
}

// Wallet configures the account used to sign transactions.
type Wallet struct {
	// Path to NEP-6 wallet file.
	Path string `yaml:"path"`

	// Address of the account, wallet default account is used if empty.
	Address string `yaml:"address"`

	Password string `yaml:"password"`
}

// Contracts holds addresses of the deployed contracts. Both Neo address
// and little-endian hex forms are accepted.
type Contracts struct {
	Custody  string `yaml:"custody"`
	Verifier string `yaml:"verifier"`
}

// Logger configures logging.
type Logger struct {
	// Level is one of zap levels: debug, info, warn, error (default: info).
	Level string `yaml:"level"`
}

// Defaults.
const (
	DefaultDialTimeout    = 5 * time.Second
	DefaultRequestTimeout = time.Minute
	DefaultAwaitTimeout   = 2 * time.Minute
	DefaultLogLevel       = "info"
)

// Default returns Config with default values set.
func Default() Config {
	return Config{
		RPC: RPC{
			DialTimeout:    DefaultDialTimeout,
			RequestTimeout: DefaultRequestTimeout,
			AwaitTimeout:   DefaultAwaitTimeout,
		},
		Logger: Logger{Level: DefaultLogLevel},
	}
}

// Load reads the configuration file on top of the Default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values required by any command. Contract addresses
// are checked by commands that use them.
func (c Config) Validate() error {
	if c.RPC.Endpoint == "" {
		return errors.New("missing RPC endpoint")
	}

	if c.RPC.DialTimeout < 0 || c.RPC.RequestTimeout < 0 || c.RPC.AwaitTimeout < 0 {
		return errors.New("negative RPC timeout")
	}

	_, err := c.Logger.ZapLevel()
	if err != nil {
		return err
	}

	return nil
}

// ZapLevel returns the logging level.
func (l Logger) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}

	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, fmt.Errorf("invalid logger level: %w", err)
	}

	return lvl, nil
}

// ErrMissingContract is returned when the required contract address is not
// configured.
var ErrMissingContract = errors.New("missing contract address")

// CustodyHash returns the address of the Custody contract.
func (c Contracts) CustodyHash() (util.Uint160, error) {
	return parseContract("custody", c.Custody)
}

// VerifierHash returns the address of the Verifier contract.
func (c Contracts) VerifierHash() (util.Uint160, error) {
	return parseContract("verifier", c.Verifier)
}

func parseContract(name, s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, fmt.Errorf("%w: %s", ErrMissingContract, name)
	}

	h, err := ParseHash(s)
	if err != nil {
		return h, fmt.Errorf("invalid %s contract address: %w", name, err)
	}

	return h, nil
}

// ParseHash decodes the account or contract address given either as Neo
// address or as little-endian hex string with optional 0x prefix.
func ParseHash(s string) (util.Uint160, error) {
	hexStr := strings.TrimPrefix(s, "0x")
	if len(hexStr) == 2*util.Uint160Size {
		return util.Uint160DecodeStringLE(hexStr)
	}

	return address.StringToUint160(s)
}
