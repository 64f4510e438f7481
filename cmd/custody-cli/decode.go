package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/custody-contract/internal/config"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// decodeBytes decodes binary value from the command line. Hex is the
// default encoding.
func decodeBytes(s string) ([]byte, error) {
	var (
		b   []byte
		err error
	)

	switch {
	case strings.HasPrefix(s, "b64:"):
		b, err = base64.StdEncoding.DecodeString(s[4:])
	case strings.HasPrefix(s, "b58:"):
		b, err = base58.Decode(s[4:])
	case strings.HasPrefix(s, "str:"):
		b = []byte(s[4:])
	default:
		b, err = hex.DecodeString(strings.TrimPrefix(s, "0x"))
	}

	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", s, err)
	}

	return b, nil
}

func parseAddresses(args []string) ([]util.Uint160, error) {
	if len(args) == 0 {
		return nil, errors.New("no addresses specified")
	}

	res := make([]util.Uint160, len(args))
	for i := range args {
		var err error

		res[i], err = config.ParseHash(args[i])
		if err != nil {
			return nil, fmt.Errorf("invalid address %q: %w", args[i], err)
		}
	}

	return res, nil
}
