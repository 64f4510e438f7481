/*
Package contracts provides access to compiled custody contracts.

Compiled contracts are expected to be laid out the same way as sources are:
<name>/contract.nef and <name>/manifest.json.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	custodyDir  = "custody"
	verifierDir = "verifier"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// GetCustody reads compiled Custody contract from the given file system.
func GetCustody(fsys fs.FS) (Contract, error) {
	return readContractFromDir(fsys, custodyDir)
}

// GetVerifier reads compiled Verifier contract from the given file system.
// Returned error wraps [fs.ErrNotExist] if the contract is missing.
func GetVerifier(fsys fs.FS) (Contract, error) {
	return readContractFromDir(fsys, verifierDir)
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS uses "/" even on Windows, so filepath.Join() is not applicable.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %s", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %s", errInvalidManifest, err)
	}

	return c, nil
}
