package contracts

import (
	"encoding/json"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func TestGetContracts(t *testing.T) {
	custodyNEF, bCustodyNEF := anyValidNEF(t)
	custodyManifest, bCustodyManifest := anyValidManifest(t, "Custody")
	_, bVerifierNEF := anyValidNEF(t)
	_, bVerifierManifest := anyValidManifest(t, "Verifier")

	_fs := fstest.MapFS{
		custodyDir + "/" + nefName:       &fstest.MapFile{Data: bCustodyNEF},
		custodyDir + "/" + manifestName:  &fstest.MapFile{Data: bCustodyManifest},
		verifierDir + "/" + nefName:      &fstest.MapFile{Data: bVerifierNEF},
		verifierDir + "/" + manifestName: &fstest.MapFile{Data: bVerifierManifest},
	}

	c, err := GetCustody(_fs)
	require.NoError(t, err)
	require.Equal(t, custodyNEF.Checksum, c.NEF.Checksum)
	require.Equal(t, custodyNEF.Script, c.NEF.Script)
	require.Equal(t, custodyManifest.Name, c.Manifest.Name)

	c, err = GetVerifier(_fs)
	require.NoError(t, err)
	require.Equal(t, "Verifier", c.Manifest.Name)
}

func TestGetMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF
	_, err := GetVerifier(_fs)
	require.ErrorIs(t, err, fs.ErrNotExist)

	// Missing manifest.
	_fs[verifierDir+"/"+nefName] = &fstest.MapFile{}
	_, err = GetVerifier(_fs)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = custodyDir + "/" + nefName
		manifestPath = custodyDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "zero")

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err := GetCustody(_fs)
	require.NoError(t, err)

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err = GetCustody(_fs)
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = GetCustody(_fs)
	require.ErrorIs(t, err, errInvalidManifest)
}

func anyValidNEF(tb testing.TB) (nef.File, []byte) {
	script := make([]byte, 32)

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
