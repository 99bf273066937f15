package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/ensinfo/util"
)

func TestNormalizeName(t *testing.T) {
	normalized, err := util.NormalizeName("Foo.ETH")
	require.NoError(t, err)
	assert.Equal(t, "foo.eth", normalized)

	normalized, err = util.NormalizeName("")
	require.NoError(t, err)
	assert.Equal(t, "", normalized)

	_, err = util.NormalizeName("a b.eth")
	assert.Error(t, err)
}

func TestWithTLD(t *testing.T) {
	assert.Equal(t, "mizuki.eth", util.WithTLD("mizuki", "eth"))
	assert.Equal(t, "mizuki.eth", util.WithTLD("mizuki", ".eth"))
	assert.Equal(t, "foo.eth", util.WithTLD("foo.eth", "eth"))
	assert.Equal(t, "mizuki", util.WithTLD("mizuki", ""))
	assert.Equal(t, "", util.WithTLD("", "eth"))
}

func TestScanForNames(t *testing.T) {
	names := util.ScanForNames(`("alice.eth", bob.eth; 'carol')  ,`)
	assert.Equal(t, []string{"alice.eth", "bob.eth", "carol"}, names)
	assert.Empty(t, util.ScanForNames("  \n\t "))
}

func TestScanForContentHashes(t *testing.T) {
	hashes := util.ScanForContentHashes("ipfs: 0xe3010170, swarm 0XE4abc and nothing")
	assert.Equal(t, []string{"0xe3010170", "0XE4abc"}, hashes)
	assert.Equal(t, []string{}, util.ScanForContentHashes("no hex here"))

	hashes = util.ScanForContentHashes("(0xe46578zz) '0xe3010170zz';")
	assert.Equal(t, []string{"0xe46578zz", "0xe3010170zz"}, hashes)
}

func TestCheckTLD(t *testing.T) {
	assert.NoError(t, util.CheckTLD("mizuki.eth", "eth"))
	assert.NoError(t, util.CheckTLD("sub.mizuki.eth", ".eth"))
	assert.Error(t, util.CheckTLD("mizuki.xyz", "eth"))
	assert.Error(t, util.CheckTLD("mizukieth", "eth"))
	assert.Error(t, util.CheckTLD(".eth", "eth"))
}
