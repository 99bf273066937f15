package ens_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/ensinfo/ens"
)

func TestDecodeContentHash(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		id     string
		scheme ens.Scheme
	}{
		{
			name:   "ipfs",
			raw:    "0xe3010170122029f2d17be6139079dc48696d1f582a8530eb9805b561eda517e22a892c7e3f1f",
			id:     "QmRAQB6YaCyidP37UdDnjFY5vQuiBrcqdyoW1CuDgwxkD4",
			scheme: ens.SchemeIPFS,
		},
		{
			name:   "ipfs second vector",
			raw:    "0xe301017012205cf128dcc4ef93cb5b900d30540ce1ab25328e450c7f5f9b3a6d338a2f8c1294",
			id:     "QmUbTVz1L4uEvAPg5QcSu8Pow1YdwshDJ8VbyYjWaJv4JP",
			scheme: ens.SchemeIPFS,
		},
		{
			name:   "ipfs upper case",
			raw:    "0XE3010170122029F2D17BE6139079DC48696D1F582A8530EB9805B561EDA517E22A892C7E3F1F",
			id:     "QmRAQB6YaCyidP37UdDnjFY5vQuiBrcqdyoW1CuDgwxkD4",
			scheme: ens.SchemeIPFS,
		},
		{
			name:   "swarm",
			raw:    "0xe46578616d706c652e657468",
			id:     "example.eth",
			scheme: ens.SchemeSwarm,
		},
		{
			name:   "ipns",
			raw:    "0xe50101720abcdef012",
			id:     "5Pi46k",
			scheme: ens.SchemeIPNS,
		},
		{
			name:   "legacy url",
			raw:    "0x0168747470733a2f2f782e696f",
			id:     "https://x.io",
			scheme: ens.SchemeUTF8,
		},
		{
			name:   "empty swarm payload",
			raw:    "0xe4",
			id:     "",
			scheme: ens.SchemeSwarm,
		},
		{
			name:   "empty ipfs payload",
			raw:    "0xe3010170",
			id:     "",
			scheme: ens.SchemeIPFS,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			decoded, err := ens.DecodeContentHash(c.raw)
			require.NoError(t, err)
			assert.Equal(t, c.id, decoded.Identifier)
			assert.Equal(t, c.scheme, decoded.Scheme)
		})
	}
}

func TestDecodeContentHashErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"empty", "", ens.ErrInvalidHexEncoding},
		{"missing prefix", "e3010170", ens.ErrInvalidHexEncoding},
		{"prefix only", "0x", ens.ErrTruncatedInput},
		{"one digit", "0xe", ens.ErrTruncatedInput},
		{"odd length", "0xabc", ens.ErrInvalidHexEncoding},
		{"bad digit", "0xzz", ens.ErrInvalidHexEncoding},
		{"bad digit in payload", "0xe3010170zz", ens.ErrInvalidHexEncoding},
		{"short ipfs header", "0xe30101", ens.ErrTruncatedInput},
		{"short ipns header", "0xe5010172", ens.ErrTruncatedInput},
		{"swarm not utf-8", "0xe4fffe", ens.ErrInvalidUtf8Payload},
		{"fallback not utf-8", "0x00c328", ens.ErrInvalidUtf8Payload},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var (
				decoded ens.ContentHash
				err     error
			)
			require.NotPanics(t, func() {
				decoded, err = ens.DecodeContentHash(c.raw)
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, c.want)

			var decodeErr *ens.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, c.raw, decodeErr.Input)
			assert.Equal(t, ens.ContentHash{}, decoded)
		})
	}
}

func TestDecodeErrorNamesScheme(t *testing.T) {
	_, err := ens.DecodeContentHash("0xe4fffe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swarm-ns")

	_, err = ens.DecodeContentHash("0x")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "unknown")
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "ipfs-ns", ens.SchemeIPFS.String())
	assert.Equal(t, "swarm-ns", ens.SchemeSwarm.String())
	assert.Equal(t, "ipns-ns", ens.SchemeIPNS.String())
	assert.Equal(t, "utf-8", ens.SchemeUTF8.String())
	assert.Equal(t, "unknown", ens.Scheme(42).String())
}

func TestContentHashJSON(t *testing.T) {
	decoded, err := ens.DecodeContentHash("0xe46578616d706c652e657468")
	require.NoError(t, err)
	out, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"identifier":"example.eth","scheme":"swarm-ns"}`, string(out))
}

func TestContentHashURI(t *testing.T) {
	cases := []struct {
		hash ens.ContentHash
		uri  string
	}{
		{ens.ContentHash{Identifier: "QmRAQB6YaCyidP37UdDnjFY5vQuiBrcqdyoW1CuDgwxkD4", Scheme: ens.SchemeIPFS}, "ipfs://QmRAQB6YaCyidP37UdDnjFY5vQuiBrcqdyoW1CuDgwxkD4"},
		{ens.ContentHash{Identifier: "abcd", Scheme: ens.SchemeSwarm}, "bzz://abcd"},
		{ens.ContentHash{Identifier: "k51q", Scheme: ens.SchemeIPNS}, "ipns://k51q"},
		{ens.ContentHash{Identifier: "https://x.io", Scheme: ens.SchemeUTF8}, "https://x.io"},
	}
	for _, c := range cases {
		assert.Equal(t, c.uri, c.hash.URI())
	}
}

func TestContentHashCID(t *testing.T) {
	decoded, err := ens.DecodeContentHash("0xe3010170122029f2d17be6139079dc48696d1f582a8530eb9805b561eda517e22a892c7e3f1f")
	require.NoError(t, err)

	id, err := decoded.CID()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id.Version())
	assert.Equal(t, uint64(cid.DagProtobuf), id.Type())
	assert.Equal(t, decoded.Identifier, id.String())

	mh, err := decoded.Multihash()
	require.NoError(t, err)
	assert.Equal(t, uint64(multihash.SHA2_256), mh.Code)
	assert.Equal(t, "sha2-256", mh.Name)
	assert.Equal(t, 32, mh.Length)
}

func TestContentHashCIDRejectsText(t *testing.T) {
	_, err := ens.ContentHash{Identifier: "example.eth", Scheme: ens.SchemeSwarm}.CID()
	assert.ErrorIs(t, err, ens.ErrNotContentAddressed)

	_, err = ens.ContentHash{Identifier: "https://x.io", Scheme: ens.SchemeUTF8}.Multihash()
	assert.ErrorIs(t, err, ens.ErrNotContentAddressed)
}
