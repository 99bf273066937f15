package ens

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

var uriPrefixes = map[Scheme]string{
	SchemeIPFS:  "ipfs://",
	SchemeSwarm: "bzz://",
	SchemeIPNS:  "ipns://",
}

// URI returns the identifier as a gateway friendly URI. utf-8 content is
// returned untouched since it usually already is a URL.
func (c ContentHash) URI() string {
	prefix, ok := uriPrefixes[c.Scheme]
	if !ok {
		return c.Identifier
	}
	return prefix + c.Identifier
}

// CID parses the identifier of an ipfs-ns or ipns-ns content hash.
func (c ContentHash) CID() (cid.Cid, error) {
	if !c.Scheme.ContentAddressed() {
		return cid.Undef, fmt.Errorf("%s: %w", c.Scheme, ErrNotContentAddressed)
	}
	id, err := cid.Decode(c.Identifier)
	if err != nil {
		return cid.Undef, fmt.Errorf("parse %s identifier %s: %w", c.Scheme, c.Identifier, err)
	}
	return id, nil
}

// Multihash decodes the multihash carried by the CID of the content hash.
func (c ContentHash) Multihash() (*multihash.DecodedMultihash, error) {
	id, err := c.CID()
	if err != nil {
		return nil, err
	}
	return multihash.Decode(id.Hash())
}
