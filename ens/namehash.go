// Package ens computes ENS namehashes and decodes EIP-1577 contenthash records.
package ens

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// RootNode is the node of the empty name.
var RootNode = common.Hash{}

// LabelHash returns the keccak256 digest of the raw bytes of a single label.
// The label is not normalized and an empty label is hashed like any other.
func LabelHash(label string) common.Hash {
	return crypto.Keccak256Hash([]byte(label))
}

// SubnodeHash returns the node of label under parent,
// keccak256(parent ++ keccak256(label)).
func SubnodeHash(parent common.Hash, label string) common.Hash {
	labelHash := LabelHash(label)
	return crypto.Keccak256Hash(parent[:], labelHash[:])
}

// NameHash computes the namehash of name as described in EIP-137.
//
// Labels are taken exactly as they appear between dots, so "a..b" and "."
// contain empty labels. Callers that want UTS-46 normalization or a
// ".eth" suffix check have to do it before calling NameHash.
func NameHash(name string) common.Hash {
	node := RootNode
	// strings.Split("", ".") returns one empty label, the root has none.
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		node = SubnodeHash(node, labels[i])
	}
	return node
}
