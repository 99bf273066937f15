package ens

import (
	"fmt"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"
)

// Scheme is the namespace a content hash is stored under.
type Scheme uint8

const (
	SchemeUnknown Scheme = iota
	SchemeIPFS
	SchemeSwarm
	SchemeIPNS
	SchemeUTF8
)

// multicodec namespace codes, see
// https://github.com/multiformats/multicodec/blob/master/table.csv
const (
	ipfsNsCodec  = 0xe3
	swarmNsCodec = 0xe4
	ipnsNsCodec  = 0xe5
)

var schemeNames = [...]string{
	SchemeUnknown: "unknown",
	SchemeIPFS:    "ipfs-ns",
	SchemeSwarm:   "swarm-ns",
	SchemeIPNS:    "ipns-ns",
	SchemeUTF8:    "utf-8",
}

func (s Scheme) String() string {
	if int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return schemeNames[SchemeUnknown]
}

func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ContentAddressed reports whether identifiers of this scheme are
// base58 encoded multihashes.
func (s Scheme) ContentAddressed() bool {
	return s == SchemeIPFS || s == SchemeIPNS
}

func schemeOf(codec byte) Scheme {
	switch codec {
	case ipfsNsCodec:
		return SchemeIPFS
	case swarmNsCodec:
		return SchemeSwarm
	case ipnsNsCodec:
		return SchemeIPNS
	default:
		return SchemeUTF8
	}
}

// schemeRule tells how many hex characters of header and trailer surround
// the payload of a scheme and how the payload is turned into an identifier.
type schemeRule struct {
	header  int
	trailer int
	encode  func(payload []byte) (string, error)
}

// Offsets count hex characters after the 0x prefix. The ipns-ns offsets
// are odd on purpose: records written by existing resolvers are read with
// a 9 character header and a 1 character trailer.
var schemeRules = [...]schemeRule{
	SchemeIPFS:  {header: 8, encode: encodeBase58},
	SchemeSwarm: {header: 2, encode: encodeText},
	SchemeIPNS:  {header: 9, trailer: 1, encode: encodeBase58},
	SchemeUTF8:  {header: 2, encode: encodeText},
}

func encodeBase58(payload []byte) (string, error) {
	return base58.Encode(payload), nil
}

func encodeText(payload []byte) (string, error) {
	if !utf8.Valid(payload) {
		return "", ErrInvalidUtf8Payload
	}
	return string(payload), nil
}

// ContentHash is a decoded contenthash record.
type ContentHash struct {
	Identifier string `json:"identifier"`
	Scheme     Scheme `json:"scheme"`
}

func has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

// DecodeContentHash decodes the 0x-prefixed hex form of a contenthash
// record (EIP-1577). The first byte after the prefix selects the scheme,
// anything that is not ipfs-ns, swarm-ns or ipns-ns is read as utf-8 text.
//
// Every failure is a *DecodeError wrapping ErrInvalidHexEncoding,
// ErrTruncatedInput or ErrInvalidUtf8Payload.
func DecodeContentHash(raw string) (ContentHash, error) {
	if !has0xPrefix(raw) {
		return ContentHash{}, decodeError(raw, SchemeUnknown, ErrInvalidHexEncoding)
	}
	body := raw[2:]
	if len(body) < 2 {
		return ContentHash{}, decodeError(raw, SchemeUnknown, ErrTruncatedInput)
	}
	data, err := hexutil.Decode(raw)
	if err != nil {
		return ContentHash{}, decodeError(raw, SchemeUnknown, wrapHexError(err))
	}

	scheme := schemeOf(data[0])
	rule := schemeRules[scheme]
	if len(body) < rule.header+rule.trailer {
		return ContentHash{}, decodeError(raw, scheme, ErrTruncatedInput)
	}
	payload, err := hexutil.Decode("0x" + body[rule.header:len(body)-rule.trailer])
	if err != nil {
		return ContentHash{}, decodeError(raw, scheme, wrapHexError(err))
	}
	id, err := rule.encode(payload)
	if err != nil {
		return ContentHash{}, decodeError(raw, scheme, err)
	}
	return ContentHash{Identifier: id, Scheme: scheme}, nil
}

func wrapHexError(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidHexEncoding, err)
}
