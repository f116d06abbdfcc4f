// Package codec implements the pure text ⇄ DER codec for ASN.1 OBJECT
// IDENTIFIER content octets: dotted-decimal arcs on one side, base-128
// (VLQ) encoded sub-identifiers on the other. Both directions support
// arcs of arbitrary magnitude via math/big.
//
// The algorithms follow OpenSSL's a2d_ASN1_OBJECT/OBJ_obj2txt
// (crypto/objects/obj_dat.c): the first two arcs combine into one
// sub-identifier as 40*a+b, and an OID's encoded length is capped at 586
// content octets (RFC 2578's bound of 128 sub-identifiers of up to 32
// bits each).
package codec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/oisee/oidreg/pkg/oiderr"
)

// maxDERLen is the maximum number of content octets a DER-encoded OID may
// occupy (spec: RFC 2578's 128-sub-identifier, 32-bit-each bound).
const maxDERLen = 586

var (
	big40 = big.NewInt(40)
	big80 = big.NewInt(80)
)

// TextToDER parses a dotted-decimal OID string (e.g. "1.2.840.113549")
// into its DER content octets.
func TextToDER(text string) ([]byte, error) {
	arcs, err := parseArcs(text)
	if err != nil {
		return nil, err
	}
	if len(arcs) < 2 {
		return nil, fmt.Errorf("%w: OID %q needs at least two arcs", oiderr.ErrInvalidOID, text)
	}

	a, b := arcs[0], arcs[1]
	if a.Sign() < 0 || b.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative arc in %q", oiderr.ErrInvalidOID, text)
	}
	if a.Cmp(big.NewInt(2)) > 0 {
		return nil, fmt.Errorf("%w: first arc of %q must be 0, 1, or 2", oiderr.ErrInvalidOID, text)
	}
	if a.Cmp(big.NewInt(2)) < 0 && b.Cmp(big40) >= 0 {
		return nil, fmt.Errorf("%w: second arc of %q must be < 40 when first arc is 0 or 1", oiderr.ErrInvalidOID, text)
	}

	v0 := new(big.Int).Mul(a, big40)
	v0.Add(v0, b)

	var out []byte
	out = append(out, encodeSubIdentifier(v0)...)
	for _, arc := range arcs[2:] {
		if arc.Sign() < 0 {
			return nil, fmt.Errorf("%w: negative arc in %q", oiderr.ErrInvalidOID, text)
		}
		out = append(out, encodeSubIdentifier(arc)...)
	}

	if len(out) > maxDERLen {
		return nil, fmt.Errorf("%w: encoded OID %q exceeds %d bytes", oiderr.ErrInvalidOID, text, maxDERLen)
	}
	return out, nil
}

// parseArcs splits a dotted-decimal string into arbitrary-precision arcs,
// rejecting empty fields and non-digit characters.
func parseArcs(text string) ([]*big.Int, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty OID text", oiderr.ErrInvalidOID)
	}
	fields := strings.Split(text, ".")
	arcs := make([]*big.Int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("%w: empty arc in %q", oiderr.ErrInvalidOID, text)
		}
		for _, c := range f {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: non-digit arc %q in %q", oiderr.ErrInvalidOID, f, text)
			}
		}
		v, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, fmt.Errorf("%w: malformed arc %q in %q", oiderr.ErrInvalidOID, f, text)
		}
		arcs = append(arcs, v)
	}
	return arcs, nil
}

// encodeSubIdentifier renders a single non-negative arc as base-128 VLQ
// octets: the minimum number of 7-bit groups, continuation bit set on
// every byte but the last.
func encodeSubIdentifier(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}

	n := new(big.Int).Set(v)
	base := big.NewInt(128)
	rem := new(big.Int)
	var groups []byte
	for n.Sign() > 0 {
		n.DivMod(n, base, rem)
		groups = append(groups, byte(rem.Uint64()))
	}
	// groups is least-significant-group first; emit most-significant first
	// with the continuation bit set on every byte but the last.
	out := make([]byte, len(groups))
	for i, g := range groups {
		out[len(groups)-1-i] = g
	}
	for i := 0; i < len(out)-1; i++ {
		out[i] |= 0x80
	}
	return out
}

// DERToText renders DER content octets back to dotted-decimal text. It
// rejects truncated encodings (final byte with the continuation bit set)
// and inputs over the 586-byte cap.
func DERToText(der []byte) (string, error) {
	if len(der) == 0 {
		return "", fmt.Errorf("%w: empty DER content", oiderr.ErrInvalidOID)
	}
	if len(der) > maxDERLen {
		return "", fmt.Errorf("%w: DER content exceeds %d bytes", oiderr.ErrInvalidOID, maxDERLen)
	}
	if der[len(der)-1]&0x80 != 0 {
		return "", fmt.Errorf("%w: truncated DER content", oiderr.ErrInvalidOID)
	}

	subs, err := decodeSubIdentifiers(der)
	if err != nil {
		return "", err
	}

	v0 := subs[0]
	var a, b *big.Int
	if v0.Cmp(big80) < 0 {
		a = new(big.Int)
		b = new(big.Int)
		a.DivMod(v0, big40, b)
	} else {
		a = big.NewInt(2)
		b = new(big.Int).Sub(v0, big80)
	}

	parts := make([]string, 0, len(subs)+1)
	parts = append(parts, a.String(), b.String())
	for _, s := range subs[1:] {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "."), nil
}

// decodeSubIdentifiers splits DER content octets into their constituent
// base-128 sub-identifiers, promoting to arbitrary precision as needed.
func decodeSubIdentifiers(der []byte) ([]*big.Int, error) {
	var subs []*big.Int
	acc := new(big.Int)
	started := false
	for i, c := range der {
		acc.Lsh(acc, 7)
		acc.Or(acc, big.NewInt(int64(c&0x7f)))
		started = true
		if c&0x80 == 0 {
			subs = append(subs, new(big.Int).Set(acc))
			acc = new(big.Int)
			started = false
			continue
		}
		if i == len(der)-1 {
			return nil, fmt.Errorf("%w: truncated sub-identifier", oiderr.ErrInvalidOID)
		}
	}
	if started {
		return nil, fmt.Errorf("%w: truncated sub-identifier", oiderr.ErrInvalidOID)
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("%w: no sub-identifiers decoded", oiderr.ErrInvalidOID)
	}
	return subs, nil
}
