// Package netaddr parses IPv4 and IPv6 address literals with the parsek
// combinators. It exists as the canonical consumer of the combinator
// surface: the grammars below are built entirely from Bind, OrElse,
// Optional, Many and Repeat, and work chunk-at-a-time like any other
// parsek parser.
package netaddr

import (
	"fmt"
	"net/netip"

	"github.com/dhamidi/parsek/parse"
	"github.com/dhamidi/parsek/text"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) uint16 {
	switch {
	case b >= 'a':
		return uint16(b-'a') + 10
	case b >= 'A':
		return uint16(b-'A') + 10
	default:
		return uint16(b - '0')
	}
}

// decOctet parses one to three decimal digits with a value of at most 255.
func decOctet() text.Parser[byte] {
	digits := parse.Repeat(parse.Between(parse.Once, parse.Times(3)),
		text.Satisfy(isDigit, "decimal digit"))
	return parse.Bind(digits, func(ds []byte) text.Parser[byte] {
		n := 0
		for _, d := range ds {
			n = n*10 + int(d-'0')
		}
		if n > 255 {
			return parse.FailWith[string, byte, byte](
				&parse.Error{Kind: parse.ErrPredicateFailed, Desc: "decimal octet between 0 and 255"})
		}
		return parse.Succeed[string, byte](byte(n))
	})
}

// IPv4 parses a dotted-quad IPv4 literal.
func IPv4() text.Parser[netip.Addr] {
	dotOctet := parse.Then(text.Byte('.'), decOctet())
	return parse.Bind(decOctet(), func(first byte) text.Parser[netip.Addr] {
		rest3 := parse.Repeat(parse.Exactly(parse.Times(3)), dotOctet)
		return parse.Map(rest3, func(rest []byte) netip.Addr {
			return netip.AddrFrom4([4]byte{first, rest[0], rest[1], rest[2]})
		})
	})
}

// h16 parses one to four hex digits as a 16-bit group.
func h16() text.Parser[uint16] {
	digits := parse.Repeat(parse.Between(parse.Once, parse.Times(4)),
		text.Satisfy(isHexDigit, "hex digit"))
	return parse.Map(digits, func(ds []byte) uint16 {
		var v uint16
		for _, d := range ds {
			v = v<<4 | hexVal(d)
		}
		return v
	})
}

// groups1 parses one or more colon-separated h16 groups. The separator
// attempt backtracks when the colon turns out to start a "::", leaving the
// compression marker unconsumed.
func groups1() text.Parser[[]uint16] {
	more := parse.Then(text.Byte(':'), h16())
	return parse.Bind(h16(), func(g0 uint16) text.Parser[[]uint16] {
		return parse.Map(parse.Many(more), func(rest []uint16) []uint16 {
			return append([]uint16{g0}, rest...)
		})
	})
}

func addrFromGroups(gs [8]uint16) netip.Addr {
	var b [16]byte
	for i, g := range gs {
		b[2*i] = byte(g >> 8)
		b[2*i+1] = byte(g)
	}
	return netip.AddrFrom16(b)
}

// ipv6Full parses the uncompressed eight-group form.
func ipv6Full() text.Parser[netip.Addr] {
	rest7 := parse.Repeat(parse.Exactly(parse.Times(7)),
		parse.Then(text.Byte(':'), h16()))
	return parse.Bind(h16(), func(g0 uint16) text.Parser[netip.Addr] {
		return parse.Map(rest7, func(rest []uint16) netip.Addr {
			var gs [8]uint16
			gs[0] = g0
			copy(gs[1:], rest)
			return addrFromGroups(gs)
		})
	})
}

// ipv6Compressed parses the "::" form with optional groups on both sides.
func ipv6Compressed() text.Parser[netip.Addr] {
	return parse.Bind(parse.Optional(groups1()), func(left parse.Option[[]uint16]) text.Parser[netip.Addr] {
		rightPart := parse.Bind(parse.Optional(groups1()), func(right parse.Option[[]uint16]) text.Parser[netip.Addr] {
			l, r := left.Value, right.Value
			if len(l)+len(r) > 7 {
				return parse.FailWith[string, byte, netip.Addr](
					&parse.Error{Kind: parse.ErrPredicateFailed, Desc: "at most seven groups around ::"})
			}
			var gs [8]uint16
			copy(gs[:], l)
			copy(gs[8-len(r):], r)
			return parse.Succeed[string, byte](addrFromGroups(gs))
		})
		return parse.Then(text.String("::"), rightPart)
	})
}

// IPv6 parses an IPv6 literal in the full or the "::"-compressed hex form.
// The embedded-IPv4 tail form (::ffff:1.2.3.4) is not recognized.
func IPv6() text.Parser[netip.Addr] {
	return parse.OrElse(ipv6Full(), ipv6Compressed())
}

// IP parses either an IPv4 or an IPv6 literal.
func IP() text.Parser[netip.Addr] {
	return parse.OrElse(IPv4(), IPv6())
}

// ParseAddr parses s in its entirety as an IP address literal.
func ParseAddr(s string) (netip.Addr, error) {
	addr, rest, err := text.ParseOnly(IP(), s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("parse address %q: %w", s, err)
	}
	if rest != "" {
		return netip.Addr{}, fmt.Errorf("parse address %q: trailing input %q", s, rest)
	}
	return addr, nil
}
