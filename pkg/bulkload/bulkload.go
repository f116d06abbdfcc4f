// Package bulkload implements the line-oriented bulk loader (C5): each
// line is "<oid> <sn> [<ln>]", and each successfully parsed line becomes
// one registry.Register call. A malformed line, or a line beginning with
// a non-alphanumeric byte, terminates loading — Load returns the count of
// entries registered before that point, not an error, matching spec.md
// §4.5 ("A failed register terminates loading; the count up to that point
// is returned").
//
// The line scanner is grounded on cmd/z80opt/main.go's use of
// bufio.Scanner over an io.Reader for line-oriented CLI input.
package bulkload

import (
	"bufio"
	"io"

	"github.com/oisee/oidreg/pkg/registry"
)

// maxLineLen mirrors spec.md §6's stated bulk-load line cap. A longer line
// makes bufio.Scanner stop with bufio.ErrTooLong, which Load treats as the
// end of input: loading terminates at that line.
const maxLineLen = 512

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// Line is one parsed bulk-load record.
type Line struct {
	OID string
	SN  string
	LN  string
}

// ParseLine parses a single bulk-load line per spec.md §4.5's grammar. ok
// is false if the line terminates loading (empty oid field, or the first
// byte isn't alphanumeric).
func ParseLine(s string) (line Line, ok bool) {
	if s == "" || !isAlnum(s[0]) {
		return Line{}, false
	}

	i := 0
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	if i == 0 {
		return Line{}, false
	}
	oid := s[:i]
	if i < len(s) && !isSpace(s[i]) {
		// Trailing garbage directly after the OID field with no
		// separating whitespace: treat as a terminator, per spec.md.
		return Line{}, false
	}

	rest := skipSpace(s[i:])
	sn, rest := nextToken(rest)
	rest = skipSpace(rest)
	ln, _ := nextToken(rest)

	return Line{OID: oid, SN: sn, LN: ln}, true
}

func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func nextToken(s string) (tok, rest string) {
	i := 0
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// Load reads lines from src and registers each via r.Register, stopping
// at the first line that fails to parse or fails to register. It returns
// the number of entries successfully registered.
func Load(r *registry.Registry, src io.Reader) (int, error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, maxLineLen), maxLineLen)

	count := 0
	for scanner.Scan() {
		line, ok := ParseLine(scanner.Text())
		if !ok {
			break
		}

		oid := line.OID
		var sn, ln *string
		if line.SN != "" {
			sn = &line.SN
		}
		if line.LN != "" {
			ln = &line.LN
		}
		if _, err := r.Register(&oid, sn, ln); err != nil {
			break
		}
		count++
	}
	if err := scanner.Err(); err != nil && err != bufio.ErrTooLong {
		return count, err
	}
	// A too-long line terminates loading per spec.md §6; it is not
	// surfaced as a loader error.
	return count, nil
}
