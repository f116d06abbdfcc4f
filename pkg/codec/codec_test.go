package codec

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/oisee/oidreg/pkg/oiderr"
)

func hexBytes(s string) []byte {
	s = strings.ReplaceAll(s, " ", "")
	out := make([]byte, len(s)/2)
	for i := range out {
		var b byte
		for j := 0; j < 2; j++ {
			c := s[i*2+j]
			switch {
			case c >= '0' && c <= '9':
				b = b<<4 | (c - '0')
			case c >= 'A' && c <= 'F':
				b = b<<4 | (c - 'A' + 10)
			}
		}
		out[i] = b
	}
	return out
}

func TestTextToDERScenarios(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"1.2.840.113549.1.1.11", "2A 86 48 86 F7 0D 01 01 0B"},
		{"2.5.4.3", "55 04 03"},
		{"2.40.1", "78 01"},
	}
	for _, c := range cases {
		got, err := TextToDER(c.text)
		if err != nil {
			t.Fatalf("TextToDER(%q): %v", c.text, err)
		}
		if !bytes.Equal(got, hexBytes(c.want)) {
			t.Errorf("TextToDER(%q) = % X, want %s", c.text, got, c.want)
		}
	}
}

func TestTextToDERRejectsSecondArcRule(t *testing.T) {
	if _, err := TextToDER("1.40.1"); !errors.Is(err, oiderr.ErrInvalidOID) {
		t.Fatalf("TextToDER(1.40.1): want ErrInvalidOID, got %v", err)
	}
}

func TestTextToDERRejectsMalformed(t *testing.T) {
	cases := []string{"", "1", "1.", ".1", "1.a.3", "3.1.1", "-1.2.3"}
	for _, c := range cases {
		if _, err := TextToDER(c); !errors.Is(err, oiderr.ErrInvalidOID) {
			t.Errorf("TextToDER(%q): want ErrInvalidOID, got %v", c, err)
		}
	}
}

func TestDERToTextRoundTrip(t *testing.T) {
	cases := []string{
		"1.2.840.113549.1.1.11",
		"2.5.4.3",
		"2.40.1",
		"0.0",
		"1.39",
		"2.999999999999999999999999999999999999999999999999999",
	}
	for _, text := range cases {
		der, err := TextToDER(text)
		if err != nil {
			t.Fatalf("TextToDER(%q): %v", text, err)
		}
		back, err := DERToText(der)
		if err != nil {
			t.Fatalf("DERToText(% X): %v", der, err)
		}
		if back != text {
			t.Errorf("round trip %q -> % X -> %q", text, der, back)
		}
	}
}

func TestDERToTextScenarios(t *testing.T) {
	text, err := DERToText(hexBytes("2A 86 48 86 F7 0D 01 01 0B"))
	if err != nil {
		t.Fatal(err)
	}
	if text != "1.2.840.113549.1.1.11" {
		t.Errorf("got %q", text)
	}
}

func TestDERToTextRejectsTooLong(t *testing.T) {
	der := bytes.Repeat([]byte{0x81}, 586)
	der = append(der, 0x00)
	if _, err := DERToText(der); !errors.Is(err, oiderr.ErrInvalidOID) {
		t.Fatalf("want ErrInvalidOID for 587-byte input, got %v", err)
	}
}

func TestDERToTextRejectsTruncated(t *testing.T) {
	if _, err := DERToText([]byte{0x86, 0xF7}); !errors.Is(err, oiderr.ErrInvalidOID) {
		t.Fatalf("want ErrInvalidOID for truncated input")
	}
}

func TestTextToDERRejectsOverLength(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 4096).String()
	text := "2.1." + huge
	der, err := TextToDER(text)
	if err != nil {
		// Acceptable: an arc this large may legitimately exceed 586 bytes.
		if !errors.Is(err, oiderr.ErrInvalidOID) {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if len(der) > 586 {
		t.Fatalf("TextToDER produced %d bytes without erroring", len(der))
	}
}

func TestTextToDERBigArc(t *testing.T) {
	// An arc well beyond 64 bits must still round-trip correctly.
	big4096 := new(big.Int).Lsh(big.NewInt(1), 200)
	text := "2.1." + big4096.String()
	der, err := TextToDER(text)
	if err != nil {
		t.Fatalf("TextToDER: %v", err)
	}
	back, err := DERToText(der)
	if err != nil {
		t.Fatalf("DERToText: %v", err)
	}
	if back != text {
		t.Errorf("big arc round trip: got %q, want %q", back, text)
	}
}
