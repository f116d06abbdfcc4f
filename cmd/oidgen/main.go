// Command oidgen generates pkg/builtin's table source from a dictionary
// file, the external generator spec.md places out of scope for the
// library itself but which this repo still ships, the way the teacher
// ships cmd/z80opt alongside the library packages it drives.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/oisee/oidreg/pkg/bulkload"
	"github.com/oisee/oidreg/pkg/codec"
	"github.com/spf13/cobra"
)

func main() {
	var input, output, pkg string

	rootCmd := &cobra.Command{
		Use:   "oidgen",
		Short: "Generate pkg/builtin's table from a dictionary file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(input, output, pkg)
		},
	}
	rootCmd.Flags().StringVar(&input, "input", "", "dictionary file of \"<oid> <sn> <ln>\" lines (required)")
	rootCmd.Flags().StringVar(&output, "output", "", "output Go file (required)")
	rootCmd.Flags().StringVar(&pkg, "package", "builtin", "generated package name")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type entry struct {
	constName string
	der       []byte
	sn, ln    string
}

func generate(input, output, pkg string) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	var entries []entry
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		line, ok := bulkload.ParseLine(text)
		if !ok {
			return fmt.Errorf("dictionary line %d: malformed: %q", lineNo, text)
		}
		der, err := codec.TextToDER(line.OID)
		if err != nil {
			return fmt.Errorf("dictionary line %d: %w", lineNo, err)
		}
		name := constName(line.SN, line.LN)
		if seen[name] {
			return fmt.Errorf("dictionary line %d: duplicate generated constant name %s", lineNo, name)
		}
		seen[name] = true
		entries = append(entries, entry{constName: name, der: der, sn: line.SN, ln: line.LN})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "// Code generated by cmd/oidgen from %s. DO NOT EDIT.\n\n", input)
	fmt.Fprintf(w, "package %s\n\n", pkg)
	fmt.Fprintf(w, "import \"github.com/oisee/oidreg/pkg/oid\"\n\n")

	fmt.Fprintf(w, "const (\n")
	for i, e := range entries {
		if i == 0 {
			fmt.Fprintf(w, "\t%s oid.NID = iota + 1\n", e.constName)
		} else {
			fmt.Fprintf(w, "\t%s\n", e.constName)
		}
	}
	fmt.Fprintf(w, ")\n\n")

	fmt.Fprintf(w, "var rawEntries = []oid.Entry{\n")
	for _, e := range entries {
		fmt.Fprintf(w, "\t{NID: %s, DER: %s%s%s},\n",
			e.constName, hexBytes(e.der), snField(e.sn), lnField(e.ln))
	}
	fmt.Fprintf(w, "}\n")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("generated %d entries -> %s\n", len(entries), output)
	return nil
}

// snField/lnField render the optional SN/LN struct fields. Built-in
// entries never set oid.Entry's ownership Flags bitset — that bookkeeping
// exists only for the added index's teardown sweep, not the static table.
func snField(sn string) string {
	if sn == "" {
		return ""
	}
	return fmt.Sprintf(", SN: %q", sn)
}

func lnField(ln string) string {
	if ln == "" {
		return ""
	}
	return fmt.Sprintf(", LN: %q", ln)
}

func hexBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteString("[]byte{")
	for i, v := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02X", v)
	}
	sb.WriteString("}")
	return sb.String()
}

// constName derives an exported Go identifier "NID<Camel>" from a short
// name, falling back to the long name when the short name is absent.
func constName(sn, ln string) string {
	base := sn
	if base == "" {
		base = ln
	}
	var sb strings.Builder
	sb.WriteString("NID")
	upperNext := true
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upperNext {
				sb.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				sb.WriteRune(r)
			}
		default:
			upperNext = true
		}
	}
	return sb.String()
}
