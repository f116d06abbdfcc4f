// Command oidreg is a CLI front-end over pkg/registry: register OIDs,
// look them up by any key, encode/decode dotted text, bulk-load a
// dictionary file, and dump the added entries. It generalizes
// cmd/z80opt's rootCmd/subcommand structure to the registry's operations.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/oisee/oidreg/pkg/bulkload"
	"github.com/oisee/oidreg/pkg/codec"
	"github.com/oisee/oidreg/pkg/index"
	"github.com/oisee/oidreg/pkg/oid"
	"github.com/oisee/oidreg/pkg/registry"
	"github.com/spf13/cobra"
)

func main() {
	reg := registry.New()

	rootCmd := &cobra.Command{
		Use:   "oidreg",
		Short: "Look up, register, and bulk-load OID registry entries",
	}

	rootCmd.AddCommand(
		newLookupCmd(reg),
		newEncodeCmd(),
		newDecodeCmd(),
		newRegisterCmd(reg),
		newBulkLoadCmd(reg),
		newDumpCmd(reg),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLookupCmd(reg *registry.Registry) *cobra.Command {
	var nid uint32
	var sn, ln, der string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up an entry by NID, SN, LN, or DER (hex)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var n oid.NID
			switch {
			case cmd.Flags().Changed("nid"):
				n = oid.NID(nid)
			case sn != "":
				n = reg.SNToNID(sn)
			case ln != "":
				n = reg.LNToNID(ln)
			case der != "":
				raw, err := hex.DecodeString(der)
				if err != nil {
					return fmt.Errorf("invalid --der hex: %w", err)
				}
				n = reg.ObjToNID(oid.Entry{DER: raw})
			default:
				return fmt.Errorf("one of --nid, --sn, --ln, --der is required")
			}

			if n == oid.Undef {
				fmt.Println("UNDEF (not found)")
				return nil
			}
			e, ok := reg.NIDToObj(n)
			if !ok {
				fmt.Println("UNDEF (not found)")
				return nil
			}
			printEntry(e)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&nid, "nid", 0, "look up by numeric NID")
	cmd.Flags().StringVar(&sn, "sn", "", "look up by short name")
	cmd.Flags().StringVar(&ln, "ln", "", "look up by long name")
	cmd.Flags().StringVar(&der, "der", "", "look up by DER content octets (hex)")
	return cmd
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <dotted>",
		Short: "Encode dotted-decimal OID text to DER content octets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			der, err := codec.TextToDER(args[0])
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(der))
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode DER content octets (hex) to dotted-decimal OID text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}
			text, err := codec.DERToText(raw)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}

func newRegisterCmd(reg *registry.Registry) *cobra.Command {
	var oidText, sn, ln string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new OID with an optional short and long name",
		RunE: func(cmd *cobra.Command, args []string) error {
			var oidp, snp, lnp *string
			if cmd.Flags().Changed("oid") {
				oidp = &oidText
			}
			if cmd.Flags().Changed("sn") {
				snp = &sn
			}
			if cmd.Flags().Changed("ln") {
				lnp = &ln
			}
			n, err := reg.Register(oidp, snp, lnp)
			if err != nil {
				return err
			}
			fmt.Printf("registered NID %d\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&oidText, "oid", "", "dotted-decimal OID text")
	cmd.Flags().StringVar(&sn, "sn", "", "short name")
	cmd.Flags().StringVar(&ln, "ln", "", "long name")
	return cmd
}

func newBulkLoadCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-load <file>",
		Short: "Register every entry in a dictionary file of \"<oid> <sn> <ln>\" lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			n, err := bulkload.Load(reg, f)
			if err != nil {
				return err
			}
			fmt.Printf("loaded %d entries\n", n)
			return nil
		},
	}
}

func newDumpCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every added (non-built-in) entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			printed := make(map[oid.NID]bool)
			reg.ForEachAdded(func(rec *index.Record) bool {
				if printed[rec.Entry.NID] {
					return true
				}
				printed[rec.Entry.NID] = true
				printEntry(*rec.Entry)
				return true
			})
			fmt.Printf("%d added entries\n", len(printed))
			return nil
		},
	}
}

func printEntry(e oid.Entry) {
	fmt.Printf("NID=%d", e.NID)
	if e.HasDER() {
		fmt.Printf(" DER=%s", hex.EncodeToString(e.DER))
		if text, err := codec.DERToText(e.DER); err == nil {
			fmt.Printf(" OID=%s", text)
		}
	}
	if e.HasSN() {
		fmt.Printf(" SN=%s", e.SN)
	}
	if e.HasLN() {
		fmt.Printf(" LN=%s", e.LN)
	}
	fmt.Println()
}
