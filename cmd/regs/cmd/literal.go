package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/literal"
)

var (
	literalAddress  bool
	literalPosition bool
)

var literalCmd = &cobra.Command{
	Use:   "literal <text>...",
	Short: "Parse numeric literals, addresses or bit positions",
	Long: `Parse each argument and print its canonical form.

Examples:
  regs literal 0x1F 0b101 42
  regs literal --address auto 0x40:stride:4:0x8
  regs literal --position 7:0 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLiteral,
}

func init() {
	rootCmd.AddCommand(literalCmd)

	literalCmd.Flags().BoolVarP(&literalAddress, "address", "a", false, "parse addresses")
	literalCmd.Flags().BoolVarP(&literalPosition, "position", "p", false, "parse field positions (ignored with --address)")
}

func runLiteral(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		var err error
		switch {
		case literalAddress:
			err = printAddress(arg)
		case literalPosition:
			err = printPosition(arg)
		default:
			err = printValue(arg)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printValue(s string) error {
	v, err := literal.Parse(s)
	if err != nil {
		return err
	}
	fmt.Printf("%-20s %s: %d = 0x%x = 0b%b\n", s, v.Radix, v.N, v.N, v.N)
	return nil
}

func printAddress(s string) error {
	a, err := literal.ParseAddress(s)
	if err != nil {
		return err
	}
	switch a := a.(type) {
	case literal.Auto:
		fmt.Printf("%-20s auto\n", s)
	case literal.Fixed:
		fmt.Printf("%-20s fixed at %s\n", s, a.Base)
	case literal.Strided:
		inc := "word size"
		if a.Increment != nil {
			inc = a.Increment.String()
		}
		fmt.Printf("%-20s %s instances from %s by %s\n", s, a.Count, a.Base, inc)
	}
	return nil
}

func printPosition(s string) error {
	p, err := literal.ParsePosition(s)
	if err != nil {
		return err
	}
	msb, lsb := literal.Bounds(p)
	switch p.(type) {
	case literal.Bit:
		fmt.Printf("%-20s bit %d\n", s, lsb)
	case literal.Range:
		fmt.Printf("%-20s bits %d downto %d\n", s, msb, lsb)
	}
	return nil
}
