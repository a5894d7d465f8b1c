package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/ident"
)

var sanitizeUnique bool

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <text>...",
	Short: "Turn arbitrary text into VHDL identifiers",
	Long: `Sanitize each argument into a VHDL basic identifier: accents are folded to
ASCII, runs of other characters become one underscore, and a leading digit
gets an x prefix. With --unique the arguments share one registry seeded with
the VHDL reserved words, as one generation run does.

Examples:
  regs sanitize "Données brutes" 3rd-stage
  regs sanitize --unique signal Signal ctrl ctrl`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSanitize,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)

	sanitizeCmd.Flags().BoolVarP(&sanitizeUnique, "unique", "u", false,
		"make results unique and avoid reserved words")
}

func runSanitize(cmd *cobra.Command, args []string) error {
	r := ident.NewRegistry()
	for _, arg := range args {
		out := ident.Sanitize(arg)
		if sanitizeUnique {
			out = r.Unique(arg)
		}
		fmt.Printf("%-24q -> %s\n", arg, out)
	}
	return nil
}
