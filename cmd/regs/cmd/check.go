package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/model"
)

var checkCmd = &cobra.Command{
	Use:   "check <project-file>...",
	Short: "Check register descriptions for errors",
	Long: `Check one or more register descriptions: the document schema, semantic
rules (bit ranges, overlapping fields, names that collide after sanitizing),
and the resolved address map of every interface.

Examples:
  regs check project.json
  regs check -v a.yaml b.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	v, err := model.NewValidator()
	if err != nil {
		return err
	}

	problems := 0
	for _, path := range args {
		n, err := checkFile(v, path)
		if err != nil {
			return err
		}
		problems += n
	}
	if problems > 0 {
		return fmt.Errorf("found %d problem(s)", problems)
	}
	return nil
}

// checkFile prints the report of one file and returns its problem count.
func checkFile(v *model.Validator, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	format := model.FormatOf(path)

	fmt.Printf("%s\n", path)
	if err := v.ValidateDocument(data, format); err != nil {
		if !errors.Is(err, model.ErrSchema) {
			return 0, err
		}
		fmt.Printf("  schema: %v\n", err)
		return 1, nil
	}

	p, err := model.Decode(data, format)
	if err != nil {
		fmt.Printf("  decode: %v\n", err)
		return 1, nil
	}

	problems := 0
	for _, issue := range model.Check(p) {
		fmt.Printf("  %s\n", issue)
		problems++
	}

	for _, iface := range model.Clean(p).Interfaces {
		l, err := layout.Resolve(iface)
		if err != nil {
			fmt.Printf("  interfaces/%s: %v\n", iface.Name, err)
			problems++
			continue
		}
		for _, o := range layout.Overlaps(l) {
			fmt.Printf("  interfaces/%s: %s\n", iface.Name, o)
			problems++
		}
		if verbose {
			printLayout(iface.Name, l)
		}
	}

	if problems == 0 {
		fmt.Printf("  ok: %d interface(s)\n", len(p.Interfaces))
	}
	return problems, nil
}

func printLayout(name string, l *layout.Interface) {
	fmt.Printf("  %s: address width %d, data width %d\n", name, l.AddressWidth, l.DataWidth)
	for _, r := range l.Registers {
		fmt.Printf("    0x%04x-0x%04x  %-20s %2d bit", r.Base, r.Extent()-1, r.Name, r.Width)
		if r.Strided {
			fmt.Printf("  x%d by 0x%x", r.Count, r.Increment)
		}
		if r.Automatic {
			fmt.Printf("  (auto)")
		}
		fmt.Println()
	}
}
