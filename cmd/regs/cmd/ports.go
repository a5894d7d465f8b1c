package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/protocol"
)

var (
	portsAddrWidth int
	portsDataWidth int
)

var portsCmd = &cobra.Command{
	Use:   "ports [protocol]",
	Short: "Show the port catalog of a bus protocol",
	Long: `Show the signals of a bus protocol with their direction, type and naming key.
Without an argument the supported protocols are listed.

Examples:
  regs ports
  regs ports APB3
  regs ports AXI4Light --addr-width 12 --data-width 64`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPorts,
}

func init() {
	rootCmd.AddCommand(portsCmd)

	portsCmd.Flags().IntVar(&portsAddrWidth, "addr-width", 8, "address width used for type expressions")
	portsCmd.Flags().IntVar(&portsDataWidth, "data-width", 32, "data width used for type expressions")
}

func runPorts(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Protocols:")
		for _, p := range protocol.Protocols {
			ports, _ := protocol.Lookup(p)
			fmt.Printf("  %-10s %2d ports\n", p, len(ports))
		}
		return nil
	}

	p, err := protocol.Parse(args[0])
	if err != nil {
		return err
	}
	ports, _ := protocol.Lookup(p)

	fmt.Printf("%s: %d ports (address width %d, data width %d)\n", p, len(ports), portsAddrWidth, portsDataWidth)
	for _, port := range ports {
		fmt.Printf("  %-14s %-3s %-30s %s\n", port.Function, port.Direction, port.ExpandType(portsAddrWidth, portsDataWidth), port.Description)
		if verbose {
			fmt.Printf("  %14s     key %s, default %s\n", "", port.NameKey, port.DefaultPattern())
		}
	}
	return nil
}
