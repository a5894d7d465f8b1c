package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRegs/internal/config"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/naming"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default regs.json and naming.json",
	Long: `Write a default configuration (regs.json) and naming settings (naming.json)
into a directory, the current one by default.

Examples:
  regs init
  regs init hw/regs --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	cfgPath := filepath.Join(dir, "regs.json")
	namingPath := filepath.Join(dir, "naming.json")
	for _, p := range []string{cfgPath, namingPath} {
		if _, err := os.Stat(p); err == nil && !initForce {
			return fmt.Errorf("%s exists (use --force to overwrite)", p)
		}
	}

	cfg := config.DefaultConfig()
	cfg.NamingFile = "naming.json"
	if err := cfg.Save(cfgPath); err != nil {
		return err
	}
	if err := naming.DefaultSettings().Save(namingPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", cfgPath)
	fmt.Printf("Wrote %s\n", namingPath)
	return nil
}
