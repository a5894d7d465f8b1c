package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRegs/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "regs",
	Short: "Register interface generation engine",
	Long: `regs turns a register description (interfaces, registers, bit fields and
bus protocols) into a resolved generation model with collision-free VHDL
identifiers for every artifact the code templates emit.

Examples:
  regs check project.json                      # Validate a description
  regs generate project.yaml --format yaml     # Print the generation model
  regs generate project.json -q '.interfaces[].entity'
  regs naming keys                             # List naming keys and defaults
  regs ports AXI4Light                         # Show a protocol's ports`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: search regs.json, .regs.json, regs.yaml)")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetFlags(0)
	log.SetPrefix("regs: ")
	if verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	return nil
}

// loadConfig reads --config, or searches next to the given source file.
func loadConfig(source string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
		log.Printf("config %s", configPath)
	} else {
		root := "."
		if source != "" {
			root = filepath.Dir(source)
		}
		cfg, err = config.Load(root)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
