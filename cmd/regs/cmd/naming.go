package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/naming"
)

var namingForce bool

var namingCmd = &cobra.Command{
	Use:   "naming",
	Short: "Manage naming settings",
	Long: `Naming settings map every kind of generated artifact to a pattern such as
"c_{interface}_{register}_addr{}". The {} marker is where a numeric suffix is
inserted when the name is already taken.

Examples:
  regs naming keys
  regs naming init naming.yaml
  regs naming check naming.yaml`,
}

var namingInitCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write the default naming settings to a JSON or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runNamingInit,
}

var namingCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate every pattern of a naming settings file",
	Args:  cobra.ExactArgs(1),
	RunE:  runNamingCheck,
}

var namingKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the naming keys with their scope and default pattern",
	Args:  cobra.NoArgs,
	RunE:  runNamingKeys,
}

func init() {
	rootCmd.AddCommand(namingCmd)
	namingCmd.AddCommand(namingInitCmd, namingCheckCmd, namingKeysCmd)

	namingInitCmd.Flags().BoolVar(&namingForce, "force", false, "overwrite an existing file")
}

func runNamingInit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !namingForce {
		return fmt.Errorf("%s exists (use --force to overwrite)", path)
	}
	if err := naming.DefaultSettings().Save(path); err != nil {
		return err
	}
	fmt.Printf("Wrote default naming settings to %s\n", path)
	return nil
}

func runNamingCheck(cmd *cobra.Command, args []string) error {
	s, err := naming.LoadFile(args[0])
	if err != nil {
		return err
	}
	for _, k := range s.Unknown() {
		fmt.Printf("warning: unknown key %s is ignored\n", k)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	fmt.Printf("%s: %d name and %d description patterns ok\n", args[0], len(s.Names), len(s.Descriptions))
	return nil
}

func runNamingKeys(cmd *cobra.Command, args []string) error {
	fmt.Println("Names:")
	for _, d := range naming.NameDefinitions() {
		fmt.Printf("  %-32s %-10s %-42s %s\n", d.Key, d.Scope, d.Default, d.Help)
	}
	fmt.Println()
	fmt.Println("Descriptions:")
	for _, d := range naming.DescriptionDefinitions() {
		fmt.Printf("  %-32s %-10s %s\n", d.Key, d.Scope, d.Default)
	}
	return nil
}
