package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Read and write reshipi configuration values.

Keys use dot notation:
  reshipi config set gemini.api_key YOUR_KEY
  reshipi config set ui.theme light
  reshipi config get gemini.model`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	value, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := store.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}
