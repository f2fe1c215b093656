package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dshills/triad/internal/config"
	"github.com/spf13/cobra"
)

var flagConfigForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage triad configuration",
	Long: "Settings are layered: built-in defaults, then the config file, then TRIAD_* " +
		"environment variables, then command-line flags. These commands manage the file.",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfigFile(os.Stdout, flagConfigForce)
	},
}

// initConfigFile writes the defaults unless a file exists and force is off.
func initConfigFile(w io.Writer, force bool) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(w, "Config file already exists at %s (use --force to reset it)\n", path)
		return nil
	}
	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(w, "Wrote default config to %s\n", path)
	return nil
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set one key in the configuration file",
	Long:      "Set one key in the configuration file.\n\nKeys:\n" + keyTable(),
	Example:   "  triad config set failOn warning\n  triad config set redactSecrets false",
	Args:      cobra.ExactArgs(2),
	ValidArgs: keyNamesList(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Update(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s = %s\n", args[0], args[1])
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, path)
		return nil
	},
}

func keyNamesList() []string {
	names := make([]string, len(config.Keys))
	for i, k := range config.Keys {
		names[i] = k.Name
	}
	return names
}

func keyTable() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, k := range config.Keys {
		fmt.Fprintf(tw, "  %s\t%s\n", k.Name, k.Help)
	}
	tw.Flush()
	return sb.String()
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing config file")
}
