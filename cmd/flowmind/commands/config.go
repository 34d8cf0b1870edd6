package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/guncekal/text-to-processflow/internal/config"
	"github.com/guncekal/text-to-processflow/internal/editor"
	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/internal/paths"
	"github.com/guncekal/text-to-processflow/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show flowmind configuration",
	Long: `Show the effective flowmind configuration as YAML.

Values come from config.yaml (working directory, then the flowmind config
directory), FLOWMIND_* environment variables, and built-in defaults.
If the configuration file is invalid the problem is reported first.`,
	Example: `  # Show all configuration
  flowmind config

  # Get a single value
  flowmind config get render.direction

  # Edit the configuration file
  flowmind config edit`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key. Supports dot notation for nested keys.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file in use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintln(cmd.OutOrStdout(), used)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (not present)\n", paths.ConfigFile())
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	Long: `Open the configuration file in your editor.

The file in use is opened; without one, a config.yaml holding the defaults
is created in the flowmind config directory first.`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

// openEditor is replaced in tests.
var openEditor = editor.Open

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = paths.ConfigFile()
		if err := fileutil.AtomicWriteEncoded(path, config.Default()); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "creating config file"), "")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", path)
	}
	return openEditor(path)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		cmd.PrintErrf("warning: %v\n", configLoadErr)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !viper.IsSet(key) {
		return errors.NewUserError(errors.Newf("unknown config key %q", key),
			"Run: flowmind config")
	}

	switch v := viper.Get(key).(type) {
	case map[string]any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "marshaling value")
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), fmt.Sprint(v))
	}
	return nil
}
