package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ClotureBot/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the bot configuration file",
}

var configInitFlags struct {
	global bool
	force  bool
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ProjectPath()
		if configInitFlags.global {
			path = config.GlobalPath()
		}
		if _, err := os.Stat(path); err == nil && !configInitFlags.force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg := config.Default()
		if err := config.Write(path, &cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitFlags.global, "global", false, "write the XDG global config instead of ./clotbot.yml")
	configInitCmd.Flags().BoolVar(&configInitFlags.force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
