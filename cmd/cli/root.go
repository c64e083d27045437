package main

import (
	"github.com/spf13/cobra"

	"github.com/minaorangina/cardtable/config"
)

var (
	configPath string
	seedFlag   int64
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardtable",
	Short: "Play card games against the computer",
	Long: `Cardtable deals Crazy Eights, UNO and Klondike Solitaire in your terminal.
The shedding games are played against a CPU opponent; solitaire is played alone.

Settings are read from $XDG_CONFIG_HOME/cardtable/config.toml and can be
overridden with CARDTABLE_* environment variables or a .env file.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cardtable/config.toml)")
	RootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "shuffle seed, 0 seeds from the clock")

	RootCmd.AddCommand(playCmd("crazy8", "Play Crazy Eights", crazyEightsHelp))
	RootCmd.AddCommand(playCmd("uno", "Play UNO", unoHelp))
	RootCmd.AddCommand(playCmd("solitaire", "Play Klondike Solitaire", solitaireHelp))
	RootCmd.AddCommand(serveCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the config and applies the command line flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seedFlag
	}
	return cfg, nil
}
