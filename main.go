package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clotbot",
	Short: "Telegram bot that estimates the cost of a fence and hands the lead to WhatsApp",
	Long: `clotbot walks a prospect through a three step estimate
(project, simulation, contact), prices the fence from the perimeter, city,
height and parcel shape, and gives back a WhatsApp link pre-filled with the
request for the sales team.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(leadsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
