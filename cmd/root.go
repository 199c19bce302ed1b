// Package cmd is for command line interactions with the minimal MEME reader
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "meme",
	Short: `Read minimal MEME motif reports.
Parse the discovered motifs into JSON records or look up single motifs`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	cobra.OnInitialize(initSettings)

	// settings is an optional parameter for a settings file with output overrides
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file with output overrides")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
}

// initSettings reads the settings file into viper, if one was passed
func initSettings() {
	settings := viper.GetString("settings")
	if settings == "" {
		return
	}

	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		stderr.Fatalf("failed to read settings file %s: %v", settings, err)
	}
}
