// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the survey-press CLI: a one-shot
// converter from a survey/choices workbook to a paginated questionnaire.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the survey-press CLI.
var rootCmd = &cobra.Command{
	Use:   "survey-press",
	Short: "Render a survey workbook as a paginated questionnaire",
	Long: `survey-press reads a workbook with a "survey" sheet of questions, groups,
and repeats and a "choices" sheet of option lists, normalizes the records,
and renders a paginated PDF questionnaire split into numbered part files.
Parts can optionally be concatenated into one document with an external
PDF utility.

Use "render" for the full conversion and "check" to validate a workbook
without writing output.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./survey-press.yaml or ~/.config/survey-press/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("survey-press")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "survey-press"))
		}
	}

	viper.SetEnvPrefix("SURVEY_PRESS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
