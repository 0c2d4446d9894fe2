// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docshift CLI, a converter for
// Word and Excel documents producing PDF or Markdown output.
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

// rootCmd is the base command for the docshift CLI.
var rootCmd = &cobra.Command{
	Use:   "docshift",
	Short: "Convert Word and Excel documents to PDF or Markdown",
	Long: `docshift converts office documents (.docx, .xlsx, .xls) into PDF or
Markdown through a shared content model. It handles single files,
whole directories, and a watch mode that converts documents as they
appear. When PDF rendering fails for a file, the conversion falls back
to Markdown instead of failing.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docshift.yaml or ~/.config/docshift/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable per-step detail in the progress log")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docshift")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docshift"))
		}
	}

	viper.SetEnvPrefix("DOCSHIFT")
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
