// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docshift/internal/manifest"
	"github.com/pdiddy/docshift/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions from the manifest",
	Long: `History lists the most recent conversions recorded in the manifest
database, newest first. The manifest is written only when manifest_path
is configured.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of entries to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	manifestPath := viper.GetString("manifest_path")
	if manifestPath == "" {
		return fmt.Errorf("no manifest configured (set manifest_path in the config file)")
	}

	limit, _ := cmd.Flags().GetInt("limit")

	store, err := manifest.Open(manifestPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "no conversions recorded")
		return nil
	}

	for _, rec := range records {
		marker := ""
		if rec.Fallback {
			marker = " (markdown fallback)"
		}
		if rec.Status == types.ConversionFailed {
			fmt.Fprintf(os.Stdout, "%s  failed    %s\n",
				rec.ConvertedAt.Format("2006-01-02 15:04"), rec.Input)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s  %-9s %s -> %s%s\n",
			rec.ConvertedAt.Format("2006-01-02 15:04"), rec.Target, rec.Input, rec.Output, marker)
	}
	return nil
}
