// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docshift/internal/convert"
	"github.com/pdiddy/docshift/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and convert documents as they appear",
	Long: `Watch subscribes to filesystem events on the input directory
(recursively) and converts every created or modified document to PDF,
with the usual Markdown fallback. It runs until interrupted;
per-file failures are logged and watching continues.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringP("input", "i", "", "directory to watch (required)")
	watchCmd.Flags().StringP("output", "o", "", "output directory (required)")
	watchCmd.Flags().StringP("type", "t", "", "only convert one extension: docx, xlsx, or xls")
	watchCmd.MarkFlagRequired("input")
	watchCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input %s: %w", input, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input %s is not a directory", input)
	}

	cfg := types.WatchConfig{
		ConvertConfig: pipelineConfig(cmd, output),
		InputDir:      input,
	}
	recorder, closeRecorder, err := openRecorder(cfg.ConvertConfig)
	if err != nil {
		return err
	}
	defer closeRecorder()

	pipeline := convert.NewPipeline(cfg.ConvertConfig, recorder, os.Stdout)
	return pipeline.Watch(cfg.InputDir, cfg.OutputDir)
}
