// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docshift/internal/convert"
	"github.com/pdiddy/docshift/internal/manifest"
	"github.com/pdiddy/docshift/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a document or a directory of documents",
	Long: `Convert transforms Word and Excel documents into PDF (default) or
Markdown. When --input is a directory, every supported document under
it is converted; per-file failures are logged and skipped. When PDF
rendering fails for a file, the content is rendered to Markdown
instead and the Markdown path is the result.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "input file or directory (required)")
	convertCmd.Flags().StringP("output", "o", "", "output directory (required)")
	convertCmd.Flags().StringP("type", "t", "", "only convert one extension: docx, xlsx, or xls")
	convertCmd.Flags().String("target", "pdf", "output format: pdf or markdown")
	convertCmd.Flags().String("report", "", "write a YAML batch report to this path")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(convertCmd)
}

// pipelineConfig assembles the conversion config from flags, with viper
// supplying defaults for the values usually set in the config file.
func pipelineConfig(cmd *cobra.Command, outDir string) types.ConvertConfig {
	typeFilter, _ := cmd.Flags().GetString("type")
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")

	return types.ConvertConfig{
		OutputDir:    outDir,
		FontsDir:     viper.GetString("fonts_dir"),
		TypeFilter:   typeFilter,
		ManifestPath: viper.GetString("manifest_path"),
		Verbose:      verbose,
	}
}

// openRecorder opens the manifest store when one is configured. The
// returned close func is a no-op for a nil store.
func openRecorder(cfg types.ConvertConfig) (convert.Recorder, func(), error) {
	if cfg.ManifestPath == "" {
		return nil, func() {}, nil
	}
	store, err := manifest.Open(cfg.ManifestPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening manifest: %w", err)
	}
	return store, func() { store.Close() }, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	targetFlag, _ := cmd.Flags().GetString("target")
	reportPath, _ := cmd.Flags().GetString("report")

	var target types.Target
	switch targetFlag {
	case "pdf":
		target = types.TargetPDF
	case "markdown", "md":
		target = types.TargetMarkdown
	default:
		return fmt.Errorf("unknown target %q (use pdf or markdown)", targetFlag)
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input %s: %w", input, err)
	}

	cfg := pipelineConfig(cmd, output)
	recorder, closeRecorder, err := openRecorder(cfg)
	if err != nil {
		return err
	}
	defer closeRecorder()

	pipeline := convert.NewPipeline(cfg, recorder, os.Stdout)

	if !info.IsDir() {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		var out string
		if target == types.TargetMarkdown {
			out, err = pipeline.ToMarkdown(input, output)
		} else {
			out, err = pipeline.ToPDF(input, output)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", out)
		return nil
	}

	result, err := pipeline.Batch(input, output, target)
	if err != nil {
		return err
	}
	for _, out := range result.Outputs {
		fmt.Fprintf(os.Stdout, "  - %s\n", out)
	}

	if reportPath != "" {
		report := convert.NewBatchReport(input, output, target, result)
		if err := convert.WriteReport(reportPath, report); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "report written to %s\n", reportPath)
	}
	return nil
}
