// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/survey-press/internal/form"
	"github.com/pdiddy/survey-press/internal/merge"
	"github.com/pdiddy/survey-press/internal/pdf"
	"github.com/pdiddy/survey-press/internal/render"
	"github.com/pdiddy/survey-press/internal/workbook"
	"github.com/pdiddy/survey-press/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render <workbook.xlsx>",
	Short: "Convert a survey workbook into paginated part files",
	Long: `Render reads the survey and choices sheets, normalizes and sanitizes the
records, and writes partNN_<label>.pdf files into the save directory: a
title page, one or more files per module, and a value-label appendix for
choice lists too large to render inline.

With --merge, the parts are concatenated into <title>.pdf by an external
PDF utility (pdfunite or qpdf) and deleted. If no utility is available the
parts are left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		return runRender(cmd, args[0], cfg)
	},
}

func init() {
	renderCmd.Flags().String("save", "", "target directory for part files (required)")
	renderCmd.Flags().String("title", "", "document title, used on the cover and as the merged filename (required)")
	renderCmd.Flags().String("date", "", "date string shown on the cover page")
	renderCmd.Flags().String("version", "", "version string shown on the cover page")
	renderCmd.Flags().StringArray("authors", nil, "document author (repeatable)")
	renderCmd.Flags().String("cover-image", "", "path to a cover page image")
	renderCmd.Flags().Bool("merge", false, "concatenate parts into one document and delete them")
	renderCmd.Flags().IntSlice("skip", nil, "1-based survey row index to exclude (repeatable)")
	renderCmd.Flags().Int("choice-length", types.DefaultChoiceLength, "option-count threshold for inline choice rendering")
	renderCmd.Flags().String("translation", "", "alternate-language label column suffix, e.g. fr for label::fr")
	renderCmd.Flags().Bool("loud", false, "emit one line per processed field")
	renderCmd.Flags().String("meta", "", "YAML metadata sidecar; command-line flags take precedence")

	rootCmd.AddCommand(renderCmd)
}

// buildConfig assembles the run configuration: viper config file first,
// then the --meta sidecar, then explicitly set flags on top.
func buildConfig(cmd *cobra.Command) (types.RenderConfig, error) {
	var cfg types.RenderConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}

	if metaPath, _ := cmd.Flags().GetString("meta"); metaPath != "" {
		meta, err := form.LoadMeta(metaPath)
		if err != nil {
			return cfg, err
		}
		overlay(&cfg, meta)
	}

	applyFlags(cmd, &cfg)
	cfg.Normalize()

	if cfg.SaveDir == "" {
		return cfg, fmt.Errorf("no save directory: set --save")
	}
	if cfg.Title == "" {
		return cfg, fmt.Errorf("no document title: set --title or provide one in --meta")
	}
	return cfg, nil
}

// overlay copies every non-zero field of src onto dst.
func overlay(dst, src *types.RenderConfig) {
	if src.SaveDir != "" {
		dst.SaveDir = src.SaveDir
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Date != "" {
		dst.Date = src.Date
	}
	if src.Version != "" {
		dst.Version = src.Version
	}
	if len(src.Authors) > 0 {
		dst.Authors = src.Authors
	}
	if src.CoverImage != "" {
		dst.CoverImage = src.CoverImage
	}
	if src.Merge {
		dst.Merge = true
	}
	if len(src.SkipRows) > 0 {
		dst.SkipRows = src.SkipRows
	}
	if src.ChoiceLength > 0 {
		dst.ChoiceLength = src.ChoiceLength
	}
	if src.Translation != "" {
		dst.Translation = src.Translation
	}
	if src.Loud {
		dst.Loud = true
	}
}

// applyFlags writes every flag the user set explicitly into cfg.
func applyFlags(cmd *cobra.Command, cfg *types.RenderConfig) {
	f := cmd.Flags()
	if f.Changed("save") {
		cfg.SaveDir, _ = f.GetString("save")
	}
	if f.Changed("title") {
		cfg.Title, _ = f.GetString("title")
	}
	if f.Changed("date") {
		cfg.Date, _ = f.GetString("date")
	}
	if f.Changed("version") {
		cfg.Version, _ = f.GetString("version")
	}
	if f.Changed("authors") {
		cfg.Authors, _ = f.GetStringArray("authors")
	}
	if f.Changed("cover-image") {
		cfg.CoverImage, _ = f.GetString("cover-image")
	}
	if f.Changed("merge") {
		cfg.Merge, _ = f.GetBool("merge")
	}
	if f.Changed("skip") {
		cfg.SkipRows, _ = f.GetIntSlice("skip")
	}
	if f.Changed("choice-length") {
		cfg.ChoiceLength, _ = f.GetInt("choice-length")
	}
	if f.Changed("translation") {
		cfg.Translation, _ = f.GetString("translation")
	}
	if f.Changed("loud") {
		cfg.Loud, _ = f.GetBool("loud")
	}
}

// runRender executes the full pipeline: intake, normalization, sanitation,
// rendering, and the optional best-effort merge.
func runRender(cmd *cobra.Command, path string, cfg types.RenderConfig) error {
	stderr := cmd.ErrOrStderr()

	wb, err := workbook.Load(path)
	if err != nil {
		return err
	}

	lists, listOrder := form.BuildChoiceLists(wb.Choices, cfg.Translation, stderr)
	fields, err := form.Normalize(wb.Survey, lists, cfg.Translation, stderr)
	if err != nil {
		return err
	}
	form.Sanitize(fields, lists, stderr)

	parts, err := render.Run(fields, lists, listOrder, cfg, pdf.New(), stderr)
	if err != nil {
		return err
	}

	if !cfg.Merge {
		return nil
	}

	tool, err := merge.DetectTool()
	if err != nil {
		fmt.Fprintf(stderr, "warning: merge skipped, parts kept: %v\n", err)
		return nil
	}
	out := filepath.Join(cfg.SaveDir, cfg.Title+".pdf")
	if err := tool.Concat(parts, out); err != nil {
		fmt.Fprintf(stderr, "warning: merge with %s failed, parts kept: %v\n", tool.Name(), err)
		return nil
	}
	fmt.Fprintf(stderr, "merged: %s\n", out)
	return nil
}
