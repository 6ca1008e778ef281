// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/survey-press/internal/form"
	"github.com/pdiddy/survey-press/internal/workbook"
	"github.com/pdiddy/survey-press/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check <workbook.xlsx>",
	Short: "Validate a survey workbook without writing output",
	Long: `Check runs the intake, normalization, and sanitation stages and prints
the data-quality warnings a render run would produce, plus a summary of
the workbook contents. It writes no files and exits non-zero on any
fatal validation error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		translation, _ := cmd.Flags().GetString("translation")
		return runCheck(cmd, args[0], translation)
	},
}

func init() {
	checkCmd.Flags().String("translation", "", "alternate-language label column suffix to validate")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, path, translation string) error {
	stderr := cmd.ErrOrStderr()
	stdout := cmd.OutOrStdout()

	wb, err := workbook.Load(path)
	if err != nil {
		return err
	}

	lists, listOrder := form.BuildChoiceLists(wb.Choices, translation, stderr)
	fields, err := form.Normalize(wb.Survey, lists, translation, stderr)
	if err != nil {
		return err
	}
	form.Sanitize(fields, lists, stderr)

	var questions, modules, sections int
	for i := range fields {
		switch {
		case fields[i].Type.IsQuestion():
			questions++
		case fields[i].Type == types.TypeModule:
			modules++
		case fields[i].Type == types.TypeBeginGroup, fields[i].Type == types.TypeBeginRepeat:
			sections++
		}
	}

	var options int
	for _, name := range listOrder {
		options += lists[name].Count()
	}

	fmt.Fprintf(stdout, "%s: ok\n", path)
	fmt.Fprintf(stdout, "  fields:       %d (%d questions, %d modules, %d groups/repeats)\n",
		len(fields), questions, modules, sections)
	fmt.Fprintf(stdout, "  choice lists: %d (%d options)\n", len(listOrder), options)
	return nil
}
