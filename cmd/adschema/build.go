// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/adschema/internal/extract"
	"github.com/pdiddy/adschema/internal/schema"
	"github.com/pdiddy/adschema/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build [pdf...]",
	Short: "Build the schema store from the MS-ADA reference PDFs",
	Long: `Build extracts text from the given reference PDFs (MS-ADA1, MS-ADA2,
MS-ADA3), parses the per-attribute blocks, merges the three partitions by
schemaIdGuid, and writes the store snapshot.

Merging follows the argument order: when two documents disagree on a field
value, the later document wins and the conflict is recorded. Non-fatal
parsing issues never abort the build; they accumulate into the report
written with --report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	ex, err := extract.NewPdftotextExtractor(viper.GetString("pdftotext"))
	if err != nil {
		return err
	}

	store, report := schema.BuildStore(cmd.Context(), ex, args, os.Stdout)

	dest, _ := cmd.Flags().GetString("output")
	if dest == "" {
		dest = schemaFile(cmd)
	}
	if err := store.Save(dest); err != nil {
		return err
	}
	fmt.Printf("Schema store written to %s\n", dest)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := schema.WriteReport(reportPath, report); err != nil {
			return err
		}
		fmt.Printf("Build report written to %s\n", reportPath)
	}

	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		printBuildStats(store, report)
	}

	if report.ExtractionFailed() {
		return fmt.Errorf("%d document(s) failed text extraction", report.Counts[types.AnomalyExtraction])
	}
	return nil
}

// printBuildStats prints per-document counts and field coverage.
func printBuildStats(store *schema.Store, report *types.BuildReport) {
	fmt.Println("\nDocuments:")
	for _, d := range report.Documents {
		if d.Failed {
			fmt.Printf("  %s: extraction failed\n", d.Document)
			continue
		}
		fmt.Printf("  %s: %d blocks, %d attributes\n", d.Document, d.Blocks, d.Stored)
	}

	total := store.Len()
	if total == 0 {
		return
	}

	coverage := make(map[string]int)
	for _, r := range store.Records() {
		for _, name := range types.FieldNames {
			if _, ok := r.Field(name); ok {
				coverage[name]++
			}
		}
	}

	names := make([]string, 0, len(coverage))
	for name := range coverage {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nField coverage:")
	for _, name := range names {
		n := coverage[name]
		fmt.Printf("  %s: %d/%d (%.1f%%)\n", name, n, total, float64(n)/float64(total)*100)
	}
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "store destination (default: --schema-file)")
	buildCmd.Flags().String("report", "", "write the build report as YAML to this file")
	buildCmd.Flags().Bool("stats", false, "print per-document counts and field coverage")

	rootCmd.AddCommand(buildCmd)
}
