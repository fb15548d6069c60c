// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/adschema/internal/schema"
)

var exportCmd = &cobra.Command{
	Use:   "export [csv|tsv|json]",
	Short: "Export the store to CSV, TSV, or JSON",
	Long: `Export writes the (GUID, attribute name) projection as CSV or TSV rows
sorted by name, or the full typed store as a JSON object keyed by GUID.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format := args[0]
	switch format {
	case "csv", "tsv", "json":
	default:
		return fmt.Errorf("unsupported format %q: use csv, tsv, or json", format)
	}

	store, err := schema.Load(schemaFile(cmd))
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = "ad-schema-attributes." + format
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	defer f.Close()

	switch format {
	case "csv":
		err = store.ExportCSV(f)
	case "tsv":
		err = store.ExportTSV(f)
	case "json":
		err = store.ExportJSON(f)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d attributes to %s\n", store.Len(), outPath)
	return nil
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output filename (default: ad-schema-attributes.<format>)")

	rootCmd.AddCommand(exportCmd)
}
