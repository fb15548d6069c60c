// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/adschema/internal/schema"
)

var intersectCmd = &cobra.Command{
	Use:   "intersect [file...]",
	Short: "Find GUIDs common to multiple identifier list files",
	Long: `Intersect reads two or more plain text files of GUIDs (one per line;
blank lines and # comments are ignored) and prints the identifiers present
in all of them, ordered by first appearance in the first file.

With --annotate each GUID is resolved against the store; GUIDs with no
matching attribute are kept and marked unresolved.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runIntersect,
}

func runIntersect(cmd *cobra.Command, args []string) error {
	annotate, _ := cmd.Flags().GetBool("annotate")
	outPath, _ := cmd.Flags().GetString("output")

	store, err := schema.Load(schemaFile(cmd))
	if err != nil {
		return err
	}

	lists := make([][]string, len(args))
	for i, path := range args {
		ids, err := schema.ReadGUIDList(path)
		if err != nil {
			return err
		}
		lists[i] = ids
	}

	entries := store.Intersect(lists, annotate)

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("writing intersection output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writeIntersection(w, entries, annotate); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("Wrote %d common GUIDs to %s\n", len(entries), outPath)
	}
	return nil
}

func writeIntersection(w io.Writer, entries []schema.IntersectEntry, annotate bool) error {
	if annotate {
		if _, err := fmt.Fprintln(w, "GUID\tAttributeName"); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if !annotate {
			if _, err := fmt.Fprintln(w, e.GUID); err != nil {
				return err
			}
			continue
		}
		name := e.Name
		if !e.Resolved {
			name = "(unresolved)"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.GUID, name); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	intersectCmd.Flags().BoolP("annotate", "a", false, "resolve attribute names alongside GUIDs")
	intersectCmd.Flags().StringP("output", "o", "", "write results to a file instead of stdout")

	rootCmd.AddCommand(intersectCmd)
}
