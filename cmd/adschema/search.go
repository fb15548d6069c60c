// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/adschema/internal/schema"
)

var searchCmd = &cobra.Command{
	Use:   "search [pattern]",
	Short: "Search attribute names by case-insensitive substring",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := schema.Load(schemaFile(cmd))
	if err != nil {
		return err
	}

	matches := store.Search(args[0])
	if len(matches) == 0 {
		// An empty result is a valid outcome, not an error.
		fmt.Fprintf(os.Stderr, "no attributes match %q\n", args[0])
		return nil
	}
	for _, e := range matches {
		fmt.Printf("%s\t%s\n", e.Name, e.GUID)
	}
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every attribute in the store",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := schema.Load(schemaFile(cmd))
	if err != nil {
		return err
	}

	for _, e := range store.List() {
		fmt.Printf("%s\t%s\n", e.Name, e.GUID)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
}
