// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/adschema/internal/schema"
)

var lookupGUIDCmd = &cobra.Command{
	Use:   "lookup-guid [guid]",
	Short: "Look up an attribute name by schemaIdGuid",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookupGUID,
}

func runLookupGUID(cmd *cobra.Command, args []string) error {
	store, err := schema.Load(schemaFile(cmd))
	if err != nil {
		return err
	}

	attr, ok := store.LookupGUID(args[0])
	if !ok {
		return fmt.Errorf("GUID %s not found", args[0])
	}
	fmt.Printf("%s\t%s\n", attr.SchemaIDGUID, attr.LDAPDisplayName)
	return nil
}

var lookupNameCmd = &cobra.Command{
	Use:   "lookup-name [name]",
	Short: "Look up a schemaIdGuid by attribute name",
	Long: `Lookup-name matches the ldapDisplayName exactly, case-sensitively.
If several attributes share a name, the first one in store order is
returned.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookupName,
}

func runLookupName(cmd *cobra.Command, args []string) error {
	store, err := schema.Load(schemaFile(cmd))
	if err != nil {
		return err
	}

	guid, ok := store.LookupName(args[0])
	if !ok {
		return fmt.Errorf("attribute name %q not found", args[0])
	}
	fmt.Printf("%s\t%s\n", args[0], guid)
	return nil
}

func init() {
	rootCmd.AddCommand(lookupGUIDCmd)
	rootCmd.AddCommand(lookupNameCmd)
}
