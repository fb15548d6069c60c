// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the adschema CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the adschema CLI.
var rootCmd = &cobra.Command{
	Use:   "adschema",
	Short: "Query Active Directory schema attributes by GUID or name",
	Long: `adschema builds a typed attribute store from the Microsoft AD schema
attribute reference documents (MS-ADA1, MS-ADA2, MS-ADA3) and answers
queries against it: GUID and name lookups, substring search, full listing,
GUID list intersection, and CSV/TSV/JSON export.

Run "adschema build" once against the three PDFs, then query the resulting
store file with the other subcommands.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./adschema.yaml or ~/.config/adschema/config.yaml)")
	rootCmd.PersistentFlags().StringP("schema-file", "s", "", "path to the schema store (default: ad-schema.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("adschema")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "adschema"))
		}
	}

	viper.SetDefault("schema_file", "ad-schema.db")
	viper.SetDefault("pdftotext", "pdftotext")

	viper.SetEnvPrefix("ADSCHEMA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// schemaFile resolves the store path: flag first, then config/env, then the
// default. The path is threaded explicitly into every command; there is no
// process-wide store handle.
func schemaFile(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("schema-file"); path != "" {
		return path
	}
	return viper.GetString("schema_file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
