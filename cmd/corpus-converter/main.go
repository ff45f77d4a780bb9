// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the corpus-converter CLI, a batch tool
// that turns ingested HTML documents in object storage into cleaned Markdown
// and tracks each file's lifecycle in a SQLite ledger.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/corpus-converter/internal/logging"
	"github.com/pdiddy/corpus-converter/internal/secrets"
	"github.com/pdiddy/corpus-converter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the corpus-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "corpus-converter",
	Short: "Batch-convert ingested HTML documents to Markdown",
	Long: `corpus-converter reads gzipped HTML documents from an S3-compatible object
store, strips boilerplate (navigation, footers, ads), renders Markdown, and
writes the result to a sibling "markdown" directory in the same bucket.

A SQLite ledger tracks each file's lifecycle: records registered as
'ingested' are picked up by the convert command and advanced to 'converted'
or 'failed', one file at a time.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s

		logging.Init(types.LoggingConfig{
			Level:  viper.GetString("logging.level"),
			Format: viper.GetString("logging.format"),
		})
		return nil
	},
}

// loadConfig assembles the immutable run configuration from viper (env,
// config file, flags) and the secrets directory.
func loadConfig() types.Config {
	cfg := types.Config{
		Ledger: types.LedgerConfig{
			Path: viper.GetString("ledger.path"),
		},
		ObjectStore: types.ObjectStoreConfig{
			Endpoint:  viper.GetString("object_store.endpoint"),
			AccessKey: viper.GetString("object_store.access_key"),
			SecretKey: viper.GetString("object_store.secret_key"),
			UseSSL:    viper.GetBool("object_store.use_ssl"),
		},
		Logging: types.LoggingConfig{
			Level:  viper.GetString("logging.level"),
			Format: viper.GetString("logging.format"),
		},
	}
	secrets.Apply(&cfg.ObjectStore, loadedSecrets)
	return cfg
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./corpus-converter.yaml or ~/.config/corpus-converter/config.yaml)")
	rootCmd.PersistentFlags().String("ledger-path", "", "path to the SQLite ledger database")

	viper.SetDefault("ledger.path", "data/corpus.db")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("corpus-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "corpus-converter"))
		}
	}

	viper.SetEnvPrefix("CORPUS_CONVERTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if ledgerPath, _ := rootCmd.PersistentFlags().GetString("ledger-path"); ledgerPath != "" {
		viper.Set("ledger.path", ledgerPath)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
