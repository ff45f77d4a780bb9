// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-converter/internal/ledger"
	"github.com/pdiddy/corpus-converter/internal/objstore"
	"github.com/pdiddy/corpus-converter/internal/pipeline"
	"github.com/pdiddy/corpus-converter/internal/render"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert all ingested HTML files to Markdown",
	Long: `Convert queries the ledger for files with status 'ingested' and processes
them one at a time: fetch, decompress, strip boilerplate, render Markdown,
and store the result in a sibling "markdown" directory. Each file's status
advances to 'converted' or 'failed'; one bad file never stops the batch.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	led, err := ledger.Open(cfg.Ledger.Path)
	if err != nil {
		return err
	}
	defer led.Close()

	store, err := objstore.NewMinioStore(cfg.ObjectStore)
	if err != nil {
		return err
	}

	pipe := pipeline.New(store, render.New())

	result, err := pipeline.Run(context.Background(), led, pipe, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
