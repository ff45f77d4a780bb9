// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-converter/internal/ledger"
	"github.com/pdiddy/corpus-converter/pkg/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show ledger record counts by lifecycle status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	led, err := ledger.Open(cfg.Ledger.Path)
	if err != nil {
		return err
	}
	defer led.Close()

	counts, err := led.StatusCounts(context.Background())
	if err != nil {
		return err
	}

	total := 0
	for _, status := range []types.FileStatus{
		types.StatusPending, types.StatusIngested, types.StatusConverted, types.StatusFailed,
	} {
		fmt.Fprintf(os.Stdout, "%-10s %d\n", status, counts[status])
		total += counts[status]
	}
	fmt.Fprintf(os.Stdout, "%-10s %d\n", "total", total)
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
