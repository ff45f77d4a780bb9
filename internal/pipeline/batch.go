// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/corpus-converter/internal/logging"
	"github.com/pdiddy/corpus-converter/pkg/types"
)

// Ledger is the status store surface the batch runner needs. The concrete
// implementation lives in internal/ledger; tests use fakes.
type Ledger interface {
	// ListEligible returns records with status ingested, most recently
	// updated first.
	ListEligible(ctx context.Context) ([]types.FileRecord, error)

	// UpdateStatus sets a record's status and refreshes its timestamp.
	UpdateStatus(ctx context.Context, id int64, status types.FileStatus) error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run processes every eligible record sequentially, printing per-file status
// to w and recording converted/failed in the ledger. A failing file never
// aborts the batch; only a failing eligibility query does. A ledger write
// failure is logged and processing continues with the next record.
func Run(ctx context.Context, led Ledger, p *Pipeline, w io.Writer) (BatchResult, error) {
	records, err := led.ListEligible(ctx)
	if err != nil {
		return BatchResult{}, fmt.Errorf("listing eligible files: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "no files with status 'ingested'")
		return BatchResult{}, nil
	}

	var result BatchResult
	for _, rec := range records {
		outcome := p.Process(ctx, rec)

		status := types.StatusConverted
		if outcome.OK {
			result.Converted++
			fmt.Fprintf(w, "converted: %s -> %s\n", rec.SourcePath, outcome.OutputPath)
		} else {
			status = types.StatusFailed
			result.Failed++
			fmt.Fprintf(w, "failed:    %s (%s)\n", rec.SourcePath, outcome.Reason)
			logging.WithFile(rec.ID, rec.SourcePath).Error("conversion failed",
				"reason", string(outcome.Reason), "error", outcome.Err)
		}

		if err := led.UpdateStatus(ctx, rec.ID, status); err != nil {
			logging.WithFile(rec.ID, rec.SourcePath).Warn("ledger status write failed",
				"status", string(status), "error", err)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, nil
}
