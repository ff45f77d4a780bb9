// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FileStatus tracks where a file sits in the ingest-to-convert lifecycle.
// A batch run advances ingested records to exactly one of converted or
// failed; statuses are never reverted.
type FileStatus string

const (
	StatusPending   FileStatus = "pending"
	StatusIngested  FileStatus = "ingested"
	StatusConverted FileStatus = "converted"
	StatusFailed    FileStatus = "failed"
)

// FileRecord is one row of the files ledger. The ledger owns all writes to
// Status and UpdatedAt; the conversion pipeline only reads ID and SourcePath.
type FileRecord struct {
	// ID is the stable ledger row identifier.
	ID int64 `json:"id"`

	// SourcePath is the full object store path of the gzipped HTML source
	// (e.g. "s3://corpus/docs/page.html.gz").
	SourcePath string `json:"source_path"`

	// Status is the current lifecycle status.
	Status FileStatus `json:"status"`

	// CreatedAt is when the record was first registered.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every status write.
	UpdatedAt time.Time `json:"updated_at"`
}
