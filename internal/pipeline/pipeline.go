// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline converts one ledger record at a time: fetch the gzipped
// HTML source, sanitize it, render Markdown, post-process, and store the
// result beside the source. Each stage either produces a value for the next
// stage or an Outcome naming the failure; the first failure short-circuits
// the rest, and nothing is written unless every prior stage succeeded.
package pipeline

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pdiddy/corpus-converter/internal/markdown"
	"github.com/pdiddy/corpus-converter/internal/objstore"
	"github.com/pdiddy/corpus-converter/internal/pathutil"
	"github.com/pdiddy/corpus-converter/internal/render"
	"github.com/pdiddy/corpus-converter/internal/sanitize"
	"github.com/pdiddy/corpus-converter/pkg/types"
)

// markdownContentType tags converted artifacts in the object store.
const markdownContentType = "text/markdown"

// Reason enumerates why a file's conversion failed. Every per-file failure
// maps to exactly one reason so failures are countable and testable.
type Reason string

const (
	ReasonInvalidPath Reason = "invalid_path"
	ReasonNotFound    Reason = "not_found"
	ReasonFetch       Reason = "fetch_error"
	ReasonDecompress  Reason = "decompress_error"
	ReasonDecode      Reason = "decode_error"
	ReasonRender      Reason = "render_error"
	ReasonStore       Reason = "store_error"
)

// Outcome is the terminal result of processing one file. On success
// OutputPath holds the full storage path of the written Markdown; on failure
// Reason and Err describe what went wrong. Outcomes are never persisted;
// they only drive the status update and the run summary.
type Outcome struct {
	OK         bool
	OutputPath string
	Reason     Reason
	Err        error
}

func failure(reason Reason, err error) Outcome {
	return Outcome{Reason: reason, Err: err}
}

// Pipeline holds the collaborators for per-file conversion. The object store
// and renderer are interfaces so tests can substitute in-memory fakes.
type Pipeline struct {
	store    objstore.Store
	renderer render.Renderer
}

// New creates a Pipeline.
func New(store objstore.Store, renderer render.Renderer) *Pipeline {
	return &Pipeline{store: store, renderer: renderer}
}

// Process runs the conversion stages for one record. It only reads the
// record's id and source path; status writes belong to the ledger.
func (p *Pipeline) Process(ctx context.Context, rec types.FileRecord) Outcome {
	bucket, key, err := pathutil.ParseStoragePath(rec.SourcePath)
	if err != nil {
		return failure(ReasonInvalidPath, err)
	}

	exists, err := p.store.Exists(ctx, bucket, key)
	if err != nil {
		return failure(ReasonFetch, err)
	}
	if !exists {
		return failure(ReasonNotFound, fmt.Errorf("object not found: %s", rec.SourcePath))
	}

	compressed, err := p.store.Get(ctx, bucket, key)
	if err != nil {
		return failure(ReasonFetch, err)
	}

	html, err := decompress(compressed)
	if err != nil {
		return failure(ReasonDecompress, fmt.Errorf("decompressing %s: %w", rec.SourcePath, err))
	}

	if !utf8.Valid(html) {
		return failure(ReasonDecode, fmt.Errorf("decoding %s: content is not valid UTF-8", rec.SourcePath))
	}

	cleaned := sanitize.Clean(string(html))

	md, err := p.renderer.Render(cleaned)
	if err != nil {
		return failure(ReasonRender, err)
	}
	md = markdown.Postprocess(md)

	outKey := pathutil.SiblingMarkdownPath(key)
	if err := p.store.Put(ctx, bucket, outKey, []byte(md), markdownContentType); err != nil {
		return failure(ReasonStore, err)
	}

	return Outcome{OK: true, OutputPath: pathutil.Join(bucket, outKey)}
}

// decompress inflates a gzip stream into raw bytes.
func decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return out, nil
}
