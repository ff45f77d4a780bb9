// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pathutil maps object store paths between their URI form, the
// (bucket, key) pair the store API wants, and the sibling location where
// converted Markdown is written.
package pathutil

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Scheme is the URI prefix for object store paths.
const Scheme = "s3://"

// markdownDir is the sibling subdirectory for converted output.
const markdownDir = "markdown"

// ErrInvalidPath marks a source path that does not carry the expected scheme.
var ErrInvalidPath = errors.New("invalid storage path")

// ParseStoragePath splits an "s3://bucket/key" path into bucket and key.
// The key is returned without a leading slash. Paths missing the scheme
// prefix fail with ErrInvalidPath; everything after the prefix is split
// verbatim, with no normalization.
func ParseStoragePath(storagePath string) (bucket, key string, err error) {
	if !strings.HasPrefix(storagePath, Scheme) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, storagePath)
	}
	rest := strings.TrimPrefix(storagePath, Scheme)
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("%w: %q has no bucket", ErrInvalidPath, storagePath)
	}
	return bucket, key, nil
}

// SiblingMarkdownPath derives the output key for a converted file: the
// source key's parent directory, then a "markdown" subdirectory, then the
// source filename with one trailing ".gz" stripped, one ".html"/".htm"
// stripped, and ".md" appended. A root-level key yields "markdown/<name>.md".
func SiblingMarkdownPath(key string) string {
	dir := path.Dir(key)
	name := path.Base(key)

	var stem string
	switch ext := strings.ToLower(path.Ext(name)); {
	case ext == ".gz":
		stem = strings.TrimSuffix(name, path.Ext(name))
		if inner := strings.ToLower(path.Ext(stem)); inner == ".html" || inner == ".htm" {
			stem = strings.TrimSuffix(stem, path.Ext(stem))
		}
	case ext == ".html" || ext == ".htm":
		stem = strings.TrimSuffix(name, path.Ext(name))
	default:
		stem = strings.TrimSuffix(name, path.Ext(name))
	}

	if dir == "." || dir == "/" {
		return path.Join(markdownDir, stem+".md")
	}
	return path.Join(dir, markdownDir, stem+".md")
}

// Join reassembles a bucket and key into the URI form used in the ledger.
func Join(bucket, key string) string {
	return Scheme + bucket + "/" + key
}
