// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// LedgerConfig holds settings for the file status ledger.
type LedgerConfig struct {
	// Path is the filesystem path of the SQLite ledger database.
	Path string `json:"path" yaml:"path"`
}

// ObjectStoreConfig holds connection settings for the S3-compatible object
// store that holds source HTML and converted Markdown.
type ObjectStoreConfig struct {
	// Endpoint is the object store host:port (e.g. "localhost:9000").
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// AccessKey is the object store access key ID.
	AccessKey string `json:"access_key,omitempty" yaml:"access_key,omitempty"`

	// SecretKey is the object store secret key.
	SecretKey string `json:"secret_key,omitempty" yaml:"secret_key,omitempty"`

	// UseSSL selects https for object store connections.
	UseSSL bool `json:"use_ssl" yaml:"use_ssl"`
}

// LoggingConfig holds settings for structured log output.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `json:"level" yaml:"level"`

	// Format selects the handler: json or text.
	Format string `json:"format" yaml:"format"`
}

// Config groups all settings for a converter run. It is assembled once at
// process start and treated as immutable afterwards, so tests can inject a
// value without touching process-wide state.
type Config struct {
	Ledger      LedgerConfig      `json:"ledger" yaml:"ledger"`
	ObjectStore ObjectStoreConfig `json:"object_store" yaml:"object_store"`
	Logging     LoggingConfig     `json:"logging" yaml:"logging"`
}

// Validate checks that every required connection parameter is present.
// It reports all missing parameters at once so the operator can fix the
// environment in one pass.
func (c Config) Validate() error {
	var missing []string
	if c.Ledger.Path == "" {
		missing = append(missing, "ledger.path")
	}
	if c.ObjectStore.Endpoint == "" {
		missing = append(missing, "object_store.endpoint")
	}
	if c.ObjectStore.AccessKey == "" {
		missing = append(missing, "object_store.access_key")
	}
	if c.ObjectStore.SecretKey == "" {
		missing = append(missing, "object_store.secret_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
