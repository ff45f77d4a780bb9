// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads connection credentials from a directory of
// plain-text files. Each file holds one secret: the filename is the key name
// and the trimmed file contents are the value. Credentials kept this way
// stay out of shell history, environment dumps, and config files.
//
// Supported key files: object-store-access-key, object-store-secret-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/corpus-converter/pkg/types"
)

// Key file names recognized by Apply.
const (
	KeyObjectStoreAccess = "object-store-access-key"
	KeyObjectStoreSecret = "object-store-secret-key"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Apply fills object store credentials from loaded secrets. Values already
// present in cfg (from flags or environment) win over secret files.
func Apply(cfg *types.ObjectStoreConfig, secrets map[string]string) {
	if cfg.AccessKey == "" {
		cfg.AccessKey = secrets[KeyObjectStoreAccess]
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = secrets[KeyObjectStoreSecret]
	}
}
