// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/corpus-converter/internal/ledger"
	"github.com/pdiddy/corpus-converter/internal/pathutil"
)

var registerCmd = &cobra.Command{
	Use:   "register [source-path...]",
	Short: "Register source files in the ledger as 'ingested'",
	Long: `Register inserts ledger records for object store paths
(s3://bucket/key form), marking them 'ingested' so the next convert run
picks them up. Paths can be given as arguments or listed in a YAML manifest
file via --manifest.`,
	RunE: runRegister,
}

// manifest is the on-disk form of a bulk registration: a YAML document with
// a single "files" list of object store paths.
type manifest struct {
	Files []string `yaml:"files"`
}

func runRegister(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")

	paths := args
	if manifestPath != "" {
		m, err := readManifest(manifestPath)
		if err != nil {
			return err
		}
		paths = append(paths, m.Files...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no source paths: provide arguments or --manifest")
	}

	cfg := loadConfig()
	led, err := ledger.Open(cfg.Ledger.Path)
	if err != nil {
		return err
	}
	defer led.Close()

	for _, p := range paths {
		if _, _, err := pathutil.ParseStoragePath(p); err != nil {
			return err
		}
		id, err := led.Register(context.Background(), p)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "registered: %s (id %d)\n", p, id)
	}
	return nil
}

// readManifest loads a registration manifest from disk.
func readManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

func init() {
	registerCmd.Flags().String("manifest", "", "YAML file listing source paths to register")

	rootCmd.AddCommand(registerCmd)
}
