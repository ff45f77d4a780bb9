// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Ledger: LedgerConfig{Path: "data/corpus.db"},
		ObjectStore: ObjectStoreConfig{
			Endpoint:  "localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestConfigValidate_ReportsAllMissing(t *testing.T) {
	var cfg Config
	err := cfg.Validate()
	if err == nil {
		t.Fatal("empty config should fail validation")
	}
	for _, want := range []string{
		"ledger.path",
		"object_store.endpoint",
		"object_store.access_key",
		"object_store.secret_key",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should name missing parameter %q: %v", want, err)
		}
	}
}

func TestConfigValidate_SingleMissing(t *testing.T) {
	cfg := validConfig()
	cfg.ObjectStore.SecretKey = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing secret key")
	}
	if strings.Contains(err.Error(), "endpoint") {
		t.Errorf("error should only name the missing parameter: %v", err)
	}
}
