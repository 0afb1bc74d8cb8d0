package clb

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, CONFIG_FILE_NAME)
	content := `{"secret_id": "AKIDxxxx", "secret_key": "secret", "region": "ap-guangzhou"}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	conf, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if conf.SecretID != "AKIDxxxx" {
		t.Errorf("secret_id should be AKIDxxxx, got %s", conf.SecretID)
	}
	if conf.SecretKey != "secret" {
		t.Errorf("secret_key should be secret, got %s", conf.SecretKey)
	}
	if conf.Region != "ap-guangzhou" {
		t.Errorf("region should be ap-guangzhou, got %s", conf.Region)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, CONFIG_FILE_NAME)
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadConfigFile(path); err == nil {
		t.Errorf("invalid json should be rejected")
	}

	if _, err := loadConfigFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("missing file should be rejected")
	}
}
