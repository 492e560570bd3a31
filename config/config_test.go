package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/darianmavgo/foodmart/generators/common"
	"github.com/google/go-cmp/cmp"
)

func TestExportAndLoad(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	configPath := filepath.Join(tempDir, "config.hcl")

	// Test Export
	defaultCfg := DefaultConfig()
	defaultCfg.BatchSize = 500
	defaultCfg.Driver = "zip"
	defaultCfg.Source = "foodmart-data-hsqldb.jar"
	defaultCfg.LoadTimeout = "30s"
	defaultCfg.LogErrors = true
	defaultCfg.Tables = []TableConfig{
		{Name: "days", Columns: []string{"INTEGER", "VARCHAR(30)"}},
		{Name: "store", Columns: []string{"INTEGER", "BOOLEAN", "DECIMAL(10,4)"}},
	}
	err = Export(configPath, defaultCfg)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Test Load
	loadedCfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(defaultCfg, loadedCfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	timeout, err := loadedCfg.Timeout()
	if err != nil || timeout != 30*time.Second {
		t.Errorf("Timeout() = %v, %v", timeout, err)
	}

	if diff := cmp.Diff([]string{"days", "store"}, loadedCfg.TableNames()); diff != "" {
		t.Errorf("table names mismatch (-want +got):\n%s", diff)
	}

	types, err := loadedCfg.ColumnTypes()
	if err != nil {
		t.Fatalf("ColumnTypes failed: %v", err)
	}
	want := common.ColumnTypes{
		"days":  {common.Integer, common.Varchar},
		"store": {common.Integer, common.Boolean, common.Decimal},
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("column types mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaults(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test_empty")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	configPath := filepath.Join(tempDir, "empty.hcl")
	err = os.WriteFile(configPath, []byte(""), 0644)
	if err != nil {
		t.Fatalf("failed to write empty config: %v", err)
	}

	loadedCfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loadedCfg.BatchSize != 1000 {
		t.Errorf("expected default BatchSize 1000, got %d", loadedCfg.BatchSize)
	}
	if timeout, _ := loadedCfg.Timeout(); timeout != 0 {
		t.Errorf("expected no timeout, got %v", timeout)
	}
	if types, err := loadedCfg.ColumnTypes(); err != nil || types != nil {
		t.Errorf("expected no column types, got %v, %v", types, err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"Syntax":       `batch_size = `,
		"BadTimeout":   `load_timeout = "soon"`,
		"UnknownType":  "table \"days\" {\n  columns = [\"INTEGER\", \"BLOB\"]\n}\n",
		"DuplicateTab": "table \"days\" {\n  columns = [\"INTEGER\"]\n}\ntable \"days\" {\n  columns = [\"INTEGER\"]\n}\n",
		"UnknownAttr":  `colour = "blue"`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "bad.hcl")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(configPath); err == nil {
				t.Errorf("expected error loading %q", content)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.hcl")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTableWithoutColumns(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tables.hcl")
	content := "table \"days\" {}\ntable \"store\" {\n  columns = [\"INTEGER\", \"VARCHAR\"]\n}\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff([]string{"days", "store"}, cfg.TableNames()); diff != "" {
		t.Errorf("table names mismatch (-want +got):\n%s", diff)
	}
	types, err := cfg.ColumnTypes()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := types["days"]; ok {
		t.Error("days should not declare column types")
	}
	if diff := cmp.Diff([]common.ColumnType{common.Integer, common.Varchar}, types["store"]); diff != "" {
		t.Errorf("store types mismatch (-want +got):\n%s", diff)
	}
}
