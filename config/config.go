package config

import (
	"fmt"
	"os"
	"time"

	"github.com/darianmavgo/foodmart/generators/common"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Config represents the application configuration.
type Config struct {
	BatchSize   int           `hcl:"batch_size,optional"`
	Driver      string        `hcl:"driver,optional"`
	Source      string        `hcl:"source,optional"`
	Prefix      string        `hcl:"prefix,optional"`
	Catalog     string        `hcl:"catalog,optional"`
	LoadTimeout string        `hcl:"load_timeout,optional"`
	Verbose     bool          `hcl:"verbose,optional"`
	LogErrors   bool          `hcl:"log_errors,optional"`
	Tables      []TableConfig `hcl:"table,block"`
}

// TableConfig selects one table to load. Columns, when set, declares its
// column types in column order.
type TableConfig struct {
	Name    string   `hcl:"name,label"`
	Columns []string `hcl:"columns,optional"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BatchSize: 1000,
	}
}

// Load reads the configuration from the given HCL file.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if _, err := cfg.Timeout(); err != nil {
		return nil, err
	}
	if _, err := cfg.ColumnTypes(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Timeout parses LoadTimeout. An empty value disables the timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.LoadTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.LoadTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid load_timeout %q: %w", c.LoadTimeout, err)
	}
	return d, nil
}

// TableNames returns the names of the declared tables in file order.
func (c *Config) TableNames() []string {
	names := make([]string, len(c.Tables))
	for i, t := range c.Tables {
		names[i] = t.Name
	}
	return names
}

// ColumnTypes returns the declared column types, or nil when no table is declared.
// Tables without columns are selected for loading but declare no types.
func (c *Config) ColumnTypes() (common.ColumnTypes, error) {
	if len(c.Tables) == 0 {
		return nil, nil
	}
	types := make(common.ColumnTypes, len(c.Tables))
	seen := make(map[string]bool, len(c.Tables))
	for _, t := range c.Tables {
		if seen[t.Name] {
			return nil, fmt.Errorf("table %s declared twice", t.Name)
		}
		seen[t.Name] = true
		if len(t.Columns) == 0 {
			continue
		}
		colTypes, err := common.ParseColumnTypes(t.Columns)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		types[t.Name] = colTypes
	}
	return types, nil
}

// ProviderConfig returns the options for opening the configured source.
func (c *Config) ProviderConfig() *common.ProviderConfig {
	return &common.ProviderConfig{Prefix: c.Prefix, Verbose: c.Verbose}
}

// Export writes the configuration to the specified file in HCL format.
func Export(path string, cfg *Config) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("batch_size", cty.NumberIntVal(int64(cfg.BatchSize)))
	root.SetAttributeValue("driver", cty.StringVal(cfg.Driver))
	root.SetAttributeValue("source", cty.StringVal(cfg.Source))
	root.SetAttributeValue("prefix", cty.StringVal(cfg.Prefix))
	root.SetAttributeValue("catalog", cty.StringVal(cfg.Catalog))
	root.SetAttributeValue("load_timeout", cty.StringVal(cfg.LoadTimeout))
	root.SetAttributeValue("verbose", cty.BoolVal(cfg.Verbose))
	root.SetAttributeValue("log_errors", cty.BoolVal(cfg.LogErrors))

	for _, t := range cfg.Tables {
		root.AppendNewline()
		block := root.AppendNewBlock("table", []string{t.Name})
		if len(t.Columns) > 0 {
			block.Body().SetAttributeValue("columns", stringList(t.Columns))
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}

	return nil
}

func stringList(items []string) cty.Value {
	vals := make([]cty.Value, len(items))
	for i, s := range items {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
