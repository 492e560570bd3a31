package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/darianmavgo/foodmart/config"
	"github.com/darianmavgo/foodmart/foodmart"
	"github.com/darianmavgo/foodmart/generators"
	_ "github.com/darianmavgo/foodmart/generators/all"
	"github.com/darianmavgo/foodmart/generators/common"
	"github.com/darianmavgo/foodmart/generators/csv"
)

func getDriverName(path string, isDir bool) (string, error) {
	if isDir {
		return "dir", nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zip", ".jar":
		return "zip", nil
	case ".xlsx", ".xls":
		return "excel", nil
	}
	return "", fmt.Errorf("unsupported source type: %s", ext)
}

// openSource opens the configured source with its driver, inferring the driver
// from the path when none is configured.
func openSource(cfg *config.Config) (common.ResourceProvider, error) {
	info, err := os.Stat(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to stat source: %w", err)
	}

	driverName := cfg.Driver
	if driverName == "" {
		driverName, err = getDriverName(cfg.Source, info.IsDir())
		if err != nil {
			return nil, err
		}
	}

	provider, err := generators.Open(driverName, cfg.Source, cfg.ProviderConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	return provider, nil
}

func closeProvider(provider common.ResourceProvider) {
	if c, ok := provider.(io.Closer); ok {
		c.Close()
	}
}

// selectTables returns the configured tables, or the whole Foodmart schema.
func selectTables(cfg *config.Config) []foodmart.Table {
	if len(cfg.Tables) == 0 {
		return foodmart.Tables()
	}
	tables := make([]foodmart.Table, len(cfg.Tables))
	for i, name := range cfg.TableNames() {
		if t, ok := foodmart.Lookup(name); ok {
			tables[i] = t
		} else {
			tables[i] = foodmart.Table{Name: name}
		}
	}
	return tables
}

// resolveColumnTypes picks each table's types from the config, then the
// catalog, then the Foodmart defaults derived from the CSV header.
func resolveColumnTypes(cfg *config.Config, catalog common.ColumnTypes, provider common.ResourceProvider, tables []foodmart.Table) (common.ColumnTypes, error) {
	configured, err := cfg.ColumnTypes()
	if err != nil {
		return nil, err
	}

	types := make(common.ColumnTypes, len(tables))
	var missing []foodmart.Table
	for _, t := range tables {
		if ct, ok := configured[t.Name]; ok {
			types[t.Name] = ct
		} else if ct, ok := catalog[t.Name]; ok {
			types[t.Name] = ct
		} else {
			missing = append(missing, t)
		}
	}

	if len(missing) > 0 {
		if cfg.Verbose {
			log.Printf("[FOODMART] Deriving column types from headers for %d tables", len(missing))
		}
		defaults, err := foodmart.DefaultColumnTypes(provider, missing)
		if err != nil {
			return nil, err
		}
		for name, ct := range defaults {
			types[name] = ct
		}
	}
	return types, nil
}

// readCatalog reads column types from the configured catalog database.
func readCatalog(ctx context.Context, path string) (common.ColumnTypes, error) {
	if path == "" {
		return nil, nil
	}
	db, err := generators.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return generators.ReadColumnTypes(ctx, db)
}

// ensureSchema creates the tables db does not have yet, named after the CSV headers.
func ensureSchema(ctx context.Context, db *sql.DB, existing, types common.ColumnTypes, provider common.ResourceProvider, tables []foodmart.Table, verbose bool) error {
	var defs []generators.TableDef
	for _, t := range tables {
		if _, ok := existing[t.Name]; ok {
			continue
		}
		headers, err := csv.ReadHeader(provider, t.Name)
		if err != nil {
			return err
		}
		defs = append(defs, generators.TableDef{Name: t.Name, Columns: headers, Types: types[t.Name]})
	}
	return generators.CreateTables(ctx, db, defs, verbose)
}

// LoadToSQLite loads every configured table from the source into the database at outputPath.
func LoadToSQLite(ctx context.Context, cfg *config.Config, outputPath string) (int, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return 0, err
	}

	provider, err := openSource(cfg)
	if err != nil {
		return 0, err
	}
	defer closeProvider(provider)

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	db, err := generators.OpenSQLite(outputPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	existing, err := generators.ReadColumnTypes(ctx, db)
	if err != nil {
		return 0, err
	}
	catalog := existing
	if cfg.Catalog != "" {
		if catalog, err = readCatalog(ctx, cfg.Catalog); err != nil {
			return 0, err
		}
	}

	tables := selectTables(cfg)
	types, err := resolveColumnTypes(cfg, catalog, provider, tables)
	if err != nil {
		return 0, err
	}
	if err := ensureSchema(ctx, db, existing, types, provider, tables, cfg.Verbose); err != nil {
		return 0, err
	}

	stmts := foodmart.GenerateInserts(provider, types, tables)
	return generators.LoadStatements(ctx, db, stmts, &generators.LoadOptions{
		BatchSize:   cfg.BatchSize,
		LogErrors:   cfg.LogErrors,
		Verbose:     cfg.Verbose,
		IdleTimeout: timeout,
	})
}

// ExportToSQL writes every INSERT statement to writer, one per line.
func ExportToSQL(ctx context.Context, cfg *config.Config, writer io.Writer) (int, error) {
	provider, err := openSource(cfg)
	if err != nil {
		return 0, err
	}
	defer closeProvider(provider)

	catalog, err := readCatalog(ctx, cfg.Catalog)
	if err != nil {
		return 0, err
	}
	tables := selectTables(cfg)
	types, err := resolveColumnTypes(cfg, catalog, provider, tables)
	if err != nil {
		return 0, err
	}

	w := bufio.NewWriter(writer)
	count := 0
	for stmt, err := range common.All[string](foodmart.GenerateInserts(provider, types, tables)) {
		if err != nil {
			return count, err
		}
		if ctx.Err() != nil {
			w.Flush()
			return count, generators.ErrInterrupted
		}
		if _, err := w.WriteString(stmt + ";\n"); err != nil {
			return count, fmt.Errorf("failed to write statement: %w", err)
		}
		count++
	}
	if err := w.Flush(); err != nil {
		return count, fmt.Errorf("failed to write statements: %w", err)
	}
	return count, nil
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  foodmart [--log] [--config file.hcl] <source> [output_db]    # Load into a SQLite database")
	fmt.Println("  foodmart --sql [--config file.hcl] <source> [output_file]    # Export as SQL statements")
	fmt.Println("  foodmart --export-config <file.hcl>                           # Write the default configuration")
	fmt.Println("Sources: a directory of CSV files, a zip/jar archive, or an Excel workbook.")
}

func main() {
	args := os.Args[1:]
	logMode := false
	sqlMode := false
	configPath := ""

	// Filter out flags
	var cleanArgs []string
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--log":
			logMode = true
		case "--sql":
			sqlMode = true
		case "--config", "--export-config":
			if i+1 >= len(args) {
				fmt.Printf("Missing file name after %s\n", arg)
				os.Exit(1)
			}
			i++
			if arg == "--export-config" {
				if err := config.Export(args[i], config.DefaultConfig()); err != nil {
					fmt.Printf("Error exporting config: %v\n", err)
					os.Exit(1)
				}
				fmt.Printf("Default configuration written to %s\n", args[i])
				return
			}
			configPath = args[i]
		default:
			cleanArgs = append(cleanArgs, arg)
		}
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if logMode {
		cfg.LogErrors = true
	}
	if len(cleanArgs) >= 1 {
		cfg.Source = cleanArgs[0]
	}
	if cfg.Source == "" {
		usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if sqlMode {
		var writer io.Writer
		if len(cleanArgs) >= 2 {
			f, err := os.Create(cleanArgs[1])
			if err != nil {
				fmt.Printf("Error creating output file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			writer = f
		} else {
			writer = os.Stdout
		}

		if _, err := ExportToSQL(ctx, cfg, writer); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting SQL: %v\n", err)
			os.Exit(1)
		}
		return
	}

	outputPath := "foodmart.db"
	if len(cleanArgs) >= 2 {
		outputPath = cleanArgs[1]
	}

	n, err := LoadToSQLite(ctx, cfg, outputPath)
	if err != nil {
		if errors.Is(err, generators.ErrInterrupted) || errors.Is(err, generators.ErrLoadTimeout) {
			fmt.Printf("Load stopped after %d statements: %v\n", n, err)
		} else {
			fmt.Printf("Error loading %s: %v\n", cfg.Source, err)
		}
		os.Exit(1)
	}

	fmt.Printf("Successfully loaded %d rows from %s into %s\n", n, cfg.Source, outputPath)
}
