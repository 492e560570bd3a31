package generators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/darianmavgo/foodmart/generators/common"

	_ "modernc.org/sqlite"
)

var ErrInterrupted = errors.New("operation interrupted by user")
var ErrLoadTimeout = errors.New("load stalled")

var (
	// BatchSize defines the number of statements to execute before committing a transaction.
	BatchSize = 1000
)

// LoadOptions defines configuration for the load process.
type LoadOptions struct {
	BatchSize   int           // Statements per transaction; BatchSize when <= 0.
	LogErrors   bool          // If true, failed statements are logged to a table instead of aborting.
	Verbose     bool          // If true, enables detailed logging.
	IdleTimeout time.Duration // Abort when no statement completes for this long; 0 disables.
}

// OpenSQLite opens (creating if needed) the SQLite database at dbPath.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Limit to 1 connection to avoid locking issues
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA page_size = 65536; PRAGMA cache_size = -2000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set PRAGMAs: %w", err)
	}
	return db, nil
}

// LoadSQLite executes every statement of stmts against the SQLite database at dbPath.
func LoadSQLite(ctx context.Context, dbPath string, stmts common.Iterator[string], opts *LoadOptions) (int, error) {
	db, err := OpenSQLite(dbPath)
	if err != nil {
		stmts.Close()
		return 0, err
	}
	defer db.Close()
	return LoadStatements(ctx, db, stmts, opts)
}

// LoadStatements drains stmts into db in batched transactions and returns the
// number of statements executed. stmts is always closed on return.
//
// When ctx is cancelled or the idle watchdog fires, the batch in progress is
// committed and ErrInterrupted or ErrLoadTimeout is returned.
func LoadStatements(ctx context.Context, db *sql.DB, stmts common.Iterator[string], opts *LoadOptions) (int, error) {
	defer stmts.Close()

	if opts == nil {
		opts = &LoadOptions{}
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = BatchSize
	}

	if opts.LogErrors {
		_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _foodmart_errors (
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			message TEXT,
			statement TEXT
		)`)
		if err != nil {
			return 0, fmt.Errorf("failed to create error log table: %w", err)
		}
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	wd := common.NewWatchdog(opts.IdleTimeout, func() { cancel(ErrLoadTimeout) })
	wd.Start()
	defer wd.Stop()

	// The transaction is not bound to ctx so a stop can still commit it.
	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	count := 0
	stop := func(cause error) (int, error) {
		if opts.Verbose {
			log.Printf("[FOODMART] Stopped (%v). Committing partial batch after %d statements...", cause, count)
		}
		if commitErr := tx.Commit(); commitErr != nil {
			log.Printf("[FOODMART] Failed to commit on stop: %v", commitErr)
		}
		return count, cause
	}

	for stmts.HasNext() {
		if ctx.Err() != nil {
			return stop(stopCause(ctx))
		}

		stmt, err := stmts.Next()
		if err != nil {
			tx.Rollback()
			return count, err
		}

		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			if ctx.Err() != nil {
				return stop(stopCause(ctx))
			}
			if !opts.LogErrors {
				tx.Rollback()
				return count, fmt.Errorf("failed to execute statement %d: %w", count+1, err)
			}
			if _, logErr := tx.ExecContext(ctx,
				`INSERT INTO _foodmart_errors (message, statement) VALUES (?, ?)`, err.Error(), stmt); logErr != nil {
				tx.Rollback()
				return count, fmt.Errorf("failed to log statement error: %w", logErr)
			}
			wd.Kick()
			continue
		}

		count++
		wd.Kick()
		if count%batchSize == 0 {
			if err := tx.Commit(); err != nil {
				return count, fmt.Errorf("failed to commit transaction: %w", err)
			}
			if opts.Verbose {
				log.Printf("[FOODMART] Committed %d statements", count)
			}
			tx, err = db.BeginTx(context.Background(), nil)
			if err != nil {
				return count, fmt.Errorf("failed to begin transaction: %w", err)
			}
		}
	}

	if err := stmts.Err(); err != nil {
		tx.Rollback()
		return count, err
	}
	if err := tx.Commit(); err != nil {
		return count, fmt.Errorf("failed to commit transaction: %w", err)
	}
	if opts.Verbose {
		log.Printf("[FOODMART] Load completed, total statements: %d", count)
	}
	return count, nil
}

func stopCause(ctx context.Context) error {
	if cause := context.Cause(ctx); errors.Is(cause, ErrLoadTimeout) {
		return ErrLoadTimeout
	}
	return ErrInterrupted
}
