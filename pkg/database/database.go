package database

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/ytareq/portfolio/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// sqlite pragmas applied on every connection through the DSN
const dsnOptions = "_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=30000"

// Open opens (creating if needed) the SQLite database at path
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", path, dsnOptions))
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := optimize(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.WithField("path", path).Info("Database connected successfully with WAL mode")
	return db, nil
}

func optimize(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA temp_store=MEMORY",
		"PRAGMA cache_size=10000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// Migrate executes the embedded SQL scripts in file name order.
// Scripts are idempotent so Migrate is safe to run on every start.
func Migrate(db *sql.DB) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		script, err := migrations.ReadFile(file)
		if err != nil {
			return err
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("migration %s: %w", file, err)
		}
		logger.Debugf("Executed SQL script: %s", file)
	}

	logger.Info("All SQL scripts executed successfully")
	return nil
}
