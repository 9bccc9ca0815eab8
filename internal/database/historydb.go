package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/klatt42/serpmaster/internal/model"
)

// HistoryDB provides SQLite-based storage for completed audits.
// It manages connection pooling and provides methods for saving, listing,
// and retrieving audit results.
//
// Design decision: We store the full audit result as JSON alongside a few
// extracted summary columns. Listing and diffing read only the summary
// columns; the JSON is deserialized only when a full result is needed.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "serpmaster.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; multiple connections don't help.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Audits store complete audit results as JSON plus summary columns
	CREATE TABLE IF NOT EXISTS audits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		site TEXT NOT NULL,
		task_id TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		total_score REAL NOT NULL,
		percentage REAL NOT NULL,
		grade TEXT,
		critical_count INTEGER NOT NULL,
		warning_count INTEGER NOT NULL,
		info_count INTEGER NOT NULL,
		quick_win_count INTEGER NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_audits_site ON audits(site);
	CREATE INDEX IF NOT EXISTS idx_audits_timestamp ON audits(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// AuditRecord is the summary row for one stored audit. It carries enough
// to list and diff audits without deserializing the full result.
type AuditRecord struct {
	ID            int64
	Site          string
	TaskID        string
	Timestamp     time.Time
	TotalScore    float64
	Percentage    float64
	Grade         string
	CriticalCount int
	WarningCount  int
	InfoCount     int
	QuickWinCount int
}

// auditColumns is the summary column list shared by the list queries.
const auditColumns = `id, site, task_id, timestamp, total_score, percentage, grade,
	critical_count, warning_count, info_count, quick_win_count`

// SaveAudit stores a completed audit result.
func (hdb *HistoryDB) SaveAudit(ctx context.Context, result *model.AuditResult) (int64, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize audit result: %w", err)
	}

	query := `
	INSERT INTO audits (site, task_id, timestamp, total_score, percentage, grade,
		critical_count, warning_count, info_count, quick_win_count, result_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := hdb.db.ExecContext(ctx, query,
		result.URL,
		result.TaskID,
		result.Timestamp.UTC().Format(time.RFC3339),
		result.Score.TotalScore,
		result.Score.Percentage,
		result.Score.Grade,
		len(result.Issues.Critical),
		len(result.Issues.Warnings),
		len(result.Issues.Info),
		len(result.Issues.QuickWins),
		string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save audit: %w", err)
	}

	return res.LastInsertId()
}

// LatestAudit retrieves the most recent audit result for a site.
// Returns nil without error when the site has no stored audits.
func (hdb *HistoryDB) LatestAudit(ctx context.Context, site string) (*model.AuditResult, error) {
	query := `
	SELECT result_json FROM audits
	WHERE site = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 1
	`

	var resultJSON string
	err := hdb.db.QueryRowContext(ctx, query, site).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit: %w", err)
	}

	var result model.AuditResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse audit result: %w", err)
	}

	return &result, nil
}

// LatestAudits retrieves the most recent n audit results for a site,
// newest first. Used by the history diff, which needs the latest two.
func (hdb *HistoryDB) LatestAudits(ctx context.Context, site string, n int) ([]*model.AuditResult, error) {
	query := `
	SELECT result_json FROM audits
	WHERE site = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := hdb.db.QueryContext(ctx, query, site, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query audits: %w", err)
	}
	defer rows.Close()

	var results []*model.AuditResult
	for rows.Next() {
		var resultJSON string
		if err := rows.Scan(&resultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan audit: %w", err)
		}

		var result model.AuditResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to parse audit result: %w", err)
		}
		results = append(results, &result)
	}

	return results, rows.Err()
}

// GetAuditByID retrieves a stored audit result by its row ID.
// Returns nil without error when no such audit exists.
func (hdb *HistoryDB) GetAuditByID(ctx context.Context, id int64) (*model.AuditResult, error) {
	var resultJSON string
	err := hdb.db.QueryRowContext(ctx, "SELECT result_json FROM audits WHERE id = ?", id).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit: %w", err)
	}

	var result model.AuditResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse audit result: %w", err)
	}

	return &result, nil
}

// AuditHistory retrieves the summary rows for all audits of a site,
// newest first.
func (hdb *HistoryDB) AuditHistory(ctx context.Context, site string) ([]AuditRecord, error) {
	query := `
	SELECT ` + auditColumns + `
	FROM audits
	WHERE site = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, site)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit history: %w", err)
	}
	defer rows.Close()

	return scanAuditRecords(rows)
}

// ListSites returns all sites with stored audits, sorted.
func (hdb *HistoryDB) ListSites(ctx context.Context) ([]string, error) {
	rows, err := hdb.db.QueryContext(ctx, "SELECT DISTINCT site FROM audits ORDER BY site")
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []string
	for rows.Next() {
		var site string
		if err := rows.Scan(&site); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}

// scanAuditRecords reads summary rows into AuditRecords.
func scanAuditRecords(rows *sql.Rows) ([]AuditRecord, error) {
	var records []AuditRecord
	for rows.Next() {
		var (
			rec       AuditRecord
			taskID    sql.NullString
			grade     sql.NullString
			timestamp string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Site,
			&taskID,
			&timestamp,
			&rec.TotalScore,
			&rec.Percentage,
			&grade,
			&rec.CriticalCount,
			&rec.WarningCount,
			&rec.InfoCount,
			&rec.QuickWinCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}

		rec.TaskID = taskID.String
		rec.Grade = grade.String

		ts, err := parseTimestamp(timestamp)
		if err != nil {
			return nil, fmt.Errorf("audit record %d: %w", rec.ID, err)
		}
		rec.Timestamp = ts
		records = append(records, rec)
	}

	return records, rows.Err()
}

// parseTimestamp parses a SQLite timestamp string. SQLite may return
// different formats depending on how the value was written; a value
// matching none of them is reported instead of degrading to the zero
// time, so a corrupted row is visible rather than listed as 0001-01-01.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
