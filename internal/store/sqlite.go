// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "github.com/1cbyc/mt5-risk-calculator/internal/errors"
)

// SQLiteStore implements ScenarioStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based scenario store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Saved simulation parameter sets
	CREATE TABLE IF NOT EXISTS scenarios (
		name TEXT PRIMARY KEY,
		starting_balance REAL NOT NULL,
		target_balance REAL NOT NULL,
		risk_percent REAL NOT NULL,
		reward_ratio REAL NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_scenarios_created ON scenarios(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveScenario inserts a scenario, optionally replacing an existing one.
func (s *SQLiteStore) SaveScenario(ctx context.Context, scenario *Scenario, overwrite bool) error {
	if scenario.CreatedAt.IsZero() {
		scenario.CreatedAt = time.Now().UTC()
	}

	if !overwrite {
		var count int
		err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM scenarios WHERE name = ?`, scenario.Name).Scan(&count)
		if err != nil {
			return apperrors.NewStoreError("save", scenario.Name, err)
		}
		if count > 0 {
			return apperrors.NewStoreError("save", scenario.Name, apperrors.ErrScenarioExists)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scenarios (name, starting_balance, target_balance, risk_percent, reward_ratio, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			starting_balance = excluded.starting_balance,
			target_balance = excluded.target_balance,
			risk_percent = excluded.risk_percent,
			reward_ratio = excluded.reward_ratio,
			notes = excluded.notes`,
		scenario.Name,
		scenario.Params.StartingBalance,
		scenario.Params.TargetBalance,
		scenario.Params.RiskPercent,
		scenario.Params.RewardRatio,
		scenario.Notes,
		scenario.CreatedAt,
	)
	if err != nil {
		return apperrors.NewStoreError("save", scenario.Name, err)
	}
	return nil
}

// GetScenario fetches a scenario by name.
func (s *SQLiteStore) GetScenario(ctx context.Context, name string) (*Scenario, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, starting_balance, target_balance, risk_percent, reward_ratio, notes, created_at
		FROM scenarios WHERE name = ?`, name)

	scenario, err := scanScenario(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewStoreError("get", name, apperrors.ErrScenarioNotFound)
	}
	if err != nil {
		return nil, apperrors.NewStoreError("get", name, err)
	}
	return scenario, nil
}

// ListScenarios returns all scenarios, newest first.
func (s *SQLiteStore) ListScenarios(ctx context.Context) ([]Scenario, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, starting_balance, target_balance, risk_percent, reward_ratio, notes, created_at
		FROM scenarios ORDER BY created_at DESC, name`)
	if err != nil {
		return nil, apperrors.NewStoreError("list", "", err)
	}
	defer rows.Close()

	var scenarios []Scenario
	for rows.Next() {
		scenario, err := scanScenario(rows)
		if err != nil {
			return nil, apperrors.NewStoreError("list", "", err)
		}
		scenarios = append(scenarios, *scenario)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("list", "", err)
	}
	return scenarios, nil
}

// DeleteScenario removes a scenario by name.
func (s *SQLiteStore) DeleteScenario(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE name = ?`, name)
	if err != nil {
		return apperrors.NewStoreError("delete", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError("delete", name, err)
	}
	if affected == 0 {
		return apperrors.NewStoreError("delete", name, apperrors.ErrScenarioNotFound)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner abstracts sql.Row and sql.Rows for scanScenario.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanScenario(row scanner) (*Scenario, error) {
	var sc Scenario
	var notes sql.NullString
	err := row.Scan(
		&sc.Name,
		&sc.Params.StartingBalance,
		&sc.Params.TargetBalance,
		&sc.Params.RiskPercent,
		&sc.Params.RewardRatio,
		&notes,
		&sc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	sc.Notes = notes.String
	return &sc, nil
}
