package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a schema migration applied in order
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered schema history. Versions are append-only.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_regions",
		SQL: `
			CREATE TABLE IF NOT EXISTS regencies (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				code TEXT NOT NULL DEFAULT '',
				province_name TEXT NOT NULL DEFAULT ''
			);
			CREATE TABLE IF NOT EXISTS subdistricts (
				id TEXT PRIMARY KEY,
				regency_id TEXT NOT NULL REFERENCES regencies(id),
				name TEXT NOT NULL,
				population_count INTEGER NOT NULL DEFAULT 0,
				area_km2 REAL NOT NULL DEFAULT 0,
				poverty_level REAL NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_subdistricts_regency ON subdistricts(regency_id);
		`,
	},
	{
		Version: 2,
		Name:    "create_population_points",
		SQL: `
			CREATE TABLE IF NOT EXISTS population_points (
				id TEXT PRIMARY KEY,
				subdistrict_id TEXT NOT NULL REFERENCES subdistricts(id),
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				population_count INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_population_points_subdistrict ON population_points(subdistrict_id);
		`,
	},
	{
		Version: 3,
		Name:    "create_health_facilities",
		SQL: `
			CREATE TABLE IF NOT EXISTS health_facilities (
				id TEXT PRIMARY KEY,
				subdistrict_id TEXT NOT NULL REFERENCES subdistricts(id),
				name TEXT NOT NULL,
				type TEXT NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_health_facilities_subdistrict ON health_facilities(subdistrict_id);
		`,
	},
	{
		Version: 4,
		Name:    "create_simulation_results",
		SQL: `
			CREATE TABLE IF NOT EXISTS simulation_results (
				id TEXT PRIMARY KEY,
				regency_id TEXT NOT NULL,
				regency_name TEXT NOT NULL,
				total_budget REAL NOT NULL,
				budget_used REAL NOT NULL,
				facilities_recommended INTEGER NOT NULL,
				total_population_covered INTEGER NOT NULL,
				coverage_percentage REAL NOT NULL,
				placements TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_simulation_results_regency ON simulation_results(regency_id);
		`,
	},
}

// Migrate applies any pending migrations in version order
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := Transaction(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.SQL); err != nil {
				return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
			}
			if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		}); err != nil {
			return err
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}
