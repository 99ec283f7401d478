package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/solarreport/internal/model"
)

// FileName is the name of the database file inside the database directory.
const FileName = "solarreport.db"

// CatalogDB provides SQLite-based storage for a planet and moon catalog.
// It satisfies both report.PlanetProvider and report.MoonProvider.
type CatalogDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures CatalogDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// ReadOnlyOptions returns options for opening an existing database without
// creating it.
func ReadOnlyOptions() Options {
	return Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	}
}

// Open opens or creates a CatalogDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist,
// ErrDatabaseNotFound is returned.
func Open(dbDir string, opts Options) (*CatalogDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s (run 'solarreport import' first)", ErrDatabaseNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a new file, mode=rwc allows it.
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

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &CatalogDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *CatalogDB) Close() error {
	return cdb.db.Close()
}

// Path returns the path to the database file.
func (cdb *CatalogDB) Path() string {
	return cdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (cdb *CatalogDB) createTables() error {
	schema := `
	-- Planets keep the order in which they were imported
	CREATE TABLE IF NOT EXISTS planets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		position INTEGER NOT NULL,
		name TEXT NOT NULL UNIQUE,
		semi_major_axis REAL NOT NULL DEFAULT 0
	);

	-- Moons with a NULL planet_name are not attached to any stored planet
	CREATE TABLE IF NOT EXISTS moons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		planet_name TEXT,
		mass_exponent INTEGER NOT NULL DEFAULT 0,
		mass_value REAL NOT NULL DEFAULT 0,
		gravity REAL NOT NULL DEFAULT 0,
		avg_temp REAL
	);

	CREATE INDEX IF NOT EXISTS idx_moons_planet ON moons(planet_name);

	-- Import history
	CREATE TABLE IF NOT EXISTS imports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		planet_count INTEGER NOT NULL,
		moon_count INTEGER NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveCatalog replaces the stored catalog with c in a single transaction
// and records the import under source. Either the whole catalog is stored
// or nothing changes.
func (cdb *CatalogDB) SaveCatalog(ctx context.Context, c *model.Catalog, source string) (err error) {
	if c == nil {
		c = &model.Catalog{}
	}

	tx, err := cdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM moons"); err != nil {
		return fmt.Errorf("failed to clear moons: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM planets"); err != nil {
		return fmt.Errorf("failed to clear planets: %w", err)
	}

	planetStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO planets (position, name, semi_major_axis)
	VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare planet insert: %w", err)
	}
	defer planetStmt.Close()

	moonStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO moons (position, name, planet_name, mass_exponent, mass_value, gravity, avg_temp)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare moon insert: %w", err)
	}
	defer moonStmt.Close()

	moonPosition := 0
	insertMoon := func(m model.Moon, planet sql.NullString) error {
		var avgTemp sql.NullFloat64
		if m.AvgTemp != nil {
			avgTemp = sql.NullFloat64{Float64: *m.AvgTemp, Valid: true}
		}
		_, err := moonStmt.ExecContext(ctx,
			moonPosition,
			m.ID,
			planet,
			m.MassExponent,
			m.MassValue,
			m.Gravity,
			avgTemp,
		)
		if err != nil {
			return fmt.Errorf("failed to insert moon %q: %w", m.ID, err)
		}
		moonPosition++
		return nil
	}

	for i, p := range c.Planets {
		if _, err = planetStmt.ExecContext(ctx, i, p.ID, p.SemiMajorAxis); err != nil {
			return fmt.Errorf("failed to insert planet %q: %w", p.ID, err)
		}
		for _, m := range p.Moons {
			if err = insertMoon(m, sql.NullString{String: p.ID, Valid: true}); err != nil {
				return err
			}
		}
	}
	for _, m := range c.Moons {
		if err = insertMoon(m, sql.NullString{}); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO imports (source, planet_count, moon_count)
	VALUES (?, ?, ?)
	`, source, len(c.Planets), moonPosition)
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}
	return nil
}

// GetAllPlanets returns every stored planet with its moons, in import order.
func (cdb *CatalogDB) GetAllPlanets(ctx context.Context) ([]model.Planet, error) {
	rows, err := cdb.db.QueryContext(ctx, `
	SELECT name, semi_major_axis FROM planets
	ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query planets: %w", err)
	}
	defer rows.Close()

	var planets []model.Planet
	index := make(map[string]int)
	for rows.Next() {
		var p model.Planet
		if err := rows.Scan(&p.ID, &p.SemiMajorAxis); err != nil {
			return nil, fmt.Errorf("failed to scan planet: %w", err)
		}
		index[p.ID] = len(planets)
		planets = append(planets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	moons, err := cdb.queryMoons(ctx, "WHERE planet_name IS NOT NULL")
	if err != nil {
		return nil, err
	}
	for _, am := range moons {
		if i, ok := index[am.planet]; ok {
			planets[i].Moons = append(planets[i].Moons, am.Moon)
		}
	}

	return planets, nil
}

// GetAllMoons returns every stored moon in import order: the moons of
// each planet in planet order, followed by the unattached moons.
func (cdb *CatalogDB) GetAllMoons(ctx context.Context) ([]model.Moon, error) {
	rows, err := cdb.queryMoons(ctx, "")
	if err != nil {
		return nil, err
	}

	moons := make([]model.Moon, 0, len(rows))
	for _, am := range rows {
		moons = append(moons, am.Moon)
	}
	return moons, nil
}

// attachedMoon is a moon together with the planet it belongs to.
type attachedMoon struct {
	model.Moon
	planet string
}

func (cdb *CatalogDB) queryMoons(ctx context.Context, where string) ([]attachedMoon, error) {
	query := `
	SELECT name, planet_name, mass_exponent, mass_value, gravity, avg_temp
	FROM moons
	` + where + `
	ORDER BY position
	`

	rows, err := cdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query moons: %w", err)
	}
	defer rows.Close()

	var results []attachedMoon
	for rows.Next() {
		var am attachedMoon
		var planet sql.NullString
		var avgTemp sql.NullFloat64

		err := rows.Scan(
			&am.ID,
			&planet,
			&am.MassExponent,
			&am.MassValue,
			&am.Gravity,
			&avgTemp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan moon: %w", err)
		}

		am.planet = planet.String
		if avgTemp.Valid {
			am.AvgTemp = model.Temperature(avgTemp.Float64)
		}
		results = append(results, am)
	}

	return results, rows.Err()
}

// Counts returns the number of stored planets and moons.
func (cdb *CatalogDB) Counts(ctx context.Context) (planets, moons int, err error) {
	err = cdb.db.QueryRowContext(ctx, `
	SELECT (SELECT COUNT(*) FROM planets), (SELECT COUNT(*) FROM moons)
	`).Scan(&planets, &moons)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count catalog: %w", err)
	}
	return planets, moons, nil
}

// ImportRecord describes one SaveCatalog call.
type ImportRecord struct {
	ID          int64
	Source      string
	PlanetCount int
	MoonCount   int
	Timestamp   time.Time
}

// LastImport returns the most recent import, or nil if nothing was imported.
func (cdb *CatalogDB) LastImport(ctx context.Context) (*ImportRecord, error) {
	query := `
	SELECT id, source, planet_count, moon_count, timestamp
	FROM imports
	ORDER BY id DESC
	LIMIT 1
	`

	var record ImportRecord
	var timestamp string

	err := cdb.db.QueryRowContext(ctx, query).Scan(
		&record.ID,
		&record.Source,
		&record.PlanetCount,
		&record.MoonCount,
		&timestamp,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last import: %w", err)
	}

	record.Timestamp = parseTimestamp(timestamp)
	return &record, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// More specific formats come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp parses s with each of timestampFormats and returns the
// zero time if none match.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
