package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/solarreport/internal/catalog"
	"github.com/nao1215/solarreport/internal/database"
)

// TestNewImportCmd tests the import command creation.
func TestNewImportCmd(t *testing.T) {
	t.Parallel()

	cmd := NewImportCmd()

	t.Run("has correct name", func(t *testing.T) {
		t.Parallel()
		if cmd.Name() != "import" {
			t.Errorf("expected name 'import', got %q", cmd.Name())
		}
	})

	t.Run("has jobs flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("jobs")
		if flag == nil {
			t.Fatal("expected jobs flag")
		}
		if flag.Shorthand != "j" {
			t.Errorf("expected shorthand 'j', got %q", flag.Shorthand)
		}
		if flag.DefValue != "4" {
			t.Errorf("expected default '4', got %q", flag.DefValue)
		}
	})

	t.Run("has db-dir flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("db-dir") == nil {
			t.Error("expected db-dir flag")
		}
	})
}

// TestRunImportCmd tests importing catalogs into the store.
func TestRunImportCmd(t *testing.T) {
	t.Parallel()

	t.Run("imports and reports counts", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		catalogPath := writeFile(t, dir, "solar.yaml", testCatalog)
		dbDir := filepath.Join(dir, "db")

		stdout, stderr, err := execute(t, "-c", emptyConfig(t), "import", "--db-dir", dbDir, catalogPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "" {
			t.Errorf("expected nothing on stdout, got %q", stdout)
		}
		if !strings.Contains(stderr, "Imported 2 planets and 2 moons") {
			t.Errorf("expected import summary on stderr, got %q", stderr)
		}

		db, err := database.Open(dbDir, database.ReadOnlyOptions())
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		defer db.Close()

		record, err := db.LastImport(context.Background())
		if err != nil {
			t.Fatalf("failed to read import record: %v", err)
		}
		if record == nil || record.Source != catalogPath {
			t.Errorf("unexpected import record: %+v", record)
		}
	})

	t.Run("merges several files in order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := writeFile(t, dir, "a.yaml", "planets:\n  - id: terre\n")
		second := writeFile(t, dir, "b.json", `{"planets": [{"id": "jupiter"}], "moons": [{"id": "dysnomia"}]}`)
		dbDir := filepath.Join(dir, "db")

		if _, _, err := execute(t, "-c", emptyConfig(t), "import", "-j", "2", "--db-dir", dbDir, first, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		db, err := database.Open(dbDir, database.ReadOnlyOptions())
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		defer db.Close()

		planets, err := db.GetAllPlanets(context.Background())
		if err != nil {
			t.Fatalf("failed to read planets: %v", err)
		}
		if len(planets) != 2 || planets[0].ID != "terre" || planets[1].ID != "jupiter" {
			t.Errorf("unexpected planets: %+v", planets)
		}
	})

	t.Run("warns about an empty catalog", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		catalogPath := writeFile(t, dir, "empty.yaml", "")

		_, stderr, err := execute(t, "-c", emptyConfig(t), "import", "--db-dir", filepath.Join(dir, "db"), catalogPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stderr, "empty") {
			t.Errorf("expected warning on stderr, got %q", stderr)
		}
	})

	t.Run("requires at least one file", func(t *testing.T) {
		t.Parallel()

		if _, _, err := execute(t, "-c", emptyConfig(t), "import"); err == nil {
			t.Error("expected error without catalog files")
		}
	})

	t.Run("rejects duplicate planets across files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := writeFile(t, dir, "a.yaml", "planets:\n  - id: terre\n")
		second := writeFile(t, dir, "b.yaml", "planets:\n  - id: terre\n")

		_, _, err := execute(t, "-c", emptyConfig(t), "import", "--db-dir", filepath.Join(dir, "db"), first, second)
		if !errors.Is(err, catalog.ErrDuplicatePlanet) {
			t.Errorf("expected ErrDuplicatePlanet, got %v", err)
		}
	})

	t.Run("rejects non-positive jobs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		catalogPath := writeFile(t, dir, "solar.yaml", testCatalog)

		_, _, err := execute(t, "-c", emptyConfig(t), "import", "-j", "0", "--db-dir", filepath.Join(dir, "db"), catalogPath)
		if err == nil {
			t.Error("expected error for zero jobs")
		}
	})
}
