package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `planets:
  - id: mars
    semiMajorAxis: 227939200
    moons:
      - id: phobos
        massExponent: 16
        massValue: 1.0659
        gravity: 9.8
        avgTemp: -40
      - id: deimos
        massExponent: 15
        massValue: 1.4762
        gravity: 3.7
  - id: venus
    semiMajorAxis: 108208000
`

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// emptyConfig writes an empty configuration file so tests do not pick up
// a .solarreport from the machine running them.
func emptyConfig(t *testing.T) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "config.yaml", "")
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func pairRule() string {
	return strings.Repeat("-", 20) + "+" + strings.Repeat("-", 30) + "\n"
}

func pairRow(a, b string) string {
	return fmt.Sprintf("%-20s|%-30s\n", a, b)
}

// gravityReport is the text gravity report for testCatalog.
func gravityReport() string {
	return pairRule() +
		pairRow("Planet's Id", "Planet's Average Moon Gravity") +
		pairRule() +
		pairRow("mars", "6.75") +
		pairRow("venus", "-") +
		pairRule() +
		"\n\n"
}
