package report

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/nao1215/solarreport/internal/model"
	"github.com/nao1215/solarreport/internal/table"
	"golang.org/x/text/language"
)

// TestPlanetsAndMoons tests the nested planets-and-moons report.
func TestPlanetsAndMoons(t *testing.T) {
	t.Parallel()

	run := func(g *Generator) error { return g.PlanetsAndMoons(context.Background()) }

	t.Run("draws a nested moon table per planet", func(t *testing.T) {
		t.Parallel()

		p := &stubProvider{planets: []model.Planet{
			{ID: "terre", SemiMajorAxis: 149598023, Moons: []model.Moon{{ID: "la lune"}}},
			{ID: "venus", SemiMajorAxis: 108208930},
		}}

		want := planetRule +
			planetRow("Planet's Number", "Planet's Id", "Planet's Semi-Major Axis", "Total Moons") +
			planetRow("1", "Terre", "149598023", "1") +
			planetRule +
			moonRow("Moon's Number", "Moon's Id") +
			moonRow("1", "La Lune") +
			moonRule +
			"\n\n" +
			planetRule +
			planetRow("Planet's Number", "Planet's Id", "Planet's Semi-Major Axis", "Total Moons") +
			planetRow("2", "Venus", "108208930", "0") +
			planetRule +
			moonRow("Moon's Number", "Moon's Id") +
			moonRule +
			"\n\n"

		if got := render(t, p, run); got != want {
			t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("moon table is as wide as planet table", func(t *testing.T) {
		t.Parallel()

		if planetColumns.TotalWidth() != nestedMoonColumns.TotalWidth() {
			t.Errorf("planet width %d, moon width %d",
				planetColumns.TotalWidth(), nestedMoonColumns.TotalWidth())
		}
	})

	t.Run("numbers moons from one in provider order", func(t *testing.T) {
		t.Parallel()

		moons := make([]model.Moon, 12)
		for i := range moons {
			moons[i] = model.Moon{ID: "s/2003 j " + strconv.Itoa(12-i)}
		}
		p := &stubProvider{planets: []model.Planet{{ID: "jupiter", Moons: moons}}}

		lines := strings.Split(render(t, p, run), "\n")
		// rule, labels, planet row, rule, moon labels, then one line per moon
		moonLines := lines[5 : 5+len(moons)]
		for i, line := range moonLines {
			number := strings.TrimSpace(strings.SplitN(line, "|", 2)[0])
			if number != strconv.Itoa(i+1) {
				t.Errorf("line %d: expected number %d, got %q", i, i+1, number)
			}
			if !strings.Contains(line, "S/2003 J "+strconv.Itoa(12-i)) {
				t.Errorf("line %d: expected moon %d, got %q", i, 12-i, line)
			}
		}
	})

	t.Run("empty provider writes only the notice", func(t *testing.T) {
		t.Parallel()

		if got := render(t, &stubProvider{}, run); got != "no planets found\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("title-cases with the configured language", func(t *testing.T) {
		t.Parallel()

		p := &stubProvider{planets: []model.Planet{
			{ID: "jupiter", Moons: []model.Moon{{ID: "io"}}},
		}}

		got := render(t, p, run, WithLanguage(language.Turkish))
		if !strings.Contains(got, moonRow("1", "İo")) {
			t.Errorf("expected Turkish title case, got:\n%s", got)
		}
	})
}

// TestMoonsAndMass tests the moons-and-mass report.
func TestMoonsAndMass(t *testing.T) {
	t.Parallel()

	run := func(g *Generator) error { return g.MoonsAndMass(context.Background()) }
	rule := dashes(20) + "+" + dashes(20) + "+" + dashes(30) + "+" + dashes(20) + "\n"

	t.Run("draws one numbered row per moon", func(t *testing.T) {
		t.Parallel()

		p := &stubProvider{moons: []model.Moon{
			{ID: "la lune", MassExponent: 22, MassValue: 7.346},
			{ID: "phobos", MassExponent: 16, MassValue: 1.0659},
		}}

		want := rule +
			planetRow("Moon's Number", "Moon's Id", "Moon's Mass Exponent", "Moon's Mass Value") +
			rule +
			planetRow("1", "La Lune", "22", "7.346") +
			planetRow("2", "Phobos", "16", "1.0659") +
			rule +
			"\n\n"

		if got := render(t, p, run); got != want {
			t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("empty provider writes only the notice", func(t *testing.T) {
		t.Parallel()

		if got := render(t, &stubProvider{}, run); got != "no moons found\n" {
			t.Errorf("got %q", got)
		}
	})
}

// TestPlanetsAverageMoonGravity tests the average gravity report.
func TestPlanetsAverageMoonGravity(t *testing.T) {
	t.Parallel()

	run := func(g *Generator) error { return g.PlanetsAverageMoonGravity(context.Background()) }

	t.Run("averages gravity and shows placeholder for moonless planets", func(t *testing.T) {
		t.Parallel()

		p := &stubProvider{planets: []model.Planet{
			{ID: "mars", Moons: []model.Moon{
				{ID: "phobos", Gravity: 9.8},
				{ID: "deimos", Gravity: 3.7},
			}},
			{ID: "venus"},
		}}

		want := pairRule +
			pairRow("Planet's Id", "Planet's Average Moon Gravity") +
			pairRule +
			pairRow("mars", "6.75") +
			pairRow("venus", "-") +
			pairRule +
			"\n\n"

		if got := render(t, p, run); got != want {
			t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("empty provider reuses the no moons notice", func(t *testing.T) {
		t.Parallel()

		if got := render(t, &stubProvider{}, run); got != "no moons found\n" {
			t.Errorf("got %q", got)
		}
	})
}

// TestPlanetsAverageMoonTemperature tests the average temperature report.
func TestPlanetsAverageMoonTemperature(t *testing.T) {
	t.Parallel()

	run := func(g *Generator) error { return g.PlanetsAverageMoonTemperature(context.Background()) }

	t.Run("filters moonless planets and averages known temperatures", func(t *testing.T) {
		t.Parallel()

		p := &stubProvider{planets: []model.Planet{
			{ID: "mercure"},
			{ID: "jupiter", Moons: []model.Moon{
				{ID: "io"},
				{ID: "europe", AvgTemp: model.Temperature(-60)},
				{ID: "ganymede", AvgTemp: model.Temperature(-80)},
			}},
			{ID: "venus", Moons: []model.Moon{}},
			{ID: "mars", Moons: []model.Moon{{ID: "phobos"}, {ID: "deimos"}}},
		}}

		want := pairRule +
			pairRow("Planet's Id", "Moon's Average Temperature") +
			pairRule +
			pairRow("jupiter", "-70") +
			pairRow("mars", "-") +
			pairRule +
			"\n\n"

		if got := render(t, p, run); got != want {
			t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("empty provider writes the no planets notice", func(t *testing.T) {
		t.Parallel()

		if got := render(t, &stubProvider{}, run); got != "no planets found\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("only moonless planets writes the filtered notice", func(t *testing.T) {
		t.Parallel()

		p := &stubProvider{planets: []model.Planet{
			{ID: "mercure"},
			{ID: "venus", Moons: []model.Moon{}},
		}}

		if got := render(t, p, run); got != "no planets found with moons\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("progress goes to the logger, not the report", func(t *testing.T) {
		t.Parallel()

		var out, logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		g := NewGenerator(&stubProvider{}, nil, table.NewTextRenderer(&out), WithLogger(logger))

		if err := g.PlanetsAverageMoonTemperature(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(logs.String(), "loading planets") {
			t.Errorf("expected progress message in logs, got %q", logs.String())
		}
		if strings.Contains(out.String(), "loading") {
			t.Errorf("progress message leaked into report: %q", out.String())
		}
	})
}

// TestReportsAreIdempotent tests that identical input gives identical output.
func TestReportsAreIdempotent(t *testing.T) {
	t.Parallel()

	p := &stubProvider{
		planets: []model.Planet{
			{ID: "terre", SemiMajorAxis: 149598023, Moons: []model.Moon{
				{ID: "la lune", MassExponent: 22, MassValue: 7.346, Gravity: 1.62, AvgTemp: model.Temperature(-20)},
			}},
			{ID: "venus", SemiMajorAxis: 108208930},
		},
		moons: []model.Moon{
			{ID: "la lune", MassExponent: 22, MassValue: 7.346, Gravity: 1.62},
		},
	}

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			run := func(g *Generator) error { return g.Run(context.Background(), kind) }
			first := render(t, p, run)
			second := render(t, p, run)
			if first != second {
				t.Errorf("outputs differ:\n%s\n---\n%s", first, second)
			}
			if first == "" {
				t.Error("expected output")
			}
		})
	}
}
