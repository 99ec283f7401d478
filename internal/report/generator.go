package report

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nao1215/solarreport/internal/model"
	"github.com/nao1215/solarreport/internal/table"
	"github.com/nao1215/solarreport/internal/textcase"
	"golang.org/x/text/language"
)

// PlanetProvider supplies every known planet with its moons resolved.
type PlanetProvider interface {
	GetAllPlanets(ctx context.Context) ([]model.Planet, error)
}

// MoonProvider supplies every known moon, independent of its planet.
type MoonProvider interface {
	GetAllMoons(ctx context.Context) ([]model.Moon, error)
}

// Generator renders reports from the providers onto a table.Renderer.
// A Generator is not safe for concurrent use; reports share one renderer
// and are drawn one after another.
type Generator struct {
	planets  PlanetProvider
	moons    MoonProvider
	renderer table.Renderer

	// language selects the casing rules for title-cased identifiers.
	language language.Tag

	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLanguage sets the language used to title-case identifiers.
func WithLanguage(tag language.Tag) Option {
	return func(g *Generator) {
		g.language = tag
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator. Either provider may be nil if the
// reports that need it are never run.
func NewGenerator(planets PlanetProvider, moons MoonProvider, renderer table.Renderer, opts ...Option) *Generator {
	g := &Generator{
		planets:  planets,
		moons:    moons,
		renderer: renderer,
		language: textcase.DefaultLanguage,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = slog.Default()
	}

	return g
}

// Kind names one of the four reports.
type Kind string

const (
	// KindPlanets is the planets-and-their-moons report.
	KindPlanets Kind = "planets"

	// KindMoons is the moons-and-their-mass report.
	KindMoons Kind = "moons"

	// KindGravity is the average-moon-gravity report.
	KindGravity Kind = "gravity"

	// KindTemperature is the average-moon-temperature report.
	KindTemperature Kind = "temperature"
)

// Kinds returns every report kind in the default run order.
func Kinds() []Kind {
	return []Kind{KindPlanets, KindMoons, KindGravity, KindTemperature}
}

// ParseKind converts a report name to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReport, name)
}

// Run renders the given reports in order. It stops at the first error.
func (g *Generator) Run(ctx context.Context, kinds ...Kind) error {
	for _, kind := range kinds {
		g.logger.Debug("rendering report", "report", string(kind))

		var err error
		switch kind {
		case KindPlanets:
			err = g.PlanetsAndMoons(ctx)
		case KindMoons:
			err = g.MoonsAndMass(ctx)
		case KindGravity:
			err = g.PlanetsAverageMoonGravity(ctx)
		case KindTemperature:
			err = g.PlanetsAverageMoonTemperature(ctx)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownReport, kind)
		}
		if err != nil {
			return fmt.Errorf("%s report: %w", kind, err)
		}
	}
	return nil
}

// All renders every report in the order returned by Kinds.
func (g *Generator) All(ctx context.Context) error {
	return g.Run(ctx, Kinds()...)
}

func (g *Generator) fetchPlanets(ctx context.Context) ([]model.Planet, error) {
	if g.planets == nil {
		return nil, ErrNoPlanetProvider
	}
	planets, err := g.planets.GetAllPlanets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch planets: %w", err)
	}
	return planets, nil
}

func (g *Generator) fetchMoons(ctx context.Context) ([]model.Moon, error) {
	if g.moons == nil {
		return nil, ErrNoMoonProvider
	}
	moons, err := g.moons.GetAllMoons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch moons: %w", err)
	}
	return moons, nil
}

// notice writes a single notice line in place of a table.
func (g *Generator) notice(text string) error {
	g.renderer.WriteLine(text)
	return g.renderer.Err()
}

// closeTable draws the closing rule and the spacing after a table.
func (g *Generator) closeTable(cols table.Columns) error {
	g.renderer.DrawRule(cols.Widths())
	g.renderer.DrawBlankLines(reportSpacing)
	return g.renderer.Err()
}

func (g *Generator) title(id string) string {
	return textcase.Title(id, g.language)
}

// formatNumber formats v in its shortest exact decimal form ("6.75", "-70").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
