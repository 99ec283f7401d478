package model

// Planet is a planet together with the moons orbiting it.
type Planet struct {
	// ID is the provider's identifier for the planet (e.g. "terre").
	// It is displayed title-cased in numbered reports and verbatim elsewhere.
	ID string `json:"id" yaml:"id"`

	// SemiMajorAxis is the semi-major axis of the planet's orbit in kilometres.
	SemiMajorAxis float64 `json:"semiMajorAxis" yaml:"semiMajorAxis"`

	// Moons are the planet's moons in display order.
	// A nil and an empty slice both mean the planet has no moons.
	Moons []Moon `json:"moons,omitempty" yaml:"moons,omitempty"`
}

// HasMoons reports whether the planet has at least one moon.
func (p Planet) HasMoons() bool {
	return len(p.Moons) > 0
}

// AverageMoonGravity returns the mean surface gravity of the planet's moons.
// Callers must check HasMoons first; a planet without moons returns 0.
func (p Planet) AverageMoonGravity() float64 {
	if !p.HasMoons() {
		return 0
	}

	var sum float64
	for _, m := range p.Moons {
		sum += m.Gravity
	}
	return sum / float64(len(p.Moons))
}

// AverageMoonTemperature returns the mean temperature over the moons whose
// temperature is known. The boolean is false when no moon has a temperature.
func (p Planet) AverageMoonTemperature() (float64, bool) {
	var (
		sum   float64
		count int
	)
	for _, m := range p.Moons {
		if m.AvgTemp == nil {
			continue
		}
		sum += *m.AvgTemp
		count++
	}

	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// PlanetsWithMoons returns the planets that have at least one moon,
// preserving their order. The input slice is not modified.
func PlanetsWithMoons(planets []Planet) []Planet {
	result := make([]Planet, 0, len(planets))
	for _, p := range planets {
		if p.HasMoons() {
			result = append(result, p)
		}
	}
	return result
}
