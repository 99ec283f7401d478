package model

// Catalog is a complete set of planets and moons as supplied by one source.
type Catalog struct {
	// Planets are the catalog's planets in provider order.
	Planets []Planet `json:"planets,omitempty" yaml:"planets,omitempty"`

	// Moons are moons that are not attached to any planet in Planets.
	// Moons nested under a planet must not be repeated here.
	Moons []Moon `json:"moons,omitempty" yaml:"moons,omitempty"`
}

// AllMoons returns every moon in the catalog: the moons of each planet in
// planet order, followed by the unattached moons.
func (c *Catalog) AllMoons() []Moon {
	total := len(c.Moons)
	for _, p := range c.Planets {
		total += len(p.Moons)
	}

	moons := make([]Moon, 0, total)
	for _, p := range c.Planets {
		moons = append(moons, p.Moons...)
	}
	return append(moons, c.Moons...)
}

// Merge appends the planets and unattached moons of other to c.
// A nil other is ignored.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	c.Planets = append(c.Planets, other.Planets...)
	c.Moons = append(c.Moons, other.Moons...)
}

// IsEmpty reports whether the catalog holds neither planets nor moons.
func (c *Catalog) IsEmpty() bool {
	return len(c.Planets) == 0 && len(c.Moons) == 0
}
