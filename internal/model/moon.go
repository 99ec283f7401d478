package model

// Moon is a natural satellite.
type Moon struct {
	// ID is the provider's identifier for the moon (e.g. "la lune").
	ID string `json:"id" yaml:"id"`

	// MassExponent is the power of ten of the moon's mass in kilograms.
	MassExponent int `json:"massExponent" yaml:"massExponent"`

	// MassValue is the mantissa of the moon's mass; the mass in kilograms
	// is MassValue * 10^MassExponent.
	MassValue float64 `json:"massValue" yaml:"massValue"`

	// Gravity is the moon's surface gravity in m/s².
	Gravity float64 `json:"gravity" yaml:"gravity"`

	// AvgTemp is the moon's average temperature.
	// Nil when the temperature is unknown.
	AvgTemp *float64 `json:"avgTemp,omitempty" yaml:"avgTemp,omitempty"`
}

// HasTemperature reports whether the moon's average temperature is known.
func (m Moon) HasTemperature() bool {
	return m.AvgTemp != nil
}

// Temperature returns a pointer to t, for populating Moon.AvgTemp.
func Temperature(t float64) *float64 {
	return &t
}
