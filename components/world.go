// Package components defines the per-cell state layers of the world and the
// ECS components used for lineage bookkeeping.
package components

// WorldCell is the composite state of one grid slot. The zero value is an
// empty cell with bare soil and clean air.
type WorldCell struct {
	Life LifeCell `inspect:"section"`
	Soil SoilCell `inspect:"section"`
	Air  AirCell  `inspect:"section"`
}

// SoilCell holds decomposable matter and stored chemical energy.
type SoilCell struct {
	Organics uint8   `inspect:"bar,max:255"`
	Energy   float32 `inspect:"label,fmt:%.2f"`
}

// AddOrganics adds n organics, saturating at 255.
func (s *SoilCell) AddOrganics(n uint8) {
	s.Organics = SaturatingAdd(s.Organics, n)
}

// AirCell holds airborne waste.
type AirCell struct {
	Pollution uint8 `inspect:"bar,max:255"`
}

// AddPollution adds n pollution, saturating at 255.
func (a *AirCell) AddPollution(n uint8) {
	a.Pollution = SaturatingAdd(a.Pollution, n)
}

// SaturatingAdd adds two bytes, clamping at 255.
func SaturatingAdd(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 255 {
		return uint8(s)
	}
	return 255
}

// SaturatingSub subtracts b from a, clamping at 0.
func SaturatingSub(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}

// FloatToOrganics converts a non-negative amount to whole organics,
// truncating and saturating at 255.
func FloatToOrganics(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
