package models

import "sort"

// Default facility type catalog (costs in IDR, radii in meters)
const (
	DefaultPuskesmasCost   = 2_000_000_000
	DefaultPuskesmasRadius = 5000.0
	DefaultPustuCost       = 500_000_000
	DefaultPustuRadius     = 3000.0
)

// FacilityTypeSpec defines the unit cost and coverage radius of a facility type
type FacilityTypeSpec struct {
	Cost           float64 `json:"cost"`
	CoverageRadius float64 `json:"coverage_radius_m"`
}

// FacilityTypeCatalog maps facility type name to its spec. The catalog is
// an immutable per-invocation value, never shared service state.
type FacilityTypeCatalog map[string]FacilityTypeSpec

// DefaultFacilityTypeCatalog returns the two-tier default catalog used when
// a request does not supply one
func DefaultFacilityTypeCatalog() FacilityTypeCatalog {
	return FacilityTypeCatalog{
		"Puskesmas": {Cost: DefaultPuskesmasCost, CoverageRadius: DefaultPuskesmasRadius},
		"Pustu":     {Cost: DefaultPustuCost, CoverageRadius: DefaultPustuRadius},
	}
}

// TypeNames returns the catalog's type names in lexicographic order
func (c FacilityTypeCatalog) TypeNames() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MinCost returns the cheapest unit cost in the catalog
func (c FacilityTypeCatalog) MinCost() float64 {
	min := 0.0
	first := true
	for _, spec := range c {
		if first || spec.Cost < min {
			min = spec.Cost
			first = false
		}
	}
	return min
}

// MaxRadius returns the largest coverage radius in the catalog
func (c FacilityTypeCatalog) MaxRadius() float64 {
	max := 0.0
	for _, spec := range c {
		if spec.CoverageRadius > max {
			max = spec.CoverageRadius
		}
	}
	return max
}

// RadiusFor resolves the coverage radius for a facility type name, falling
// back to the largest catalog radius for unknown types
func (c FacilityTypeCatalog) RadiusFor(facilityType string) float64 {
	if spec, ok := c[facilityType]; ok {
		return spec.CoverageRadius
	}
	return c.MaxRadius()
}
